package testutil

import (
	"testing"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the application
// schema migrated. Each call gets a fresh database.
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(&domain.TenantConfig{}, &domain.SyncEvent{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// CreateTestTenant inserts a tenant config with sensible defaults and
// returns it. Pass mapping rules when the test exercises tag mapping.
func CreateTestTenant(t *testing.T, db *gorm.DB, locationID string, rules domain.TagRules) *domain.TenantConfig {
	tenant := &domain.TenantConfig{
		LocationID:            locationID,
		LocationAPIKey:        "tenant-agency-key",
		UserID:                "user-123",
		DispositionTagMapping: rules,
	}
	err := db.Create(tenant).Error
	require.NoError(t, err)
	return tenant
}
