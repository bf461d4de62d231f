package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"gorm.io/gorm"
)

// ErrTenantConfigNotFound is returned when no config exists for a location id
var ErrTenantConfigNotFound = errors.New("tenant config not found")

// TenantConfigRepository provides access to per-tenant configuration documents
type TenantConfigRepository struct {
	db *gorm.DB
}

// NewTenantConfigRepository creates a new TenantConfigRepository
func NewTenantConfigRepository(db *gorm.DB) *TenantConfigRepository {
	return &TenantConfigRepository{db: db}
}

// GetByLocationID fetches the config for one location. A missing row is
// reported as ErrTenantConfigNotFound, distinct from store errors.
func (r *TenantConfigRepository) GetByLocationID(ctx context.Context, locationID string) (*domain.TenantConfig, error) {
	var cfg domain.TenantConfig
	err := r.db.WithContext(ctx).Where("location_id = ?", locationID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantConfigNotFound
		}
		return nil, fmt.Errorf("failed to get tenant config: %w", err)
	}
	return &cfg, nil
}

// Create inserts a new tenant config
func (r *TenantConfigRepository) Create(ctx context.Context, cfg *domain.TenantConfig) error {
	if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
		return fmt.Errorf("failed to create tenant config: %w", err)
	}
	return nil
}

// Update saves changes to an existing tenant config
func (r *TenantConfigRepository) Update(ctx context.Context, cfg *domain.TenantConfig) error {
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return fmt.Errorf("failed to update tenant config: %w", err)
	}
	return nil
}

// Delete removes the config for one location
func (r *TenantConfigRepository) Delete(ctx context.Context, locationID string) error {
	result := r.db.WithContext(ctx).Where("location_id = ?", locationID).Delete(&domain.TenantConfig{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tenant config: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTenantConfigNotFound
	}
	return nil
}

// List returns tenant configs ordered by location id, paginated
func (r *TenantConfigRepository) List(ctx context.Context, page, pageSize int) ([]domain.TenantConfig, int64, error) {
	var configs []domain.TenantConfig
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.TenantConfig{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenant configs: %w", err)
	}

	err := r.db.WithContext(ctx).
		Order("location_id asc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&configs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenant configs: %w", err)
	}

	return configs, total, nil
}
