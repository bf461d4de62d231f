package repository_test

import (
	"context"
	"testing"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"github.com/leadbridge/dialer-sync-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantConfigRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	cfg := &domain.TenantConfig{
		LocationID:     "loc-1",
		LocationAPIKey: "agency-key",
		UserID:         "user-1",
		PipelineName:   "Sales",
		FirstStageName: "Inbound",
		DispositionTagMapping: domain.TagRules{
			{Tag: "hot-lead", Dispositions: []string{"SALE", "XFER"}},
			{Tag: "follow-up", Dispositions: []string{"CALLBK"}},
		},
	}
	require.NoError(t, repo.Create(ctx, cfg))

	got, err := repo.GetByLocationID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "agency-key", got.LocationAPIKey)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "Sales", got.PipelineName)

	// The JSON round trip must preserve rule order
	require.Len(t, got.DispositionTagMapping, 2)
	assert.Equal(t, "hot-lead", got.DispositionTagMapping[0].Tag)
	assert.Equal(t, []string{"SALE", "XFER"}, got.DispositionTagMapping[0].Dispositions)
	assert.Equal(t, "follow-up", got.DispositionTagMapping[1].Tag)
}

func TestTenantConfigRepository_GetMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTenantConfigRepository(db)

	_, err := repo.GetByLocationID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrTenantConfigNotFound)
}

func TestTenantConfigRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	cfg := testutil.CreateTestTenant(t, db, "loc-1", nil)
	cfg.PipelineName = "Renamed"
	require.NoError(t, repo.Update(ctx, cfg))

	got, err := repo.GetByLocationID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.PipelineName)
}

func TestTenantConfigRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	testutil.CreateTestTenant(t, db, "loc-1", nil)
	require.NoError(t, repo.Delete(ctx, "loc-1"))

	_, err := repo.GetByLocationID(ctx, "loc-1")
	assert.ErrorIs(t, err, repository.ErrTenantConfigNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "loc-1"), repository.ErrTenantConfigNotFound)
}

func TestTenantConfigRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTenantConfigRepository(db)
	ctx := context.Background()

	testutil.CreateTestTenant(t, db, "loc-b", nil)
	testutil.CreateTestTenant(t, db, "loc-a", nil)
	testutil.CreateTestTenant(t, db, "loc-c", nil)

	configs, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, configs, 2)
	assert.Equal(t, "loc-a", configs[0].LocationID)
	assert.Equal(t, "loc-b", configs[1].LocationID)

	configs, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "loc-c", configs[0].LocationID)
}
