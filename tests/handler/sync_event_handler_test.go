package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leadbridge/dialer-sync-api/internal/config"
	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/http/handler"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"github.com/leadbridge/dialer-sync-api/internal/service"
	"github.com/leadbridge/dialer-sync-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func createSyncEventHandler(db *gorm.DB) *handler.SyncEventHandler {
	logger := zap.NewNop()
	tenantRepo := repository.NewTenantConfigRepository(db)
	eventRepo := repository.NewSyncEventRepository(db)
	factory := func(locationID, apiKey string) service.CRMClient { return &stubCRMClient{} }
	syncCfg := &config.SyncConfig{TenantLookupTimeout: 5, EventRetentionDays: 90}
	syncService := service.NewSyncService(tenantRepo, eventRepo, factory, syncCfg, logger)
	return handler.NewSyncEventHandler(syncService, logger)
}

func createSyncEvent(t *testing.T, db *gorm.DB, locationID string, action domain.SyncAction, age time.Duration) {
	t.Helper()
	event := &domain.SyncEvent{
		LocationID:  locationID,
		Phone:       "+15551234567",
		Action:      action,
		ContactID:   "contact-1",
		Disposition: "SALE",
	}
	event.CreatedAt = time.Now().UTC().Add(-age)
	event.UpdatedAt = event.CreatedAt
	require.NoError(t, db.Create(event).Error)
}

type paginatedEvents struct {
	Items    []handler.SyncEventDTO `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
}

func TestSyncEventHandler_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createSyncEventHandler(db)

	createSyncEvent(t, db, "loc-1", domain.SyncActionCreated, 2*time.Hour)
	createSyncEvent(t, db, "loc-1", domain.SyncActionUpdated, time.Hour)
	createSyncEvent(t, db, "loc-2", domain.SyncActionFailed, 30*time.Minute)

	t.Run("lists all events newest first", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rr := httptest.NewRecorder()
		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result paginatedEvents
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(3), result.Total)
		require.Len(t, result.Items, 3)
		assert.Equal(t, "failed", result.Items[0].Action)
		assert.Equal(t, "created", result.Items[2].Action)
	})

	t.Run("filters by location", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?locationId=loc-1", nil)
		rr := httptest.NewRecorder()
		h.List(rr, req)

		var result paginatedEvents
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(2), result.Total)
		for _, item := range result.Items {
			assert.Equal(t, "loc-1", item.LocationID)
		}
	})

	t.Run("filters by action", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?action=failed", nil)
		rr := httptest.NewRecorder()
		h.List(rr, req)

		var result paginatedEvents
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "loc-2", result.Items[0].LocationID)
	})

	t.Run("paginates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events?page=2&pageSize=2", nil)
		rr := httptest.NewRecorder()
		h.List(rr, req)

		var result paginatedEvents
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, int64(3), result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Len(t, result.Items, 1)
	})
}
