package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
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

func createTenantConfigHandler(db *gorm.DB) *handler.TenantConfigHandler {
	logger := zap.NewNop()
	tenantRepo := repository.NewTenantConfigRepository(db)
	tenantService := service.NewTenantConfigService(tenantRepo, logger)
	return handler.NewTenantConfigHandler(tenantService, logger)
}

func withLocationParam(req *http.Request, locationID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("locationId", locationID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func createTenantBody(locationID string) []byte {
	body, _ := json.Marshal(domain.CreateTenantConfigRequest{
		LocationID:     locationID,
		LocationAPIKey: "agency-key",
		UserID:         "user-1",
		PipelineName:   "Sales",
		FirstStageName: "Inbound",
		DispositionTagMapping: domain.TagRules{
			{Tag: "hot-lead", Dispositions: []string{"SALE"}},
		},
	})
	return body
}

func TestTenantConfigHandler_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createTenantConfigHandler(db)

	t.Run("creates tenant config", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader(createTenantBody("loc-1")))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var result domain.TenantConfigDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "loc-1", result.LocationID)
		assert.Equal(t, "Sales", result.PipelineName)
		assert.NotEmpty(t, result.CreatedAt)
		// The API key never leaves the server
		assert.NotContains(t, rr.Body.String(), "agency-key")
	})

	t.Run("rejects duplicate location", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader(createTenantBody("loc-1")))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		body, _ := json.Marshal(domain.CreateTenantConfigRequest{LocationID: "loc-2"})
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr))
		assert.Contains(t, apiErr.Errors, "locationAPIKey")
		assert.Contains(t, apiErr.Errors, "userID")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects tag rule without tag", func(t *testing.T) {
		payload := domain.CreateTenantConfigRequest{
			LocationID:     "loc-3",
			LocationAPIKey: "agency-key",
			UserID:         "user-1",
			DispositionTagMapping: domain.TagRules{
				{Tag: "", Dispositions: []string{"SALE"}},
			},
		}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTenantConfigHandler_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createTenantConfigHandler(db)
	testutil.CreateTestTenant(t, db, "loc-1", domain.TagRules{
		{Tag: "hot-lead", Dispositions: []string{"SALE"}},
	})

	t.Run("get existing tenant", func(t *testing.T) {
		req := withLocationParam(httptest.NewRequest(http.MethodGet, "/tenants/loc-1", nil), "loc-1")
		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.TenantConfigDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "loc-1", result.LocationID)
		require.Len(t, result.DispositionTagMapping, 1)
		assert.Equal(t, "hot-lead", result.DispositionTagMapping[0].Tag)
	})

	t.Run("get missing tenant", func(t *testing.T) {
		req := withLocationParam(httptest.NewRequest(http.MethodGet, "/tenants/nope", nil), "nope")
		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTenantConfigHandler_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createTenantConfigHandler(db)
	testutil.CreateTestTenant(t, db, "loc-1", nil)

	t.Run("updates tenant config", func(t *testing.T) {
		body, _ := json.Marshal(domain.UpdateTenantConfigRequest{
			LocationAPIKey: "rotated-key",
			UserID:         "user-2",
			PipelineName:   "Renamed",
		})
		req := withLocationParam(httptest.NewRequest(http.MethodPut, "/tenants/loc-1", bytes.NewReader(body)), "loc-1")
		rr := httptest.NewRecorder()
		h.Update(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.TenantConfigDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "user-2", result.UserID)
		assert.Equal(t, "Renamed", result.PipelineName)

		var stored domain.TenantConfig
		require.NoError(t, db.Where("location_id = ?", "loc-1").First(&stored).Error)
		assert.Equal(t, "rotated-key", stored.LocationAPIKey)
	})

	t.Run("update missing tenant", func(t *testing.T) {
		body, _ := json.Marshal(domain.UpdateTenantConfigRequest{
			LocationAPIKey: "key",
			UserID:         "user-1",
		})
		req := withLocationParam(httptest.NewRequest(http.MethodPut, "/tenants/nope", bytes.NewReader(body)), "nope")
		rr := httptest.NewRecorder()
		h.Update(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTenantConfigHandler_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createTenantConfigHandler(db)
	testutil.CreateTestTenant(t, db, "loc-1", nil)

	t.Run("deletes tenant config", func(t *testing.T) {
		req := withLocationParam(httptest.NewRequest(http.MethodDelete, "/tenants/loc-1", nil), "loc-1")
		rr := httptest.NewRecorder()
		h.Delete(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("delete missing tenant", func(t *testing.T) {
		req := withLocationParam(httptest.NewRequest(http.MethodDelete, "/tenants/loc-1", nil), "loc-1")
		rr := httptest.NewRecorder()
		h.Delete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTenantConfigHandler_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createTenantConfigHandler(db)
	testutil.CreateTestTenant(t, db, "loc-a", nil)
	testutil.CreateTestTenant(t, db, "loc-b", nil)

	req := httptest.NewRequest(http.MethodGet, "/tenants?page=1&pageSize=10", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result struct {
		Items    []domain.TenantConfigDTO `json:"items"`
		Total    int64                    `json:"total"`
		Page     int                      `json:"page"`
		PageSize int                      `json:"pageSize"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 1, result.Page)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "loc-a", result.Items[0].LocationID)
}
