package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leadbridge/dialer-sync-api/internal/config"
	"github.com/leadbridge/dialer-sync-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func apiKeyHandler(cfg *config.ApiKeyConfig, called *bool) http.Handler {
	mw := middleware.APIKey(cfg, zap.NewNop())
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAPIKey_ValidKey(t *testing.T) {
	called := false
	h := apiKeyHandler(&config.ApiKeyConfig{Value: "secret-key"}, &called)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil)
	req.Header.Set("X-API-Key", "secret-key")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestAPIKey_InvalidKey(t *testing.T) {
	called := false
	h := apiKeyHandler(&config.ApiKeyConfig{Value: "secret-key"}, &called)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}

func TestAPIKey_MissingKey(t *testing.T) {
	called := false
	h := apiKeyHandler(&config.ApiKeyConfig{Value: "secret-key"}, &called)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAPIKey_UnconfiguredKeyRejectsEverything(t *testing.T) {
	called := false
	h := apiKeyHandler(&config.ApiKeyConfig{Value: ""}, &called)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil)
	req.Header.Set("X-API-Key", "")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
