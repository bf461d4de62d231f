package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/leadbridge/dialer-sync-api/internal/config"
	"go.uber.org/zap"
)

// APIKey guards the admin API with a static X-API-Key header check
func APIKey(cfg *config.ApiKeyConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Value == "" {
				logger.Error("admin API key is not configured, rejecting request",
					zap.String("path", r.URL.Path))
				unauthorized(w)
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Value)) != 1 {
				logger.Warn("invalid admin API key",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr))
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
