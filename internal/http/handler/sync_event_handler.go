package handler

import (
	"net/http"
	"time"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"github.com/leadbridge/dialer-sync-api/internal/service"
	"go.uber.org/zap"
)

// SyncEventHandler exposes the sync audit log through the admin API
type SyncEventHandler struct {
	syncService *service.SyncService
	logger      *zap.Logger
}

// NewSyncEventHandler creates a new SyncEventHandler
func NewSyncEventHandler(syncService *service.SyncService, logger *zap.Logger) *SyncEventHandler {
	return &SyncEventHandler{
		syncService: syncService,
		logger:      logger,
	}
}

// SyncEventDTO represents a sync event for API responses
type SyncEventDTO struct {
	ID          string `json:"id"`
	LocationID  string `json:"locationId"`
	Phone       string `json:"phone"`
	Action      string `json:"action"`
	ContactID   string `json:"contactId,omitempty"`
	Disposition string `json:"disposition,omitempty"`
	Error       string `json:"error,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// List godoc
// @Summary List sync events
// @Description Returns recorded webhook sync events, newest first, with optional filters
// @Tags Events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Param locationId query string false "Filter by location ID"
// @Param phone query string false "Filter by normalized phone"
// @Param action query string false "Filter by action (created, updated, failed)"
// @Success 200 {object} domain.PaginatedResponse
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /events [get]
func (h *SyncEventHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	var filters *repository.SyncEventFilters
	q := r.URL.Query()
	if q.Get("locationId") != "" || q.Get("phone") != "" || q.Get("action") != "" {
		filters = &repository.SyncEventFilters{
			LocationID: q.Get("locationId"),
			Phone:      q.Get("phone"),
			Action:     domain.SyncAction(q.Get("action")),
		}
	}

	events, total, err := h.syncService.ListEvents(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list sync events", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list sync events")
		return
	}

	dtos := make([]SyncEventDTO, len(events))
	for i := range events {
		dtos[i] = toSyncEventDTO(&events[i])
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    dtos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func toSyncEventDTO(event *domain.SyncEvent) SyncEventDTO {
	return SyncEventDTO{
		ID:          event.ID.String(),
		LocationID:  event.LocationID,
		Phone:       event.Phone,
		Action:      string(event.Action),
		ContactID:   event.ContactID,
		Disposition: event.Disposition,
		Error:       event.Error,
		CreatedAt:   event.CreatedAt.UTC().Format(time.RFC3339),
	}
}
