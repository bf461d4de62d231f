package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/service"
	"go.uber.org/zap"
)

// TenantConfigHandler handles admin API requests for tenant configs
type TenantConfigHandler struct {
	tenantService *service.TenantConfigService
	logger        *zap.Logger
}

// NewTenantConfigHandler creates a new TenantConfigHandler
func NewTenantConfigHandler(tenantService *service.TenantConfigService, logger *zap.Logger) *TenantConfigHandler {
	return &TenantConfigHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

// List godoc
// @Summary List tenant configs
// @Description Returns a paginated list of tenant configurations
// @Tags Tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /tenants [get]
func (h *TenantConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	items, total, err := h.tenantService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list tenant configs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list tenant configs")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Get godoc
// @Summary Get tenant config
// @Description Returns the tenant configuration for a location
// @Tags Tenants
// @Produce json
// @Param locationId path string true "Location ID"
// @Success 200 {object} domain.TenantConfigDTO
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /tenants/{locationId} [get]
func (h *TenantConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "locationId")

	cfg, err := h.tenantService.GetByLocationID(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			respondWithError(w, http.StatusNotFound, "Tenant config not found")
			return
		}
		h.logger.Error("failed to get tenant config", zap.String("location_id", locationID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get tenant config")
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// Create godoc
// @Summary Create tenant config
// @Description Registers the CRM credentials and sync settings for a location
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body domain.CreateTenantConfigRequest true "Tenant config"
// @Success 201 {object} domain.TenantConfigDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /tenants [post]
func (h *TenantConfigHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTenantConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, err)
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	cfg, err := h.tenantService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTenantExists):
			respondWithError(w, http.StatusConflict, "Tenant config already exists for this location")
		case errors.Is(err, service.ErrInvalidTagRules):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create tenant config", zap.String("location_id", req.LocationID), zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create tenant config")
		}
		return
	}

	respondJSON(w, http.StatusCreated, cfg)
}

// Update godoc
// @Summary Update tenant config
// @Description Replaces the CRM credentials and sync settings for a location
// @Tags Tenants
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID"
// @Param request body domain.UpdateTenantConfigRequest true "Tenant config"
// @Success 200 {object} domain.TenantConfigDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /tenants/{locationId} [put]
func (h *TenantConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "locationId")

	var req domain.UpdateTenantConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, err)
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	cfg, err := h.tenantService.Update(r.Context(), locationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTenantNotFound):
			respondWithError(w, http.StatusNotFound, "Tenant config not found")
		case errors.Is(err, service.ErrInvalidTagRules):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update tenant config", zap.String("location_id", locationID), zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to update tenant config")
		}
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// Delete godoc
// @Summary Delete tenant config
// @Description Removes the tenant configuration for a location
// @Tags Tenants
// @Param locationId path string true "Location ID"
// @Success 204 "No Content"
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /tenants/{locationId} [delete]
func (h *TenantConfigHandler) Delete(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "locationId")

	if err := h.tenantService.Delete(r.Context(), locationID); err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			respondWithError(w, http.StatusNotFound, "Tenant config not found")
			return
		}
		h.logger.Error("failed to delete tenant config", zap.String("location_id", locationID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete tenant config")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
