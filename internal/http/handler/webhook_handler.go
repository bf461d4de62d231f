package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/highlevel"
	"github.com/leadbridge/dialer-sync-api/internal/logger"
	"github.com/leadbridge/dialer-sync-api/internal/service"
	"go.uber.org/zap"
)

// WebhookHandler receives lead events from the dialer
type WebhookHandler struct {
	syncService *service.SyncService
	logger      *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(syncService *service.SyncService, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		syncService: syncService,
		logger:      log,
	}
}

// HandleDialerEvent godoc
// @Summary Receive dialer lead event
// @Description Receives a lead or call disposition event from the dialer and syncs it into the CRM for the given location
// @Tags Webhooks
// @Produce json
// @Param firstName query string true "Lead first name"
// @Param lastName query string true "Lead last name"
// @Param dialedNumber query string true "Phone number dialed"
// @Param locationID query string true "CRM location identifier"
// @Param email query string false "Lead email"
// @Param disposition query string false "Dialer disposition code"
// @Param termReason query string false "Call termination reason"
// @Param callNote query string false "Agent call note"
// @Param talkTime query string false "Talk time in seconds"
// @Param listID query string false "Dialer list identifier"
// @Param listDescription query string false "Dialer list description"
// @Param leadID query string false "Dialer lead identifier"
// @Param campaignID query string false "Dialer campaign identifier"
// @Param subscriberID query string false "Dialer subscriber identifier"
// @Param city query string false "Lead city"
// @Param state query string false "Lead state"
// @Param zip query string false "Lead zip code"
// @Param country query string false "Lead country"
// @Success 200 {object} domain.WebhookResponse
// @Failure 400 {object} domain.WebhookError
// @Failure 404 {object} domain.WebhookError
// @Failure 500 {object} domain.WebhookError
// @Router /webhooks/dialer [get]
func (h *WebhookHandler) HandleDialerEvent(w http.ResponseWriter, r *http.Request) {
	event := parseLeadEvent(r.URL.Query())

	if err := validate.Struct(event); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.WebhookError{
			Error: "missing required parameters: firstName, lastName, dialedNumber and locationID must be set",
		})
		return
	}

	log := logger.WithEvent(h.logger, event.LocationID, event.DialedNumber)
	log.Info("dialer event received",
		zap.String("disposition", event.Disposition),
		zap.String("lead_id", event.LeadID))

	result, err := h.syncService.ProcessLeadEvent(r.Context(), event)
	if err != nil {
		h.respondSyncError(w, log, err)
		return
	}

	log.Info("dialer event synced",
		zap.String("contact_id", result.ContactID),
		zap.String("action", string(result.Action)))
	respondJSON(w, http.StatusOK, domain.WebhookResponse{ContactID: result.ContactID})
}

func (h *WebhookHandler) respondSyncError(w http.ResponseWriter, log *zap.Logger, err error) {
	if errors.Is(err, service.ErrTenantNotFound) {
		log.Warn("no tenant config for location")
		respondJSON(w, http.StatusNotFound, domain.WebhookError{Error: "no configuration found for location"})
		return
	}

	var apiErr *highlevel.APIError
	if errors.As(err, &apiErr) {
		log.Error("CRM request failed", zap.Int("status", apiErr.StatusCode), zap.Error(err))
		if apiErr.StatusCode == http.StatusNotFound {
			respondJSON(w, http.StatusNotFound, domain.WebhookError{Error: apiErr.Message})
			return
		}
		respondJSON(w, http.StatusInternalServerError, domain.WebhookError{Error: apiErr.Message})
		return
	}

	log.Error("sync failed", zap.Error(err))
	respondJSON(w, http.StatusInternalServerError, domain.WebhookError{Error: "failed to sync lead event"})
}

// parseLeadEvent maps dialer query parameters onto a LeadEvent. The dialer
// omits parameters it has no value for; those fields stay empty strings.
func parseLeadEvent(q url.Values) *domain.LeadEvent {
	event := &domain.LeadEvent{
		FirstName:       q.Get("firstName"),
		LastName:        q.Get("lastName"),
		DialedNumber:    q.Get("dialedNumber"),
		LocationID:      q.Get("locationID"),
		Email:           q.Get("email"),
		Disposition:     q.Get("disposition"),
		TermReason:      q.Get("termReason"),
		CallNote:        q.Get("callNote"),
		TalkTime:        q.Get("talkTime"),
		ListID:          q.Get("listID"),
		ListDescription: q.Get("listDescription"),
		LeadID:          q.Get("leadID"),
		CampaignID:      q.Get("campaignID"),
		SubscriberID:    q.Get("subscriberID"),
		City:            q.Get("city"),
		State:           q.Get("state"),
		Zip:             q.Get("zip"),
		Country:         q.Get("country"),
		PropertyType:    q.Get("propertyType"),
		Bedrooms:        q.Get("bedrooms"),
		Bathrooms:       q.Get("bathrooms"),
		SquareFeet:      q.Get("squareFeet"),
		YearBuilt:       q.Get("yearBuilt"),
		EstimatedValue:  q.Get("estimatedValue"),
		MotivationScore: q.Get("motivationScore"),
		BestTimeToCall:  q.Get("bestTimeToCall"),
		LeadSource:      q.Get("leadSource"),
	}
	if event.LeadID == "" {
		event.LeadID = "0"
	}
	return event
}
