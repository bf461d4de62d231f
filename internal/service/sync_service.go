package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leadbridge/dialer-sync-api/internal/config"
	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/highlevel"
	"github.com/leadbridge/dialer-sync-api/internal/mapper"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"go.uber.org/zap"
)

// CRMClient is the slice of the HighLevel client the sync flow needs.
// Declared here so tests and main can supply their own construction.
type CRMClient interface {
	Authenticate(ctx context.Context) error
	LookupContactByPhone(ctx context.Context, phone string) (*highlevel.Contact, error)
	CreateContact(ctx context.Context, payload *highlevel.ContactPayload) (*highlevel.Contact, error)
	UpdateContact(ctx context.Context, contactID string, payload *highlevel.ContactPayload) (*highlevel.Contact, error)
	ListCustomFields(ctx context.Context) ([]highlevel.CustomFieldDefinition, error)
	AddNote(ctx context.Context, contactID, body, userID string) (*highlevel.Note, error)
	ListPipelines(ctx context.Context) ([]highlevel.Pipeline, error)
	CreateOpportunity(ctx context.Context, pipelineID string, payload *highlevel.OpportunityPayload) (*highlevel.Opportunity, error)
}

// CRMClientFactory builds a location-scoped CRM client from a tenant's
// credentials. One client is built per webhook request; the memoized
// location key never outlives the request.
type CRMClientFactory func(locationID, apiKey string) CRMClient

// SyncService orchestrates one webhook event end to end: resolve tenant,
// build the mapped contact payload, reconcile against the CRM by phone,
// and record the outcome.
type SyncService struct {
	tenantRepo *repository.TenantConfigRepository
	eventRepo  *repository.SyncEventRepository
	newClient  CRMClientFactory
	syncCfg    *config.SyncConfig
	logger     *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(
	tenantRepo *repository.TenantConfigRepository,
	eventRepo *repository.SyncEventRepository,
	newClient CRMClientFactory,
	syncCfg *config.SyncConfig,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		tenantRepo: tenantRepo,
		eventRepo:  eventRepo,
		newClient:  newClient,
		syncCfg:    syncCfg,
		logger:     logger,
	}
}

// ProcessLeadEvent runs the sync flow for one validated webhook event and
// records the outcome in the event log. The event log write is
// best-effort; processing results are never affected by it.
func (s *SyncService) ProcessLeadEvent(ctx context.Context, event *domain.LeadEvent) (*domain.SyncResult, error) {
	phone := mapper.NormalizePhone(event.DialedNumber)

	result, err := s.sync(ctx, event, phone)
	s.recordEvent(ctx, event, phone, result, err)
	return result, err
}

func (s *SyncService) sync(ctx context.Context, event *domain.LeadEvent, phone string) (*domain.SyncResult, error) {
	log := s.logger.With(
		zap.String("location_id", event.LocationID),
		zap.String("phone", phone),
	)

	// Tenant lookup is the only bounded call; everything downstream uses
	// the request context as-is.
	lookupCtx, cancel := context.WithTimeout(ctx, s.syncCfg.TenantLookupTimeoutDuration())
	defer cancel()

	tenant, err := s.tenantRepo.GetByLocationID(lookupCtx, event.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantConfigNotFound) {
			log.Warn("no tenant config for location")
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("tenant config lookup failed: %w", err)
	}

	client := s.newClient(tenant.LocationID, tenant.LocationAPIKey)
	if err := client.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("crm authentication failed: %w", err)
	}

	payload, err := s.buildContactPayload(ctx, client, tenant, event, phone)
	if err != nil {
		return nil, err
	}

	existing, err := client.LookupContactByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("contact lookup failed: %w", err)
	}

	if existing == nil {
		return s.createContact(ctx, client, tenant, event, payload, log)
	}
	return s.updateContact(ctx, client, tenant, event, existing, payload, log)
}

// buildContactPayload assembles the mapped CRM payload: normalized phone,
// translated disposition, projected custom fields, and tags. Custom field
// definitions are fetched fresh on every request; their schema is owned
// by the CRM and can change between calls.
func (s *SyncService) buildContactPayload(ctx context.Context, client CRMClient, tenant *domain.TenantConfig, event *domain.LeadEvent, phone string) (*highlevel.ContactPayload, error) {
	defs, err := client.ListCustomFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("custom field listing failed: %w", err)
	}

	values := event.FieldValues()
	values["disposition"] = mapper.TranslateDisposition(event.Disposition)

	return &highlevel.ContactPayload{
		FirstName:   event.FirstName,
		LastName:    event.LastName,
		Email:       event.Email,
		Phone:       phone,
		City:        event.City,
		State:       event.State,
		Zip:         event.Zip,
		Country:     event.Country,
		Address1:    fmt.Sprintf("%s, %s %s", event.City, event.State, event.Zip),
		Tags:        mapper.MapTags(event.Disposition, tenant.DispositionTagMapping),
		CustomField: mapper.ProjectCustomFields(values, defs, s.logger),
	}, nil
}

func (s *SyncService) createContact(ctx context.Context, client CRMClient, tenant *domain.TenantConfig, event *domain.LeadEvent, payload *highlevel.ContactPayload, log *zap.Logger) (*domain.SyncResult, error) {
	contact, err := client.CreateContact(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("contact creation failed: %w", err)
	}
	log.Info("contact created", zap.String("contact_id", contact.ID))

	if _, err := client.AddNote(ctx, contact.ID, buildNoteBody(event), tenant.UserID); err != nil {
		return nil, fmt.Errorf("note creation failed: %w", err)
	}

	if err := s.createOpportunity(ctx, client, tenant, event, contact.ID, log); err != nil {
		return nil, err
	}

	return &domain.SyncResult{ContactID: contact.ID, Action: domain.SyncActionCreated}, nil
}

func (s *SyncService) updateContact(ctx context.Context, client CRMClient, tenant *domain.TenantConfig, event *domain.LeadEvent, existing *highlevel.Contact, payload *highlevel.ContactPayload, log *zap.Logger) (*domain.SyncResult, error) {
	contact, err := client.UpdateContact(ctx, existing.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("contact update failed: %w", err)
	}
	log.Info("contact updated", zap.String("contact_id", contact.ID))

	if _, err := client.AddNote(ctx, contact.ID, buildNoteBody(event), tenant.UserID); err != nil {
		return nil, fmt.Errorf("note creation failed: %w", err)
	}

	return &domain.SyncResult{ContactID: contact.ID, Action: domain.SyncActionUpdated}, nil
}

// createOpportunity places a fresh contact in the tenant's configured
// pipeline and stage. A missing pipeline or stage skips the step
// silently; opportunities are optional per tenant.
func (s *SyncService) createOpportunity(ctx context.Context, client CRMClient, tenant *domain.TenantConfig, event *domain.LeadEvent, contactID string, log *zap.Logger) error {
	pipelines, err := client.ListPipelines(ctx)
	if err != nil {
		return fmt.Errorf("pipeline listing failed: %w", err)
	}

	pipeline := findPipeline(pipelines, tenant.PipelineNameOrDefault())
	if pipeline == nil {
		log.Debug("pipeline not found, skipping opportunity",
			zap.String("pipeline_name", tenant.PipelineNameOrDefault()),
		)
		return nil
	}
	stage := findStage(pipeline.Stages, tenant.FirstStageNameOrDefault())
	if stage == nil {
		log.Debug("stage not found, skipping opportunity",
			zap.String("stage_name", tenant.FirstStageNameOrDefault()),
		)
		return nil
	}

	opportunity, err := client.CreateOpportunity(ctx, pipeline.ID, &highlevel.OpportunityPayload{
		Title:     event.FirstName + " " + event.LastName,
		StageID:   stage.ID,
		ContactID: contactID,
		Status:    "open",
	})
	if err != nil {
		return fmt.Errorf("opportunity creation failed: %w", err)
	}

	log.Info("opportunity created",
		zap.String("opportunity_id", opportunity.ID),
		zap.String("pipeline_id", pipeline.ID),
		zap.String("stage_id", stage.ID),
	)
	return nil
}

// recordEvent writes the audit row for a processed webhook. Failures are
// logged and swallowed.
func (s *SyncService) recordEvent(ctx context.Context, event *domain.LeadEvent, phone string, result *domain.SyncResult, syncErr error) {
	record := &domain.SyncEvent{
		LocationID:  event.LocationID,
		Phone:       phone,
		Disposition: event.Disposition,
	}
	if syncErr != nil {
		record.Action = domain.SyncActionFailed
		record.Error = syncErr.Error()
	} else {
		record.Action = result.Action
		record.ContactID = result.ContactID
	}

	if err := s.eventRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to record sync event",
			zap.Error(err),
			zap.String("location_id", event.LocationID),
			zap.String("phone", phone),
		)
	}
}

// ListEvents returns recorded sync events for the admin API, newest first
func (s *SyncService) ListEvents(ctx context.Context, page, pageSize int, filters *repository.SyncEventFilters) ([]domain.SyncEvent, int64, error) {
	return s.eventRepo.List(ctx, page, pageSize, filters)
}

// findPipeline returns the first pipeline with an exactly matching name
func findPipeline(pipelines []highlevel.Pipeline, name string) *highlevel.Pipeline {
	for i := range pipelines {
		if pipelines[i].Name == name {
			return &pipelines[i]
		}
	}
	return nil
}

// findStage returns the first stage with an exactly matching name
func findStage(stages []highlevel.Stage, name string) *highlevel.Stage {
	for i := range stages {
		if stages[i].Name == name {
			return &stages[i]
		}
	}
	return nil
}

// buildNoteBody composes the note attached after every sync. The dialer's
// free-text note comes last; the summary lines keep the note useful when
// the agent left none.
func buildNoteBody(event *domain.LeadEvent) string {
	var parts []string
	if label := mapper.TranslateDisposition(event.Disposition); label != "" {
		parts = append(parts, "Disposition: "+label)
	} else if event.Disposition != "" {
		parts = append(parts, "Disposition: "+event.Disposition)
	}
	if event.TermReason != "" {
		parts = append(parts, "Term reason: "+event.TermReason)
	}
	if event.TalkTime != "" {
		parts = append(parts, "Talk time: "+event.TalkTime)
	}
	if event.CallNote != "" {
		parts = append(parts, event.CallNote)
	}
	if len(parts) == 0 {
		return "Call event received from dialer"
	}
	return strings.Join(parts, "\n")
}
