package service_test

import (
	"context"
	"testing"

	"github.com/leadbridge/dialer-sync-api/internal/config"
	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/highlevel"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"github.com/leadbridge/dialer-sync-api/internal/service"
	"github.com/leadbridge/dialer-sync-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeCRMClient records calls and plays back canned responses
type fakeCRMClient struct {
	authenticated bool
	authErr       error

	existingContact *highlevel.Contact
	lookupErr       error

	customFields []highlevel.CustomFieldDefinition
	pipelines    []highlevel.Pipeline

	createdPayload *highlevel.ContactPayload
	updatedID      string
	updatedPayload *highlevel.ContactPayload

	notes         []string
	noteUserIDs   []string
	opportunities []*highlevel.OpportunityPayload
}

func (f *fakeCRMClient) Authenticate(ctx context.Context) error {
	if f.authErr != nil {
		return f.authErr
	}
	f.authenticated = true
	return nil
}

func (f *fakeCRMClient) LookupContactByPhone(ctx context.Context, phone string) (*highlevel.Contact, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.existingContact, nil
}

func (f *fakeCRMClient) CreateContact(ctx context.Context, payload *highlevel.ContactPayload) (*highlevel.Contact, error) {
	f.createdPayload = payload
	return &highlevel.Contact{ID: "contact-created", Phone: payload.Phone}, nil
}

func (f *fakeCRMClient) UpdateContact(ctx context.Context, contactID string, payload *highlevel.ContactPayload) (*highlevel.Contact, error) {
	f.updatedID = contactID
	f.updatedPayload = payload
	return &highlevel.Contact{ID: contactID, Phone: payload.Phone}, nil
}

func (f *fakeCRMClient) ListCustomFields(ctx context.Context) ([]highlevel.CustomFieldDefinition, error) {
	return f.customFields, nil
}

func (f *fakeCRMClient) AddNote(ctx context.Context, contactID, body, userID string) (*highlevel.Note, error) {
	f.notes = append(f.notes, body)
	f.noteUserIDs = append(f.noteUserIDs, userID)
	return &highlevel.Note{ID: "note-1", Body: body}, nil
}

func (f *fakeCRMClient) ListPipelines(ctx context.Context) ([]highlevel.Pipeline, error) {
	return f.pipelines, nil
}

func (f *fakeCRMClient) CreateOpportunity(ctx context.Context, pipelineID string, payload *highlevel.OpportunityPayload) (*highlevel.Opportunity, error) {
	f.opportunities = append(f.opportunities, payload)
	return &highlevel.Opportunity{ID: "opp-1", Title: payload.Title}, nil
}

func defaultPipelines() []highlevel.Pipeline {
	return []highlevel.Pipeline{
		{
			ID:   "pipe-1",
			Name: domain.DefaultPipelineName,
			Stages: []highlevel.Stage{
				{ID: "stage-1", Name: domain.DefaultStageName},
				{ID: "stage-2", Name: "Contacted"},
			},
		},
	}
}

func newSyncService(db *gorm.DB, crm *fakeCRMClient) *service.SyncService {
	tenantRepo := repository.NewTenantConfigRepository(db)
	eventRepo := repository.NewSyncEventRepository(db)
	factory := func(locationID, apiKey string) service.CRMClient { return crm }
	syncCfg := &config.SyncConfig{TenantLookupTimeout: 5, EventRetentionDays: 90}
	return service.NewSyncService(tenantRepo, eventRepo, factory, syncCfg, zap.NewNop())
}

func leadEvent() *domain.LeadEvent {
	return &domain.LeadEvent{
		FirstName:    "Jane",
		LastName:     "Doe",
		DialedNumber: "(555) 123-4567",
		LocationID:   "loc-1",
		Email:        "jane@example.com",
		Disposition:  "SALE",
		TermReason:   "AGENT",
		TalkTime:     "120",
		CallNote:     "asked for a callback next week",
		City:         "Austin",
		State:        "TX",
		Zip:          "73301",
		Country:      "US",
	}
}

func TestSyncService_CreateFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestTenant(t, db, "loc-1", domain.TagRules{
		{Tag: "hot-lead", Dispositions: []string{"SALE"}},
	})

	crm := &fakeCRMClient{
		customFields: []highlevel.CustomFieldDefinition{
			{ID: "f1", FieldKey: "contact.disposition", Value: ""},
			{ID: "f2", FieldKey: "contact.talkTime", Value: ""},
		},
		pipelines: defaultPipelines(),
	}
	svc := newSyncService(db, crm)

	result, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.NoError(t, err)
	assert.Equal(t, "contact-created", result.ContactID)
	assert.Equal(t, domain.SyncActionCreated, result.Action)

	assert.True(t, crm.authenticated)
	require.NotNil(t, crm.createdPayload)
	assert.Equal(t, "+15551234567", crm.createdPayload.Phone)
	assert.Equal(t, "Austin, TX 73301", crm.createdPayload.Address1)
	assert.Equal(t, []string{"hot-lead"}, crm.createdPayload.Tags)
	assert.Equal(t, "Sale Made", crm.createdPayload.CustomField["f1"])
	assert.Equal(t, "120", crm.createdPayload.CustomField["f2"])

	require.Len(t, crm.notes, 1)
	assert.Contains(t, crm.notes[0], "Disposition: Sale Made")
	assert.Contains(t, crm.notes[0], "asked for a callback next week")
	assert.Equal(t, []string{"user-123"}, crm.noteUserIDs)

	require.Len(t, crm.opportunities, 1, "create flow adds exactly one opportunity")
	opp := crm.opportunities[0]
	assert.Equal(t, "Jane Doe", opp.Title)
	assert.Equal(t, "stage-1", opp.StageID)
	assert.Equal(t, "contact-created", opp.ContactID)
	assert.Equal(t, "open", opp.Status)

	// Outcome lands in the audit log
	var events []domain.SyncEvent
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, domain.SyncActionCreated, events[0].Action)
	assert.Equal(t, "contact-created", events[0].ContactID)
	assert.Equal(t, "+15551234567", events[0].Phone)
}

func TestSyncService_UpdateFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestTenant(t, db, "loc-1", nil)

	crm := &fakeCRMClient{
		existingContact: &highlevel.Contact{ID: "contact-42", Phone: "+15551234567"},
		pipelines:       defaultPipelines(),
	}
	svc := newSyncService(db, crm)

	result, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.NoError(t, err)
	assert.Equal(t, "contact-42", result.ContactID)
	assert.Equal(t, domain.SyncActionUpdated, result.Action)

	assert.Equal(t, "contact-42", crm.updatedID)
	assert.Nil(t, crm.createdPayload, "existing contact must not be re-created")
	require.Len(t, crm.notes, 1)
	assert.Empty(t, crm.opportunities, "update flow never creates opportunities")
}

func TestSyncService_TenantNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	crm := &fakeCRMClient{}
	svc := newSyncService(db, crm)

	_, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.ErrorIs(t, err, service.ErrTenantNotFound)
	assert.False(t, crm.authenticated, "CRM must not be touched without a tenant config")

	// The failure is still recorded
	var events []domain.SyncEvent
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, domain.SyncActionFailed, events[0].Action)
	assert.NotEmpty(t, events[0].Error)
}

func TestSyncService_MissingPipelineSkipsOpportunity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestTenant(t, db, "loc-1", nil)

	crm := &fakeCRMClient{pipelines: nil}
	svc := newSyncService(db, crm)

	result, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.NoError(t, err, "a missing pipeline is not an error")
	assert.Equal(t, domain.SyncActionCreated, result.Action)
	assert.Empty(t, crm.opportunities)
	require.Len(t, crm.notes, 1)
}

func TestSyncService_MissingStageSkipsOpportunity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "loc-1", nil)
	tenant.FirstStageName = "Nonexistent Stage"
	require.NoError(t, db.Save(tenant).Error)

	crm := &fakeCRMClient{pipelines: defaultPipelines()}
	svc := newSyncService(db, crm)

	result, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.NoError(t, err)
	assert.Equal(t, domain.SyncActionCreated, result.Action)
	assert.Empty(t, crm.opportunities)
}

func TestSyncService_ConfiguredPipelineAndStage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "loc-1", nil)
	tenant.PipelineName = "Sales"
	tenant.FirstStageName = "Inbound"
	require.NoError(t, db.Save(tenant).Error)

	crm := &fakeCRMClient{
		pipelines: []highlevel.Pipeline{
			{ID: "pipe-x", Name: "Sales", Stages: []highlevel.Stage{{ID: "stage-x", Name: "Inbound"}}},
		},
	}
	svc := newSyncService(db, crm)

	_, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.NoError(t, err)
	require.Len(t, crm.opportunities, 1)
	assert.Equal(t, "stage-x", crm.opportunities[0].StageID)
}

func TestSyncService_AuthFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestTenant(t, db, "loc-1", nil)

	crm := &fakeCRMClient{authErr: &highlevel.APIError{StatusCode: 401, Message: "invalid api key"}}
	svc := newSyncService(db, crm)

	_, err := svc.ProcessLeadEvent(context.Background(), leadEvent())
	require.Error(t, err)

	var apiErr *highlevel.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Nil(t, crm.createdPayload)
}

func TestSyncService_DefaultTagWhenNoRuleMatches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestTenant(t, db, "loc-1", domain.TagRules{
		{Tag: "hot-lead", Dispositions: []string{"SALE"}},
	})

	crm := &fakeCRMClient{pipelines: defaultPipelines()}
	svc := newSyncService(db, crm)

	event := leadEvent()
	event.Disposition = "NA"
	_, err := svc.ProcessLeadEvent(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, crm.createdPayload)
	assert.Equal(t, []string{domain.DefaultTag}, crm.createdPayload.Tags)
}
