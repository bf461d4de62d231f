package domain

// LeadEvent is the inbound webhook payload, parsed from query parameters.
// The dialer sends everything as strings; absent parameters stay "".
type LeadEvent struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	DialedNumber string `json:"dialedNumber" validate:"required"`
	LocationID   string `json:"locationID" validate:"required"`

	Email           string `json:"email"`
	Disposition     string `json:"disposition"`
	TermReason      string `json:"termReason"`
	CallNote        string `json:"callNote"`
	TalkTime        string `json:"talkTime"`
	ListID          string `json:"listID"`
	ListDescription string `json:"listDescription"`
	LeadID          string `json:"leadID"`
	CampaignID      string `json:"campaignID"`
	SubscriberID    string `json:"subscriberID"`

	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`

	// Lead enrichment fields. The dialer's export screen grows new columns
	// over time; only fields named here are projected into CRM custom fields.
	PropertyType    string `json:"propertyType"`
	Bedrooms        string `json:"bedrooms"`
	Bathrooms       string `json:"bathrooms"`
	SquareFeet      string `json:"squareFeet"`
	YearBuilt       string `json:"yearBuilt"`
	EstimatedValue  string `json:"estimatedValue"`
	MotivationScore string `json:"motivationScore"`
	BestTimeToCall  string `json:"bestTimeToCall"`
	LeadSource      string `json:"leadSource"`
}

// FieldValues returns the flat value bag for custom field projection.
// Keys match the short names of the CRM's custom field keys (the segment
// after the first dot). The disposition entry holds the translated label
// and is filled in by the sync service, not here.
func (e *LeadEvent) FieldValues() map[string]string {
	return map[string]string{
		"termReason":      e.TermReason,
		"talkTime":        e.TalkTime,
		"callNote":        e.CallNote,
		"listId":          e.ListID,
		"listDescription": e.ListDescription,
		"leadId":          e.LeadID,
		"campaignId":      e.CampaignID,
		"subscriberId":    e.SubscriberID,
		"propertyType":    e.PropertyType,
		"bedrooms":        e.Bedrooms,
		"bathrooms":       e.Bathrooms,
		"squareFeet":      e.SquareFeet,
		"yearBuilt":       e.YearBuilt,
		"estimatedValue":  e.EstimatedValue,
		"motivationScore": e.MotivationScore,
		"bestTimeToCall":  e.BestTimeToCall,
		"leadSource":      e.LeadSource,
	}
}

// SyncResult is what the sync service reports back to the webhook handler
type SyncResult struct {
	ContactID string     `json:"contact_id"`
	Action    SyncAction `json:"-"`
}

// WebhookResponse is the success body for the dialer webhook
type WebhookResponse struct {
	ContactID string `json:"contact_id"`
}

// WebhookError is the failure body for the dialer webhook
type WebhookError struct {
	Error string `json:"error"`
}

// CreateTenantConfigRequest is the admin API payload for registering a tenant
type CreateTenantConfigRequest struct {
	LocationID            string  `json:"locationId" validate:"required,max=100"`
	LocationAPIKey        string  `json:"locationApiKey" validate:"required,max=500"`
	UserID                string  `json:"userId" validate:"required,max=100"`
	PipelineName          string  `json:"pipelineName" validate:"max=200"`
	FirstStageName        string  `json:"firstStageName" validate:"max=200"`
	DispositionTagMapping TagRules `json:"dispositionTagMapping"`
}

// UpdateTenantConfigRequest is the admin API payload for updating a tenant.
// LocationID is taken from the URL and cannot change.
type UpdateTenantConfigRequest struct {
	LocationAPIKey        string  `json:"locationApiKey" validate:"required,max=500"`
	UserID                string  `json:"userId" validate:"required,max=100"`
	PipelineName          string  `json:"pipelineName" validate:"max=200"`
	FirstStageName        string  `json:"firstStageName" validate:"max=200"`
	DispositionTagMapping TagRules `json:"dispositionTagMapping"`
}

// PaginatedResponse wraps list results for the admin API
type PaginatedResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// TenantConfigDTO is the admin API view of a tenant config. The API key is
// masked; it is write-only through the admin API.
type TenantConfigDTO struct {
	LocationID            string  `json:"locationId"`
	UserID                string  `json:"userId"`
	PipelineName          string  `json:"pipelineName,omitempty"`
	FirstStageName        string  `json:"firstStageName,omitempty"`
	DispositionTagMapping TagRules `json:"dispositionTagMapping"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}
