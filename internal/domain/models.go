package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns the UUID client-side so databases without
// gen_random_uuid support (sqlite in tests) get one as well.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Defaults applied when a tenant config leaves the business mapping blank.
const (
	DefaultTag          = "New Lead"
	DefaultPipelineName = "New Leads"
	DefaultStageName    = "New Lead"
)

// TagRule maps one CRM tag to the set of dialer disposition codes that
// should produce it. Rules are evaluated in stored order and the first
// match wins, so the slice order is significant.
type TagRule struct {
	Tag          string   `json:"tag"`
	Dispositions []string `json:"dispositions"`
}

// TagRules is the ordered rule list stored on a tenant config.
type TagRules []TagRule

// TenantConfig holds one location's CRM credentials and mapping rules.
// It is looked up by LocationID on every webhook and treated as immutable
// for the duration of a request.
type TenantConfig struct {
	BaseModel
	LocationID     string `gorm:"type:varchar(100);uniqueIndex;not null;column:location_id" json:"locationId"`
	LocationAPIKey string `gorm:"type:varchar(500);not null;column:location_api_key" json:"locationApiKey"`
	UserID         string `gorm:"type:varchar(100);not null;column:user_id" json:"userId"`
	PipelineName   string `gorm:"type:varchar(200);column:pipeline_name" json:"pipelineName,omitempty"`
	FirstStageName string `gorm:"type:varchar(200);column:first_stage_name" json:"firstStageName,omitempty"`

	// Ordered tag rules, stored as JSON
	DispositionTagMapping TagRules `gorm:"serializer:json;column:disposition_tag_mapping" json:"dispositionTagMapping"`
}

// PipelineNameOrDefault returns the configured pipeline name, falling back
// to the shared default when unset.
func (t *TenantConfig) PipelineNameOrDefault() string {
	if t.PipelineName != "" {
		return t.PipelineName
	}
	return DefaultPipelineName
}

// FirstStageNameOrDefault returns the configured first stage name, falling
// back to the shared default when unset.
func (t *TenantConfig) FirstStageNameOrDefault() string {
	if t.FirstStageName != "" {
		return t.FirstStageName
	}
	return DefaultStageName
}

// SyncAction describes what a processed webhook did to the CRM contact
type SyncAction string

const (
	SyncActionCreated SyncAction = "created"
	SyncActionUpdated SyncAction = "updated"
	SyncActionFailed  SyncAction = "failed"
)

// SyncEvent is the audit record written after each processed webhook.
// Writes are best-effort; a failed insert never fails the webhook itself.
type SyncEvent struct {
	BaseModel
	LocationID  string     `gorm:"type:varchar(100);index;not null;column:location_id" json:"locationId"`
	Phone       string     `gorm:"type:varchar(20);index;column:phone" json:"phone"`
	Action      SyncAction `gorm:"type:varchar(20);not null;column:action" json:"action"`
	ContactID   string     `gorm:"type:varchar(100);column:contact_id" json:"contactId,omitempty"`
	Disposition string     `gorm:"type:varchar(50);column:disposition" json:"disposition,omitempty"`
	Error       string     `gorm:"type:text;column:error" json:"error,omitempty"`
}
