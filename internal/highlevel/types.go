package highlevel

import "fmt"

// APIError is returned for any unsuccessful CRM call, carrying the HTTP
// status the API answered with.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("highlevel api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("highlevel api error: status %d", e.StatusCode)
}

// Contact is the CRM contact entity. The id is assigned by the CRM.
type Contact struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address1    string            `json:"address1"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	Zip         string            `json:"zip"`
	Country     string            `json:"country"`
	Tags        []string          `json:"tags"`
	CustomField map[string]string `json:"customField"`
}

// ContactPayload is the create/update body for a contact. Custom field
// values are keyed by the CRM-assigned custom field id.
type ContactPayload struct {
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address1    string            `json:"address1"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	Zip         string            `json:"zip"`
	Country     string            `json:"country"`
	Tags        []string          `json:"tags,omitempty"`
	CustomField map[string]string `json:"customField,omitempty"`
}

// CustomFieldDefinition describes one dynamically-schemed contact field.
// FieldKey is namespaced, e.g. "contact.disposition".
type CustomFieldDefinition struct {
	ID       string `json:"id"`
	FieldKey string `json:"fieldKey"`
	Value    string `json:"value"`
}

// Note is free text attached to a contact
type Note struct {
	ID     string `json:"id"`
	Body   string `json:"body"`
	UserID string `json:"userId"`
}

// Stage is one step of a pipeline
type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Pipeline is a sales pipeline with its ordered stages
type Pipeline struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Stages []Stage `json:"stages"`
}

// Opportunity is a deal placed at a stage within a pipeline
type Opportunity struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StageID   string `json:"stageId"`
	ContactID string `json:"contactId"`
	Status    string `json:"status"`
}

// OpportunityPayload is the create/update body for an opportunity
type OpportunityPayload struct {
	Title     string `json:"title"`
	StageID   string `json:"stageId"`
	ContactID string `json:"contactId"`
	Status    string `json:"status"`
}
