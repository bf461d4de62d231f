// Package highlevel provides an authenticated REST client for the
// HighLevel CRM, scoped to a single location. The client is built per
// webhook request and never shared across requests.
package highlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/leadbridge/dialer-sync-api/internal/config"
	"go.uber.org/zap"
)

// Client talks to the HighLevel REST API for one location. The configured
// tenant key is only used to resolve the location-scoped API key; every
// other call authenticates with the resolved key.
type Client struct {
	http        *http.Client
	baseURL     string
	agencyKey   string
	locationID  string
	locationKey string
	logger      *zap.Logger
}

// NewClient creates a client for one location. Call Authenticate before
// any other operation.
func NewClient(cfg *config.CRMConfig, locationID, agencyKey string, logger *zap.Logger) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.RequestTimeoutDuration()},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		agencyKey:  agencyKey,
		locationID: locationID,
		logger:     logger,
	}
}

// Authenticate resolves and memoizes the location-scoped API key by
// fetching the location with the configured tenant key. It is a no-op if
// the key is already resolved.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.locationKey != "" {
		return nil
	}

	var location struct {
		APIKey string `json:"apiKey"`
	}
	if err := c.call(ctx, http.MethodGet, "/locations/"+c.locationID, c.agencyKey, nil, nil, &location); err != nil {
		return err
	}
	if location.APIKey == "" {
		return &APIError{StatusCode: http.StatusOK, Message: "location has no api key"}
	}

	c.locationKey = location.APIKey
	c.logger.Debug("resolved location api key", zap.String("location_id", c.locationID))
	return nil
}

// LookupContactByPhone finds a contact by exact phone match. Returns
// (nil, nil) when no contact matches; the API's 422 answer for unknown
// numbers is treated as not-found, not as an error. When the API returns
// several matches the first one wins.
func (c *Client) LookupContactByPhone(ctx context.Context, phone string) (*Contact, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Contacts []Contact `json:"contacts"`
	}
	query := url.Values{"phone": {phone}}
	err = c.call(ctx, http.MethodGet, "/contacts/lookup", key, query, nil, &body)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
			return nil, nil
		}
		return nil, err
	}
	if len(body.Contacts) == 0 {
		return nil, nil
	}
	return &body.Contacts[0], nil
}

// CreateContact creates a new contact
func (c *Client) CreateContact(ctx context.Context, payload *ContactPayload) (*Contact, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var contact Contact
	if err := c.call(ctx, http.MethodPost, "/contacts/", key, nil, payload, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact updates an existing contact
func (c *Client) UpdateContact(ctx context.Context, contactID string, payload *ContactPayload) (*Contact, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var contact Contact
	if err := c.call(ctx, http.MethodPut, "/contacts/"+contactID, key, nil, payload, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListCustomFields fetches the location's custom field definitions.
// Returns nil when the tenant has none defined.
func (c *Client) ListCustomFields(ctx context.Context) ([]CustomFieldDefinition, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		CustomFields []CustomFieldDefinition `json:"customFields"`
	}
	if err := c.call(ctx, http.MethodGet, "/custom-fields/", key, nil, nil, &body); err != nil {
		return nil, err
	}
	if len(body.CustomFields) == 0 {
		return nil, nil
	}
	return body.CustomFields, nil
}

// AddNote attaches a free-text note to a contact
func (c *Client) AddNote(ctx context.Context, contactID, noteBody, userID string) (*Note, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]string{
		"body":   noteBody,
		"userID": userID,
	}
	var note Note
	if err := c.call(ctx, http.MethodPost, "/contacts/"+contactID+"/notes/", key, nil, payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListPipelines fetches the location's pipelines with their stages.
// Returns nil when the location has none.
func (c *Client) ListPipelines(ctx context.Context) ([]Pipeline, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Pipelines []Pipeline `json:"pipelines"`
	}
	if err := c.call(ctx, http.MethodGet, "/pipelines/", key, nil, nil, &body); err != nil {
		return nil, err
	}
	if len(body.Pipelines) == 0 {
		return nil, nil
	}
	return body.Pipelines, nil
}

// ListOpportunities fetches a pipeline's opportunities, optionally
// filtered by a free-text query. Returns nil when there are none.
func (c *Client) ListOpportunities(ctx context.Context, pipelineID, search string) ([]Opportunity, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var query url.Values
	if search != "" {
		query = url.Values{"query": {search}}
	}
	var body struct {
		Opportunities []Opportunity `json:"opportunities"`
	}
	if err := c.call(ctx, http.MethodGet, "/pipelines/"+pipelineID+"/opportunities", key, query, nil, &body); err != nil {
		return nil, err
	}
	if len(body.Opportunities) == 0 {
		return nil, nil
	}
	return body.Opportunities, nil
}

// CreateOpportunity creates an opportunity within a pipeline
func (c *Client) CreateOpportunity(ctx context.Context, pipelineID string, payload *OpportunityPayload) (*Opportunity, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var opportunity Opportunity
	if err := c.call(ctx, http.MethodPost, "/pipelines/"+pipelineID+"/opportunities/", key, nil, payload, &opportunity); err != nil {
		return nil, err
	}
	return &opportunity, nil
}

// UpdateOpportunity updates an existing opportunity
func (c *Client) UpdateOpportunity(ctx context.Context, pipelineID, opportunityID string, payload *OpportunityPayload) (*Opportunity, error) {
	key, err := c.requireLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	var opportunity Opportunity
	if err := c.call(ctx, http.MethodPut, "/pipelines/"+pipelineID+"/opportunities/"+opportunityID, key, nil, payload, &opportunity); err != nil {
		return nil, err
	}
	return &opportunity, nil
}

// requireLocationKey resolves the location key if it has not been resolved
// yet and returns it. Mutating calls never run with the tenant key.
func (c *Client) requireLocationKey(ctx context.Context) (string, error) {
	if c.locationKey == "" {
		if err := c.Authenticate(ctx); err != nil {
			return "", err
		}
	}
	return c.locationKey, nil
}

// call performs one HTTP round trip and decodes a 2xx JSON body into out.
// Any other status is returned as an *APIError.
func (c *Client) call(ctx context.Context, method, path, bearer string, query url.Values, payload, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("crm call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
		)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error body.
// The API nests messages under varying keys, so fall back to the raw body.
func extractErrorMessage(data []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err == nil {
		if msg, ok := body["msg"].(string); ok {
			return msg
		}
		if msg, ok := body["message"].(string); ok {
			return msg
		}
		for _, v := range body {
			if nested, ok := v.(map[string]interface{}); ok {
				if msg, ok := nested["message"].(string); ok {
					return msg
				}
			}
		}
	}

	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
