package service

import "errors"

// Common service errors
var (
	// ErrTenantNotFound is returned when no config exists for a location id
	ErrTenantNotFound = errors.New("tenant config not found")

	// ErrTenantExists is returned when registering a location id twice
	ErrTenantExists = errors.New("tenant config already exists")

	// ErrInvalidTagRules is returned when a disposition tag mapping is malformed
	ErrInvalidTagRules = errors.New("invalid disposition tag mapping")
)
