package entity

import "errors"

// Domain errors
var (
	// Project errors
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidProject  = errors.New("invalid project data")

	// Schema errors
	ErrInvalidSchema  = errors.New("invalid site schema")
	ErrPresetNotFound = errors.New("preset not found")

	// Export errors
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
