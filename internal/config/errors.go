package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is() by callers that want to react to a specific problem.
var (
	// ErrEmptySitesDir is returned when no sessions root directory is configured.
	ErrEmptySitesDir = errors.New("invalid sites directory: must not be empty")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	// Every outbound GET must be bounded.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidAnalysisTimeout is returned when the analysis timeout is not positive.
	ErrInvalidAnalysisTimeout = errors.New("invalid analysis timeout: must be positive")

	// ErrEmptyModel is returned when no analysis model name is configured.
	ErrEmptyModel = errors.New("invalid model: must not be empty")

	// ErrEmptyEncoding is returned when no tokenizer encoding is configured.
	ErrEmptyEncoding = errors.New("invalid encoding: must not be empty")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")
)
