package analysis

import "errors"

var (
	// ErrMissingAPIKey is returned by Analyze when no API key is available.
	// The key is not checked before the first call.
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrEmptyResponse is returned when the service answers without a choice.
	ErrEmptyResponse = errors.New("no completion returned")

	// ErrServiceStatus is returned when the service answers with a non-2xx status.
	ErrServiceStatus = errors.New("analysis service error")
)
