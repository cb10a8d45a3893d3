package session

import "errors"

var (
	// ErrInvalidURL is returned when a URL cannot be parsed or has no host.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrSessionNotFound is returned when a session directory does not exist.
	ErrSessionNotFound = errors.New("session not found")
)
