package database

import "errors"

// ErrNotFound is returned by Open when the database does not exist and
// creation is disabled.
var ErrNotFound = errors.New("history database not found")
