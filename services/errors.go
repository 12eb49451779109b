package services

import "errors"

// Error kinds per operation so callers can tell "no data" from "store
// unreachable" from "rejected write". Controllers map these to HTTP statuses.
var (
	// ErrNotFound: the referenced entity or document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: uniqueness or referential constraint would be violated.
	// Checked before the write; the write is not attempted.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable: an optional external service (document store, push
	// provider) is not configured or unreachable. Most read paths degrade
	// to empty results instead of returning this.
	ErrUnavailable = errors.New("service unavailable")
)
