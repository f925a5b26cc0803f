package port

import "errors"

var (
	// ErrUnauthenticated is returned by write operations invoked without a
	// principal.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrNotFound covers both missing records and records owned by another
	// principal.
	ErrNotFound = errors.New("not found")
	// ErrValidation wraps every input validation failure.
	ErrValidation = errors.New("validation failed")
	// ErrConfiguration signals a missing required setting, such as the
	// generation API key.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidTransition is returned when a campaign status change would
	// move the state machine backwards.
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	// ErrGenerationInProgress is returned when another instance holds the
	// generation lease for a campaign.
	ErrGenerationInProgress = errors.New("generation already in progress")
)
