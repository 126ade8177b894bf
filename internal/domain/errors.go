package domain

import "errors"

// Error taxonomy shared by every layer. Lower layers wrap these so that
// handlers can match on them with errors.Is.
var (
	// ErrValidation a required field is missing or malformed
	ErrValidation = errors.New("validation error")

	// ErrSeatConflict the seat is already held by an active sale on the same trip
	ErrSeatConflict = errors.New("seat conflict")

	// ErrPastTripLocked a confirmed sale of a past trip cannot be deleted
	ErrPastTripLocked = errors.New("past trip locked")

	// ErrTransport the store or an upstream service is unavailable
	ErrTransport = errors.New("transport error")

	// ErrNotFound the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate a unique business key is already taken
	ErrDuplicate = errors.New("duplicate")

	// ErrInUse the entity is referenced and cannot be removed
	ErrInUse = errors.New("in use")
)
