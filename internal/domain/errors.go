package domain

import "errors"

var (
	// ErrNotFound is returned whenever a referenced hotel, room, user or
	// booking id does not exist. Missing rows are never a silent no-op.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRange rejects zero-length or inverted stays (date_from >= date_to)
	// before any storage access.
	ErrInvalidRange = errors.New("date_from must be before date_to")

	// ErrInvalidPagination rejects non-positive limits and negative offsets.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrCapacityExceeded means admission lost the race or the room was already
	// fully booked for the requested interval. A business outcome, not a fault.
	ErrCapacityExceeded = errors.New("no units left for the requested dates")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when a user acts on a booking they do not own.
	ErrForbidden = errors.New("forbidden")
)
