package courseService

import "errors"

// Sentinel errors surfaced to the controllers. Checked with errors.Is and
// mapped onto HTTP status codes there.
var (
	// ErrNotFound is returned when the requested course, set, quiz or
	// question does not exist or has been deleted.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyPassed blocks resubmission of a quiz the user already passed.
	ErrAlreadyPassed = errors.New("quiz already passed")

	// ErrValidation is returned for malformed input, e.g. a missing answers
	// list or an unknown item type.
	ErrValidation = errors.New("invalid request data")
)
