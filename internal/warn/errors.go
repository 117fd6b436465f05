package warn

import "errors"

var (
	// ErrPhraseMismatch is returned when the typed confirmation does not
	// match the unlock phrase
	ErrPhraseMismatch = errors.New("confirmation phrase does not match")
	// ErrProceedLocked is returned when proceed is attempted before the
	// unlock condition is met
	ErrProceedLocked = errors.New("proceed is still locked")
	// ErrNotBlocking is returned for unlock interactions outside a
	// blocking state
	ErrNotBlocking = errors.New("no blocking warning is active")
)
