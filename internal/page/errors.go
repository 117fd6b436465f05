package page

import "errors"

var (
	// ErrMissingURL is returned when a snapshot has no URL
	ErrMissingURL = errors.New("snapshot is missing a page URL")
	// ErrInvalidURL is returned when the snapshot URL cannot be parsed
	ErrInvalidURL = errors.New("snapshot URL is not a valid absolute URL")
	// ErrUnparsableHTML is returned when the snapshot HTML cannot be parsed
	ErrUnparsableHTML = errors.New("snapshot HTML could not be parsed")
)
