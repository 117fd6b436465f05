package extract

import "errors"

var (
	// ErrNoTermsFound is returned when no ToS content or candidate links exist
	// anywhere on the page. Never treated as "safe" downstream.
	ErrNoTermsFound = errors.New("no terms of service found on this page")
)
