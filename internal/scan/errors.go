package scan

import "errors"

var (
	// ErrScanInProgress is returned when a scan is requested while one is
	// already running for the same session. The caller should wait rather
	// than treat this as a failure.
	ErrScanInProgress = errors.New("a scan is already in progress for this page")
	// ErrNoSession is returned when an operation references a tab that has
	// not submitted a page
	ErrNoSession = errors.New("no page session for this tab")
	// ErrCandidatesUnreachable is returned when terms candidates were
	// discovered but every fetch was blocked or unusable. Distinct from a
	// page with no terms links at all.
	ErrCandidatesUnreachable = errors.New("no terms candidate could be fetched")
)
