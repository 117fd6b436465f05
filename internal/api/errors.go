package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrTabIDRequired is returned when a request omits the tab identifier
	ErrTabIDRequired = errors.New("tab id required")
	// ErrURLRequired is returned when a page submission omits the URL
	ErrURLRequired = errors.New("url required")
	// ErrHTMLRequired is returned when a page submission omits the HTML snapshot
	ErrHTMLRequired = errors.New("html snapshot required")
	// ErrResultRequired is returned when a warning replay omits the analysis result
	ErrResultRequired = errors.New("analysis result required")
	// ErrHistoryNotConfigured is returned when the history store is nil
	ErrHistoryNotConfigured = errors.New("scan history not configured")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
)
