package analyze

import "errors"

var (
	// ErrNoText is returned when analysis is requested with empty document text
	ErrNoText = errors.New("no document text provided")
	// ErrAuthFailed is returned when a provider rejects the configured credentials
	ErrAuthFailed = errors.New("provider authentication failed")
	// ErrQuotaExceeded is returned when a provider reports exhausted quota or denied access
	ErrQuotaExceeded = errors.New("provider quota exceeded or access denied")
	// ErrRateLimited is returned when a provider reports rate limiting
	ErrRateLimited = errors.New("provider rate limit exceeded")
	// ErrServerError is returned for provider-side 5xx failures, which are retryable
	ErrServerError = errors.New("provider server error")
	// ErrEmptyResponse is returned when a provider responds without any content
	ErrEmptyResponse = errors.New("empty response from provider")
	// ErrNoAnalysisPath is returned when no provider in the chain could
	// complete the analysis
	ErrNoAnalysisPath = errors.New("no analysis provider available")
)
