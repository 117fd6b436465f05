package analyze

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// defaultMaxRetries is the number of additional attempts per provider
	// after a retryable failure
	defaultMaxRetries = 2
	// defaultRetryBackoff is the fixed delay between retry attempts
	defaultRetryBackoff = 2 * time.Second
)

// Analyzer runs an ordered provider chain. Each provider gets the request
// with bounded retries on transient failures; credential and rate limit
// failures skip straight to the next provider.
type Analyzer struct {
	providers  []Provider
	maxRetries int
	backoff    time.Duration
}

// AnalyzerOption configures an Analyzer
type AnalyzerOption func(*Analyzer)

// WithMaxRetries sets the per-provider retry count for transient failures
func WithMaxRetries(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.maxRetries = n
	}
}

// WithRetryBackoff sets the fixed delay between retry attempts
func WithRetryBackoff(d time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		a.backoff = d
	}
}

// NewAnalyzer creates an Analyzer over the given providers, tried in order
func NewAnalyzer(providers []Provider, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		providers:  providers,
		maxRetries: defaultMaxRetries,
		backoff:    defaultRetryBackoff,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze runs the document text through the provider chain and returns the
// first successful normalized result. Text is truncated to MaxTextLength
// before submission. Returns ErrNoAnalysisPath wrapped with per-provider
// failures when every provider is unavailable or failed.
func (a *Analyzer) Analyze(ctx context.Context, text, sourceURL string) (*ScanResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoText
	}

	req := Request{
		Text:      truncateText(text),
		SourceURL: sourceURL,
	}

	var failures []string

	for _, provider := range a.providers {
		if !provider.Available() {
			failures = append(failures, fmt.Sprintf("%s: not configured", provider.Name()))
			continue
		}

		result, err := a.analyzeWithRetry(ctx, provider, req)
		if err != nil {
			log.Warn().Err(err).Str("provider", provider.Name()).Msg("analysis provider failed")

			// credential and rate limit failures are user-actionable and
			// abort the chain outright: falling through would mask the
			// message the user needs to see
			if fatal(err) {
				return nil, fmt.Errorf("%s: %w", provider.Name(), err)
			}

			failures = append(failures, fmt.Sprintf("%s: %v", provider.Name(), err))

			if ctx.Err() != nil {
				break
			}

			continue
		}

		log.Info().
			Str("provider", provider.Name()).
			Int("overall_severity", int(result.OverallSeverity)).
			Int("clauses", len(result.Clauses)).
			Bool("parse_error", result.ParseError).
			Msg("analysis complete")

		return result, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoAnalysisPath, strings.Join(failures, "; "))
}

// analyzeWithRetry attempts a single provider, retrying transient failures
// up to the configured count with a fixed backoff
func (a *Analyzer) analyzeWithRetry(ctx context.Context, provider Provider, req Request) (*ScanResult, error) {
	var lastErr error

	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			log.Debug().Str("provider", provider.Name()).Int("attempt", attempt+1).Msg("retrying analysis")

			select {
			case <-time.After(a.backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := provider.Analyze(ctx, req)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !retryable(err) {
			break
		}
	}

	return nil, lastErr
}

// fatal reports whether an error must abort the provider chain instead of
// falling through to the next provider
func fatal(err error) bool {
	return errors.Is(err, ErrAuthFailed) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrRateLimited) ||
		errors.Is(err, context.Canceled)
}

// retryable reports whether an error is worth retrying against the same
// provider. Credential, quota, and rate limit failures will not improve
// on retry; server errors and timeouts might.
func retryable(err error) bool {
	switch {
	case errors.Is(err, ErrAuthFailed),
		errors.Is(err, ErrQuotaExceeded),
		errors.Is(err, ErrRateLimited),
		errors.Is(err, ErrEmptyResponse),
		errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, ErrServerError),
		errors.Is(err, context.DeadlineExceeded):
		return true
	default:
		return false
	}
}
