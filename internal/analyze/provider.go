package analyze

import "context"

// Request is a single analysis request
type Request struct {
	// Text is the document text, already truncated to MaxTextLength
	Text string
	// SourceURL is the URL the document was extracted from, if known
	SourceURL string
}

// Provider analyzes a document and returns a normalized result.
// Implementations map transport and API failures onto the package error
// taxonomy so the chain can decide what is retryable.
type Provider interface {
	// Name identifies the provider in logs and combined errors
	Name() string
	// Available reports whether the provider has the credentials it needs
	Available() bool
	// Analyze sends the document for analysis
	Analyze(ctx context.Context, req Request) (*ScanResult, error)
}
