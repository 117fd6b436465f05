package analyze

import (
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// Clause is a single concerning clause identified in a document
type Clause struct {
	// Type is the clause category
	Type severity.ClauseCategory `json:"type"`
	// Severity is the clause severity level
	Severity severity.Level `json:"severity"`
	// Quote is the relevant excerpt from the document, if any
	Quote string `json:"quote,omitempty"`
	// Explanation is a human-readable explanation of the concern
	Explanation string `json:"explanation"`
	// Mitigation describes any available opt-out or protection
	Mitigation *string `json:"mitigation"`
}

// Alternative is a suggested privacy-respecting replacement service
type Alternative struct {
	// Name is the alternative service name
	Name string `json:"name"`
	// URL is the alternative's website
	URL string `json:"url"`
	// Reason explains why the alternative is preferable
	Reason string `json:"reason,omitempty"`
}

// ScanResult is the normalized outcome of analyzing a document
type ScanResult struct {
	// OverallSeverity is the document-level severity tier
	OverallSeverity severity.Level `json:"overallSeverity"`
	// Category is the normalized service category
	Category severity.ServiceCategory `json:"category"`
	// ServiceName is the provider-identified service name, if any
	ServiceName string `json:"serviceName,omitempty"`
	// Summary is a one-sentence summary of the document
	Summary string `json:"summary,omitempty"`
	// Clauses are the concerning clauses found
	Clauses []Clause `json:"clauses"`
	// SuggestedAlternatives are provider-suggested replacements, present
	// only for unknown categories at elevated severity
	SuggestedAlternatives []Alternative `json:"suggestedAlternatives,omitempty"`
	// Lethal reports whether the document reaches the critical tier
	Lethal bool `json:"lethal"`
	// ParseError reports that the provider response could not be decoded
	// and the result is a degraded placeholder
	ParseError bool `json:"parseError,omitempty"`
	// RawResponse preserves the undecodable provider response for debugging
	RawResponse string `json:"rawResponse,omitempty"`
}
