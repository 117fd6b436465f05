// Package extract locates Terms of Service text for a captured page. The
// strategy chain short-circuits on first success: the current page may itself
// be the ToS document, the ToS may be embedded inline in the signup flow, or
// it must be discovered via links and fetched by the relay.
package extract

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/page"
)

// Sources for locally-extracted text.
const (
	// SourceCurrentPage means the captured page itself is the ToS document
	SourceCurrentPage = "current-page"
	// SourceInline means a ToS block embedded in the captured page
	SourceInline = "inline"
)

// Result is the outcome of one extraction attempt: either Success or
// Failure. Produced fresh per scan attempt, never cached across navigations.
type Result interface {
	isExtractionResult()
}

// Success carries locally-extracted ToS text.
type Success struct {
	// Source is SourceCurrentPage, SourceInline, or the fetched URL
	Source string `json:"source"`
	// Text is the cleaned ToS text
	Text string `json:"text"`
	// CharCount is len(Text)
	CharCount int `json:"char_count"`
}

func (Success) isExtractionResult() {}

// Failure carries enough information for the orchestrator to continue the
// candidate cascade without re-running discovery.
type Failure struct {
	// Reason describes why local extraction did not produce text
	Reason string `json:"reason"`
	// NeedsRemoteFetch is true when candidate links exist for the relay
	NeedsRemoteFetch bool `json:"needs_remote_fetch"`
	// CandidateURL is the top-priority link to fetch first
	CandidateURL string `json:"candidate_url,omitempty"`
	// Links is the full discovered candidate list in priority order
	Links []Link `json:"links,omitempty"`
}

func (Failure) isExtractionResult() {}

// Err converts a terminal Failure to its error form.
func (f Failure) Err() error {
	return fmt.Errorf("%w: %s", ErrNoTermsFound, f.Reason)
}

// Extract runs the strategy chain against a captured page.
//
// Fetching is never attempted here: text that cannot be pulled out of the
// snapshot is delegated to the relay via Failure.NeedsRemoteFetch, since
// in-page fetches of cross-origin legal documents are blocked more often
// than not and a blocked response is indistinguishable from a short one.
func Extract(p *page.Page) Result {
	if IsTosPage(p) {
		if text := TextFromHTML(p.RawHTML, p.URL); len(text) > minMainContentChars {
			log.Debug().Str("url", p.URL.String()).Int("chars", len(text)).Msg("extracted current page as terms document")

			return Success{Source: SourceCurrentPage, Text: text, CharCount: len(text)}
		}
	}

	if text := extractInline(p); len(text) > minInlineChars {
		log.Debug().Str("url", p.URL.String()).Int("chars", len(text)).Msg("extracted inline terms block")

		return Success{Source: SourceInline, Text: text, CharCount: len(text)}
	}

	links := DiscoverLinks(p)
	if len(links) == 0 {
		return Failure{Reason: "no terms of service links found on this page"}
	}

	return Failure{
		Reason:           "terms content not present on page, remote fetch required",
		NeedsRemoteFetch: true,
		CandidateURL:     links[0].URL,
		Links:            links,
	}
}

// IsTosPage reports whether the captured page already is a ToS/legal
// document, judged by its URL, title, and first heading.
func IsTosPage(p *page.Page) bool {
	pageURL := strings.ToLower(p.URL.String())

	if IsPDFURL(pageURL) {
		for _, pattern := range []string{"terms", "tos", "legal", "privacy", "eula", "agreement"} {
			if strings.Contains(pageURL, pattern) {
				return true
			}
		}
	}

	for _, pattern := range tosURLPatterns {
		if strings.Contains(pageURL, pattern) {
			return true
		}
	}

	title := strings.ToLower(p.Title())
	heading := strings.ToLower(strings.TrimSpace(p.Doc.Find("h1").First().Text()))

	for _, pattern := range tosTitlePatterns {
		if strings.Contains(title, pattern) || (heading != "" && strings.Contains(heading, pattern)) {
			return true
		}
	}

	return false
}

// extractInline searches the fixed inline-selector list for an embedded ToS
// block. Invalid selectors cannot occur here (the list is static), but a
// matching element still has to clear the minimum length gate.
func extractInline(p *page.Page) string {
	for _, sel := range inlineTosSelectors {
		el := p.Doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}

		if text := CleanText(el.Text()); len(text) > minInlineChars {
			return text
		}
	}

	return ""
}
