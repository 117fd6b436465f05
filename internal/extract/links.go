package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ssudhiravinesh/blindsight/internal/page"
)

// LinkKind distinguishes explicit ToS links from broader legal/privacy links.
type LinkKind string

const (
	// LinkTos marks an explicit terms-of-service link
	LinkTos LinkKind = "tos"
	// LinkLegal marks a privacy/legal link
	LinkLegal LinkKind = "legal"
)

// Link priorities. Lower is tried first.
const (
	// PriorityTos is an explicit ToS keyword match
	PriorityTos = 1
	// PriorityLegal is a privacy/legal keyword match
	PriorityLegal = 2
	// PriorityGuess is a synthesized well-known path
	PriorityGuess = 3
)

// Link is a candidate ToS document discovered on (or guessed from) a page.
// Collected per page, discarded after the scan completes.
type Link struct {
	// URL is the absolute candidate address
	URL string `json:"url"`
	// DisplayText is the anchor text, or a kind-appropriate placeholder
	DisplayText string `json:"display_text"`
	// Kind classifies the link
	Kind LinkKind `json:"kind"`
	// Priority orders fetch attempts; lower first
	Priority int `json:"priority"`
	// IsPDF flags candidates that must go through the PDF extraction path
	IsPDF bool `json:"is_pdf"`
}

// DiscoverLinks scans all anchors on the page and classifies ToS/legal
// candidates by priority. When nothing matches, well-known origin-relative
// paths are synthesized as priority-3 guesses so the pipeline never gives up
// before trying them.
func DiscoverLinks(p *page.Page) []Link {
	var links []Link

	seen := make(map[string]struct{})

	p.Doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := p.ResolveHref(s.AttrOr("href", ""))
		if href == "" {
			return
		}

		if _, dup := seen[href]; dup {
			return
		}

		text := strings.TrimSpace(s.Text())
		allText := strings.ToLower(strings.Join([]string{text, s.AttrOr("title", ""), s.AttrOr("aria-label", "")}, " "))
		hrefLower := strings.ToLower(href)

		switch {
		case containsKeyword(allText, tosLinkKeywords) || exactKeyword(text, tosLinkKeywords) || containsKeyword(hrefLower, tosHrefKeywords):
			seen[href] = struct{}{}
			links = append(links, Link{
				URL:         href,
				DisplayText: orDefault(text, "Terms of Service"),
				Kind:        LinkTos,
				Priority:    PriorityTos,
				IsPDF:       IsPDFURL(href),
			})
		case containsKeyword(allText, legalLinkKeywords) || exactKeyword(text, legalLinkKeywords) || containsKeyword(hrefLower, legalHrefKeywords):
			seen[href] = struct{}{}
			links = append(links, Link{
				URL:         href,
				DisplayText: orDefault(text, "Legal Document"),
				Kind:        LinkLegal,
				Priority:    PriorityLegal,
				IsPDF:       IsPDFURL(href),
			})
		}
	})

	if len(links) == 0 {
		return guessWellKnownLinks(p)
	}

	sortByPriority(links)

	return links
}

// guessWellKnownLinks synthesizes origin-relative candidates from the
// well-known path list.
func guessWellKnownLinks(p *page.Page) []Link {
	origin := p.Origin()
	links := make([]Link, 0, len(wellKnownPaths))

	for _, path := range wellKnownPaths {
		links = append(links, Link{
			URL:         origin + path,
			DisplayText: "Terms of Service",
			Kind:        LinkTos,
			Priority:    PriorityGuess,
		})
	}

	return links
}

// sortByPriority is a stable insertion sort; candidate lists are tiny and
// discovery order must be preserved within a priority band.
func sortByPriority(links []Link) {
	for i := 1; i < len(links); i++ {
		for j := i; j > 0 && links[j].Priority < links[j-1].Priority; j-- {
			links[j], links[j-1] = links[j-1], links[j]
		}
	}
}

// IsPDFURL reports whether the URL path ends in .pdf.
func IsPDFURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.HasSuffix(strings.ToLower(rawURL), ".pdf")
	}

	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}

// containsKeyword reports whether text contains any keyword.
func containsKeyword(text string, keywords []string) bool {
	if text == "" {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))

	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	return false
}

// exactKeyword reports whether text equals a keyword after normalization.
// Catches bare "Terms" footer links whose surrounding text would otherwise
// be too generic.
func exactKeyword(text string, keywords []string) bool {
	if text == "" {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))

	for _, kw := range keywords {
		if text == kw {
			return true
		}
	}

	return false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
