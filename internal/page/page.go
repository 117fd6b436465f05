// Package page turns raw page snapshots submitted by the browser client into
// parsed documents the detection and extraction heuristics can query.
package page

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"golang.org/x/net/publicsuffix"
)

// Snapshot is the raw payload the client captures from a tab: the page URL
// and its serialized DOM at capture time.
type Snapshot struct {
	// URL is the address of the captured page
	URL string `json:"url"`
	// HTML is the serialized document
	HTML string `json:"html"`
}

// Page is a parsed snapshot ready for heuristic scanning.
type Page struct {
	// URL is the parsed page address
	URL *url.URL
	// Doc is the parsed document
	Doc *goquery.Document
	// RawHTML preserves the submitted markup for text-extraction fallbacks
	RawHTML string
}

// Parse validates and parses a snapshot.
func Parse(snap Snapshot) (*Page, error) {
	if strings.TrimSpace(snap.URL) == "" {
		return nil, ErrMissingURL
	}

	u, err := url.Parse(snap.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return nil, ErrUnparsableHTML
	}

	return &Page{URL: u, Doc: doc, RawHTML: snap.HTML}, nil
}

// Title returns the trimmed document title.
func (p *Page) Title() string {
	return strings.TrimSpace(p.Doc.Find("title").First().Text())
}

// Origin returns scheme://host for resolving well-known path guesses.
func (p *Page) Origin() string {
	return p.URL.Scheme + "://" + p.URL.Host
}

// ResolveHref resolves a possibly-relative href against the page URL.
// Fragment-only and javascript: hrefs resolve to empty.
func (p *Page) ResolveHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := p.URL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}

	return resolved.String()
}

// Hostname returns the page host with any leading www label stripped. This is
// the key history entries are grouped under.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}

	return strings.TrimPrefix(u.Hostname(), "www.")
}

// RegisteredDomain returns the eTLD+1 for a page URL, falling back to the
// bare hostname when the public suffix list cannot resolve it (e.g. intranet
// hosts or IP literals).
func RegisteredDomain(rawURL string) string {
	host := Hostname(rawURL)

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}

	return etld1
}
