package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t\r\f]+`)
	blankLines = regexp.MustCompile(`\n\s*\n+`)
)

// CleanText normalizes extracted text: collapses space runs and squeezes
// repeated blank lines down to one.
func CleanText(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// TextFromHTML converts an HTML document to cleaned plain text. Readability
// is tried first; when it cannot isolate an article (legal pages are often
// wall-of-text with no article markup) the selector-based fallback strips
// chrome and prefers the main content region. Shared by the local extraction
// path and the fetch relay.
func TextFromHTML(html string, pageURL *url.URL) string {
	if article, err := readability.FromReader(strings.NewReader(html), pageURL); err == nil {
		if text := CleanText(article.TextContent); len(text) > minMainContentChars {
			return text
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	return textFromDocument(doc)
}

// textFromDocument extracts cleaned text from an already-parsed document,
// preferring the main content region over the full stripped body.
func textFromDocument(doc *goquery.Document) string {
	for _, sel := range strippedSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range mainContentSelectors {
		region := doc.Find(sel).First()
		if region.Length() == 0 {
			continue
		}

		if text := CleanText(region.Text()); len(text) > minMainContentChars {
			return text
		}
	}

	return CleanText(doc.Find("body").Text())
}
