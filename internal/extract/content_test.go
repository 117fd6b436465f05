package extract

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses space runs",
			input: "terms   of\t\tservice",
			want:  "terms of service",
		},
		{
			name:  "squeezes blank lines",
			input: "section one\n\n\n\nsection two",
			want:  "section one\n\nsection two",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n agreement \n  ",
			want:  "agreement",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.input))
		})
	}
}

func TestTextFromHTML_ExtractsLegalText(t *testing.T) {
	html := `<html><body><main>` + legalBoilerplate(15) + `</main></body></html>`

	pageURL, err := url.Parse("https://example.com/terms")
	require.NoError(t, err)

	text := TextFromHTML(html, pageURL)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "terminate your account")
	assert.Greater(t, len(text), minMainContentChars)
}

func TestTextFromDocument_PrefersMainRegion(t *testing.T) {
	html := `<html><body>
		<nav><a href="/home">Home</a><a href="/pricing">Pricing</a></nav>
		<main>` + legalBoilerplate(15) + `</main>
		<footer>Copyright Example Inc.</footer>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	text := textFromDocument(doc)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "terminate your account")
	assert.NotContains(t, text, "Pricing")
	assert.NotContains(t, text, "Copyright Example Inc.")
}

func TestTextFromDocument_FallsBackToStrippedBody(t *testing.T) {
	html := `<html><body>
		<script>window.track("signup")</script>
		<div class="cookie-banner">We use cookies.</div>
		<div>` + legalBoilerplate(15) + `</div>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	text := textFromDocument(doc)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "terminate your account")
	assert.NotContains(t, text, "window.track")
	assert.NotContains(t, text, "We use cookies.")
}
