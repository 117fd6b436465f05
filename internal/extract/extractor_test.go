package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssudhiravinesh/blindsight/internal/page"
)

func parsePage(t *testing.T, rawURL, html string) *page.Page {
	t.Helper()

	p, err := page.Parse(page.Snapshot{URL: rawURL, HTML: html})
	require.NoError(t, err)

	return p
}

func legalBoilerplate(sentences int) string {
	return strings.Repeat("The service provider may modify, suspend, or terminate your account at any time without prior notice. ", sentences)
}

func TestExtract_CurrentPageIsTermsDocument(t *testing.T) {
	html := `<html><head><title>Terms of Service - Example</title></head><body>
		<main><h1>Terms of Service</h1><p>` + legalBoilerplate(20) + `</p></main>
	</body></html>`

	p := parsePage(t, "https://example.com/terms-of-service", html)

	result := Extract(p)

	success, ok := result.(Success)
	require.True(t, ok, "expected Success, got %#v", result)
	assert.Equal(t, SourceCurrentPage, success.Source)
	assert.Equal(t, len(success.Text), success.CharCount)
	assert.Greater(t, success.CharCount, minMainContentChars)
}

func TestExtract_InlineTermsBlock(t *testing.T) {
	html := `<html><head><title>Sign up</title></head><body>
		<form><input type="email"><input type="password"></form>
		<div class="terms-content">` + legalBoilerplate(8) + `</div>
	</body></html>`

	p := parsePage(t, "https://example.com/signup", html)

	result := Extract(p)

	success, ok := result.(Success)
	require.True(t, ok, "expected Success, got %#v", result)
	assert.Equal(t, SourceInline, success.Source)
	assert.Greater(t, success.CharCount, minInlineChars)
}

func TestExtract_ShortInlineBlockIgnored(t *testing.T) {
	html := `<html><head><title>Sign up</title></head><body>
		<div class="terms-content">By signing up you agree to our terms.</div>
		<footer><a href="/terms">Terms of Service</a></footer>
	</body></html>`

	p := parsePage(t, "https://example.com/signup", html)

	result := Extract(p)

	failure, ok := result.(Failure)
	require.True(t, ok, "expected Failure, got %#v", result)
	assert.True(t, failure.NeedsRemoteFetch)
	assert.Equal(t, "https://example.com/terms", failure.CandidateURL)
}

func TestExtract_DelegatesDiscoveredLinksToRelay(t *testing.T) {
	html := `<html><head><title>Create account</title></head><body>
		<footer>
			<a href="/privacy">Privacy Policy</a>
			<a href="/terms-of-service">Terms of Service</a>
		</footer>
	</body></html>`

	p := parsePage(t, "https://example.com/signup", html)

	result := Extract(p)

	failure, ok := result.(Failure)
	require.True(t, ok, "expected Failure, got %#v", result)
	assert.True(t, failure.NeedsRemoteFetch)
	require.Len(t, failure.Links, 2)

	// explicit ToS links order before legal/privacy regardless of DOM order
	assert.Equal(t, "https://example.com/terms-of-service", failure.CandidateURL)
	assert.Equal(t, LinkTos, failure.Links[0].Kind)
	assert.Equal(t, LinkLegal, failure.Links[1].Kind)
}

func TestExtract_NoLinksFallsBackToGuesses(t *testing.T) {
	html := `<html><head><title>Welcome</title></head><body>
		<p>Nothing legal here.</p><a href="/pricing">Pricing</a>
	</body></html>`

	p := parsePage(t, "https://example.com/welcome", html)

	result := Extract(p)

	failure, ok := result.(Failure)
	require.True(t, ok, "expected Failure, got %#v", result)
	assert.True(t, failure.NeedsRemoteFetch)
	require.NotEmpty(t, failure.Links)
	assert.Equal(t, "https://example.com/terms", failure.CandidateURL)

	for _, link := range failure.Links {
		assert.Equal(t, PriorityGuess, link.Priority)
	}
}

func TestIsTosPage(t *testing.T) {
	tests := []struct {
		name string
		url  string
		html string
		want bool
	}{
		{
			name: "url path match",
			url:  "https://example.com/legal/terms",
			html: `<html><head><title>Example</title></head><body></body></html>`,
			want: true,
		},
		{
			name: "title match",
			url:  "https://example.com/docs/123",
			html: `<html><head><title>Privacy Policy | Example</title></head><body></body></html>`,
			want: true,
		},
		{
			name: "heading match",
			url:  "https://example.com/docs/123",
			html: `<html><head><title>Example</title></head><body><h1>Terms and Conditions</h1></body></html>`,
			want: true,
		},
		{
			name: "pdf url with legal hint",
			url:  "https://example.com/downloads/user-agreement.pdf",
			html: `<html><body></body></html>`,
			want: true,
		},
		{
			name: "ordinary content page",
			url:  "https://example.com/welcome",
			html: `<html><head><title>Welcome</title></head><body><h1>Getting started</h1></body></html>`,
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := parsePage(t, tc.url, tc.html)

			assert.Equal(t, tc.want, IsTosPage(p))
		})
	}
}
