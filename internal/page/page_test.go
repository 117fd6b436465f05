package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse(Snapshot{
		URL:  "https://www.example.com/signup",
		HTML: `<html><head><title>Create account</title></head><body></body></html>`,
	})
	require.NoError(t, err)

	assert.Equal(t, "www.example.com", p.URL.Host)
	assert.Equal(t, "Create account", p.Title())
	assert.NotNil(t, p.Doc)
	assert.NotEmpty(t, p.RawHTML)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "empty url", url: "", wantErr: ErrMissingURL},
		{name: "whitespace url", url: "   ", wantErr: ErrMissingURL},
		{name: "no scheme", url: "example.com/signup", wantErr: ErrInvalidURL},
		{name: "no host", url: "https://", wantErr: ErrInvalidURL},
		{name: "garbage", url: "://nope", wantErr: ErrInvalidURL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(Snapshot{URL: tc.url, HTML: "<html></html>"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrigin(t *testing.T) {
	p, err := Parse(Snapshot{URL: "https://app.example.com:8443/signup?ref=x#form", HTML: "<html></html>"})
	require.NoError(t, err)

	assert.Equal(t, "https://app.example.com:8443", p.Origin())
}

func TestResolveHref(t *testing.T) {
	p, err := Parse(Snapshot{URL: "https://example.com/account/signup", HTML: "<html></html>"})
	require.NoError(t, err)

	tests := []struct {
		name string
		href string
		want string
	}{
		{name: "absolute path", href: "/terms", want: "https://example.com/terms"},
		{name: "relative path", href: "legal/terms", want: "https://example.com/account/legal/terms"},
		{name: "absolute url", href: "https://other.example.org/tos", want: "https://other.example.org/tos"},
		{name: "protocol relative", href: "//cdn.example.com/terms", want: "https://cdn.example.com/terms"},
		{name: "surrounding whitespace", href: "  /terms  ", want: "https://example.com/terms"},
		{name: "empty", href: "", want: ""},
		{name: "bare fragment", href: "#", want: ""},
		{name: "fragment only", href: "#terms-section", want: ""},
		{name: "javascript", href: "javascript:void(0)", want: ""},
		{name: "javascript uppercase", href: "JavaScript:openModal()", want: ""},
		{name: "mailto", href: "mailto:legal@example.com", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ResolveHref(tc.href))
		})
	}
}

func TestHostname(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{"https://www.example.com/signup", "example.com"},
		{"https://app.example.com/signup", "app.example.com"},
		{"https://example.com:8080/signup", "example.com"},
		{"not-a-url", "not-a-url"},
	}

	for _, tc := range tests {
		t.Run(tc.rawURL, func(t *testing.T) {
			assert.Equal(t, tc.want, Hostname(tc.rawURL))
		})
	}
}

func TestRegisteredDomain(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{"https://www.example.com/signup", "example.com"},
		{"https://accounts.app.example.co.uk/signup", "example.co.uk"},
		{"http://localhost:8080/signup", "localhost"},
	}

	for _, tc := range tests {
		t.Run(tc.rawURL, func(t *testing.T) {
			assert.Equal(t, tc.want, RegisteredDomain(tc.rawURL))
		})
	}
}
