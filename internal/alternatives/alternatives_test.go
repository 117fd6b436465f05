package alternatives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

func TestForCategory_ExactMatch(t *testing.T) {
	c := ForCategory(severity.ServiceVPN, "")

	assert.Equal(t, "VPN Service", c.DisplayName)
	require.NotEmpty(t, c.Suggestions)
	assert.Equal(t, "ProtonVPN", c.Suggestions[0].Name)
}

func TestForCategory_DomainInference(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		expected string
	}{
		{name: "registered domain", hostname: "facebook.com", expected: "Social Platform"},
		{name: "www prefix stripped", hostname: "www.reddit.com", expected: "Forum / Community"},
		{name: "subdomain wins over parent", hostname: "drive.google.com", expected: "Cloud Storage"},
		{name: "parent fallback", hostname: "careers.spotify.com", expected: "Music Streaming"},
		{name: "multi-label public suffix", hostname: "smile.amazon.co.uk", expected: "Online Shopping"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := ForCategory(severity.ServiceUnknown, tc.hostname)
			assert.Equal(t, tc.expected, c.DisplayName)
		})
	}
}

func TestForCategory_UnknownFallback(t *testing.T) {
	c := ForCategory(severity.ServiceUnknown, "some-obscure-site.example")

	assert.Equal(t, "Online Service", c.DisplayName)
	require.Len(t, c.Suggestions, 3)
	assert.Equal(t, "Privacy Guides", c.Suggestions[0].Name)
}

func TestForCategory_UnrecognizedCategoryUsesHostname(t *testing.T) {
	c := ForCategory(severity.ServiceCategory("hovercraft_rental"), "github.com")
	assert.Equal(t, "Code Hosting", c.DisplayName)
}

func TestCategoryFromHostname(t *testing.T) {
	category, ok := CategoryFromHostname("music.youtube.com")
	require.True(t, ok)
	assert.Equal(t, severity.ServiceStreamingMusic, category)

	_, ok = CategoryFromHostname("")
	assert.False(t, ok)

	_, ok = CategoryFromHostname("nonexistent.example")
	assert.False(t, ok)
}

func TestCatalog_SuggestionCap(t *testing.T) {
	for key, category := range catalog {
		assert.LessOrEqual(t, len(category.Suggestions), 3, "category %s exceeds suggestion cap", key)
		assert.NotEmpty(t, category.Suggestions, "category %s has no suggestions", key)
	}
}
