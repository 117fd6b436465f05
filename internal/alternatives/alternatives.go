// Package alternatives holds the curated database of privacy-respecting
// replacement services, keyed by service category. Lookup falls back to
// hostname-based category inference, then to a generic catch-all.
package alternatives

import (
	"strings"

	"github.com/samber/lo"

	"github.com/ssudhiravinesh/blindsight/internal/page"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// Suggestion is a single recommended replacement service
type Suggestion struct {
	// Name is the service name
	Name string `json:"name"`
	// URL is the service website
	URL string `json:"url"`
	// Reason explains why the service is preferable
	Reason string `json:"reason"`
}

// Category groups suggestions for one kind of service
type Category struct {
	// DisplayName is the human-readable category label
	DisplayName string `json:"displayName"`
	// Suggestions are the recommended replacements, most preferred first
	Suggestions []Suggestion `json:"suggestions"`
}

// ForCategory returns suggestions for the given service category.
// When the category is unknown, the hostname is used to infer one from
// well-known domains. Falls back to the generic catch-all category.
func ForCategory(category severity.ServiceCategory, hostname string) Category {
	if category != "" && category != severity.ServiceUnknown {
		if c, ok := catalog[category]; ok {
			return c
		}
	}

	if hostname != "" {
		if inferred, ok := CategoryFromHostname(hostname); ok {
			if c, ok := catalog[inferred]; ok {
				return c
			}
		}
	}

	return catalog[severity.ServiceUnknown]
}

// CategoryFromHostname infers a service category from a well-known hostname.
// Subdomain-specific entries win over the registered domain, so
// drive.google.com maps to cloud storage while google.com maps to search.
func CategoryFromHostname(hostname string) (severity.ServiceCategory, bool) {
	if hostname == "" {
		return "", false
	}

	clean := strings.ToLower(strings.TrimPrefix(hostname, "www."))

	if c, ok := domainCategories[clean]; ok {
		return c, true
	}

	if parent := page.RegisteredDomain(clean); parent != clean {
		if c, ok := domainCategories[parent]; ok {
			return c, true
		}
	}

	return "", false
}

// Categories returns every concrete category key, excluding the catch-all
func Categories() []severity.ServiceCategory {
	return lo.Reject(lo.Keys(catalog), func(k severity.ServiceCategory, _ int) bool {
		return k == severity.ServiceUnknown
	})
}
