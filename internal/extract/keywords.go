package extract

// Selector and keyword tables for the extraction pipeline. Kept as data so
// they can be tuned and tested independently of the traversal logic.

// tosLinkKeywords match anchor text/title/aria-label of explicit ToS links.
var tosLinkKeywords = []string{
	"terms of service", "terms of use", "terms and conditions", "terms & conditions",
	"user agreement", "service agreement", "legal terms",
	"terms", "tos",
}

// tosHrefKeywords match the href path of explicit ToS links.
var tosHrefKeywords = []string{
	"/terms", "/tos", "/eula", "/legal/terms", "/user-agreement",
}

// legalLinkKeywords match anchor text of privacy/legal links (priority 2).
var legalLinkKeywords = []string{
	"privacy policy", "privacy", "cookie policy", "acceptable use",
	"community guidelines", "data policy",
}

// legalHrefKeywords match the href path of privacy/legal links.
var legalHrefKeywords = []string{
	"/privacy", "/data-policy", "/cookie-policy",
}

// wellKnownPaths are origin-relative guesses synthesized when link discovery
// finds nothing (priority 3). Ordered by how often real sites use them.
var wellKnownPaths = []string{
	"/terms", "/tos", "/terms-of-service", "/terms-of-use",
	"/legal/terms", "/about/tos", "/about/terms",
	"/policies/terms", "/support/tos",
	"/privacy", "/privacy-policy", "/legal/privacy",
}

// tosURLPatterns match the current page URL when the user already navigated
// to a ToS/legal document.
var tosURLPatterns = []string{
	"terms", "tos", "terms-of-service", "terms_of_service",
	"termsofservice", "terms-of-use", "terms_of_use",
	"user-agreement", "user_agreement", "useragreement",
	"legal/terms", "policies/terms", "about/terms",
	"eula", "end-user-license", "service-agreement",
	"privacy-policy", "privacy_policy", "privacypolicy",
}

// tosTitlePatterns match the page title or first heading of a ToS page.
var tosTitlePatterns = []string{
	"terms of service", "terms and conditions", "terms of use",
	"user agreement", "service agreement", "legal terms",
	"privacy policy", "tos", "eula",
}

// inlineTosSelectors locate ToS blocks embedded in signup pages (modal
// bodies, expandable legal sections, data-attributed containers).
var inlineTosSelectors = []string{
	"[data-tos]", `[data-tos="true"]`,
	"[data-terms]", "[data-terms-of-service]",
	".terms-content", ".tos-content", ".legal-text",
	".terms-of-service", ".terms-and-conditions",
	".legal-content", ".legal-terms",
	"#terms-text", "#tos-text", "#terms", "#tos",
	"#terms-of-service", "#terms-and-conditions",
	"#legal-content", "#legal-terms",
	".terms-modal", ".tos-modal",
	".terms-container", ".tos-container",
}

// strippedSelectors are removed from documents before text extraction:
// navigation, chrome, scripts, and boilerplate that would pollute the
// analysis input.
var strippedSelectors = []string{
	"script", "style", "noscript", "iframe",
	"nav", "header", "footer", "aside",
	`[role="navigation"]`, `[role="banner"]`, `[role="contentinfo"]`,
	".nav", ".navbar", ".navigation", ".menu",
	".header", ".footer", ".sidebar",
	".cookie-banner", ".cookie-notice",
	".social", ".share", ".comments",
	"#comments", "#sidebar", "#navigation",
}

// mainContentSelectors are tried in order to find the primary content region
// of a document; the first whose text exceeds the length gate wins.
var mainContentSelectors = []string{
	"main", "article", `[role="main"]`,
	".content", ".main-content", ".page-content",
	"#content", "#main", "#main-content",
	".terms", ".tos", ".legal-content",
	".terms-of-service", ".terms-and-conditions",
}

const (
	// minMainContentChars gates current-page and main-content extraction
	minMainContentChars = 500
	// minInlineChars gates inline ToS block extraction
	minInlineChars = 200
	// MinFetchedChars is the minimum usable length for fetched candidates;
	// shorter responses are treated as blocked/truncated, not legitimate.
	MinFetchedChars = 200
)
