// Package severity defines the shared risk vocabulary used across the
// Blindsight pipeline: the 0-3 severity tiers assigned to Terms of Service
// documents and clauses, the badge statuses surfaced to the browser chrome,
// and the clause and service category enumerations.
package severity

// Level is a severity tier in the 0-3 range.
type Level int

const (
	// Standard marks industry-normal terms with nothing to flag
	Standard Level = 0
	// Notable marks common-but-worth-knowing terms
	Notable Level = 1
	// Cautionary marks unusual terms that deserve attention before accepting
	Cautionary Level = 2
	// Critical marks predatory or aggressive terms
	Critical Level = 3
)

// Clamp forces a raw severity value into the valid 0-3 range.
func Clamp(raw int) Level {
	if raw < 0 {
		return Standard
	}

	if raw > 3 {
		return Critical
	}

	return Level(raw)
}

// Name returns the display name for the tier.
func (l Level) Name() string {
	switch l {
	case Standard:
		return "Standard"
	case Notable:
		return "Notable"
	case Cautionary:
		return "Cautionary"
	case Critical:
		return "Critical"
	}

	return "Standard"
}

// Title returns the user-facing headline for the tier.
func (l Level) Title() string {
	switch l {
	case Standard:
		return "Terms Look Good"
	case Notable:
		return "Notable Terms"
	case Cautionary:
		return "Proceed with Caution"
	case Critical:
		return "Critical Terms Detected"
	}

	return "Terms Look Good"
}

// Message returns the user-facing explanation for the tier.
func (l Level) Message() string {
	switch l {
	case Standard:
		return "Standard, industry-normal terms. You're good to go!"
	case Notable:
		return "Some terms worth knowing about, but common practice."
	case Cautionary:
		return "Unusual terms detected. Review before accepting."
	case Critical:
		return "Aggressive terms found. A warning has been shown on the page."
	}

	return ""
}

// BadgeStatus is the status tag emitted to the badge/notification surface.
// The chrome layer maps these to icons and colors; the core only guarantees
// the vocabulary.
type BadgeStatus string

const (
	// BadgeSafe indicates a completed scan with severity 0
	BadgeSafe BadgeStatus = "safe"
	// BadgeNotable indicates a completed scan with severity 1
	BadgeNotable BadgeStatus = "notable"
	// BadgeCaution indicates a completed scan with severity 2
	BadgeCaution BadgeStatus = "caution"
	// BadgeDanger indicates a completed scan with severity 3
	BadgeDanger BadgeStatus = "danger"
	// BadgeScanning indicates a scan in flight
	BadgeScanning BadgeStatus = "scanning"
	// BadgeNoTerms indicates no terms could be located
	BadgeNoTerms BadgeStatus = "notos"
	// BadgeError indicates a scan that failed for any other reason
	BadgeError BadgeStatus = "error"
	// BadgeClear resets the badge to its idle state
	BadgeClear BadgeStatus = "clear"
)

// Badge maps a severity tier to its badge status.
func (l Level) Badge() BadgeStatus {
	switch l {
	case Standard:
		return BadgeSafe
	case Notable:
		return BadgeNotable
	case Cautionary:
		return BadgeCaution
	case Critical:
		return BadgeDanger
	}

	return BadgeSafe
}

// ClauseCategory classifies a flagged clause.
type ClauseCategory string

const (
	ClauseDataSelling       ClauseCategory = "DATA_SELLING"
	ClauseArbitration       ClauseCategory = "ARBITRATION"
	ClauseNoClassAction     ClauseCategory = "NO_CLASS_ACTION"
	ClauseTosChanges        ClauseCategory = "TOS_CHANGES"
	ClauseContentRights     ClauseCategory = "CONTENT_RIGHTS"
	ClauseLiability         ClauseCategory = "LIABILITY"
	ClauseUnilateralChanges ClauseCategory = "UNILATERAL_CHANGES"
	ClauseOther             ClauseCategory = "OTHER"
)

// knownClauseCategories is the set of categories accepted from providers.
var knownClauseCategories = map[ClauseCategory]struct{}{
	ClauseDataSelling:       {},
	ClauseArbitration:       {},
	ClauseNoClassAction:     {},
	ClauseTosChanges:        {},
	ClauseContentRights:     {},
	ClauseLiability:         {},
	ClauseUnilateralChanges: {},
	ClauseOther:             {},
}

// NormalizeClauseCategory maps unknown or empty provider categories to OTHER.
func NormalizeClauseCategory(raw string) ClauseCategory {
	c := ClauseCategory(raw)
	if _, ok := knownClauseCategories[c]; ok {
		return c
	}

	return ClauseOther
}

// Label returns a human-readable name for a clause category.
func (c ClauseCategory) Label() string {
	labels := map[ClauseCategory]string{
		ClauseDataSelling:       "Data Selling/Sharing",
		ClauseArbitration:       "Arbitration Clause",
		ClauseNoClassAction:     "No Class Action",
		ClauseTosChanges:        "Terms Changes",
		ClauseContentRights:     "Content Rights",
		ClauseLiability:         "Liability Waiver",
		ClauseUnilateralChanges: "Unilateral Changes",
		ClauseOther:             "Other",
	}

	if label, ok := labels[c]; ok {
		return label
	}

	return "Concerning Clause"
}

// ServiceCategory identifies the kind of service a ToS belongs to. Used to
// select safer alternatives.
type ServiceCategory string

const (
	ServiceVPN             ServiceCategory = "vpn"
	ServiceEmail           ServiceCategory = "email"
	ServiceCloudStorage    ServiceCategory = "cloud_storage"
	ServiceSocialMedia     ServiceCategory = "social_media"
	ServiceMessaging       ServiceCategory = "messaging"
	ServiceVideoConf       ServiceCategory = "video_conferencing"
	ServiceSearch          ServiceCategory = "search"
	ServiceBrowser         ServiceCategory = "browser"
	ServicePasswordManager ServiceCategory = "password_manager"
	ServiceNotes           ServiceCategory = "notes"
	ServiceAIAssistant     ServiceCategory = "ai_assistant"
	ServiceFileSharing     ServiceCategory = "file_sharing"
	ServiceStreamingVideo  ServiceCategory = "streaming_video"
	ServiceStreamingMusic  ServiceCategory = "streaming_music"
	ServiceVideoSharing    ServiceCategory = "video_sharing"
	ServiceEcommerce       ServiceCategory = "ecommerce"
	ServiceFinance         ServiceCategory = "finance_banking"
	ServiceMapsNavigation  ServiceCategory = "maps_navigation"
	ServiceGaming          ServiceCategory = "gaming"
	ServiceCodeHosting     ServiceCategory = "code_hosting"
	ServiceDNS             ServiceCategory = "dns"
	ServiceForum           ServiceCategory = "forum"
	ServiceUnknown         ServiceCategory = "unknown"
)

// NormalizeServiceCategory maps empty provider categories to unknown. Unlike
// clause categories, unrecognized values are kept as-is so new categories can
// flow through to the alternatives lookup without a code change.
func NormalizeServiceCategory(raw string) ServiceCategory {
	if raw == "" {
		return ServiceUnknown
	}

	return ServiceCategory(raw)
}
