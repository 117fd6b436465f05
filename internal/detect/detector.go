// Package detect scores page snapshots for account-signup flows. It is a
// pure function of the captured DOM: no side effects, no network, identical
// output for identical input.
package detect

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ssudhiravinesh/blindsight/internal/page"
)

// DefaultThreshold is the score at or above which a page is treated as a
// signup flow. Tunable configuration, not a detector constant: callers pass
// their own threshold.
const DefaultThreshold = 50

// Details breaks down the raw signal counts behind a detection score.
type Details struct {
	// PasswordFieldCount is the number of password inputs found
	PasswordFieldCount int `json:"password_field_count"`
	// EmailFieldCount is the number of email-like inputs found
	EmailFieldCount int `json:"email_field_count"`
	// SignupButtonCount is the number of signup-keyword clickables found
	SignupButtonCount int `json:"signup_button_count"`
	// TermsCheckboxCount is the number of consent checkboxes found
	TermsCheckboxCount int `json:"terms_checkbox_count"`
	// HasSignupForm indicates a form whose action or body matches signup keywords
	HasSignupForm bool `json:"has_signup_form"`
}

// Result is the outcome of scoring one page snapshot. Ephemeral: recomputed
// per snapshot, never persisted.
type Result struct {
	// IsSignup is true when Score meets the caller's threshold
	IsSignup bool `json:"is_signup"`
	// Score is the accumulated signal score, clamped to 0-100
	Score int `json:"score"`
	// Indicators names the signals that contributed to the score
	Indicators []string `json:"indicators"`
	// Details carries raw signal counts for diagnostics
	Details Details `json:"details"`
}

// Detect scores the page and applies the threshold.
func Detect(p *page.Page, threshold int) Result {
	passwords := countPasswordFields(p.Doc)
	emails := countEmailFields(p.Doc)
	buttons := countSignupButtons(p.Doc)
	checkboxes := countTermsCheckboxes(p.Doc)
	hasForm := hasSignupForm(p.Doc)

	score := 0

	var indicators []string

	if passwords > 0 {
		score += weightPasswordField
		indicators = append(indicators, "password_field")
	}

	if emails > 0 {
		score += weightEmailField
		indicators = append(indicators, "email_field")
	}

	if passwords >= 2 {
		score += weightConfirmPassword
		indicators = append(indicators, "confirm_password")
	}

	if buttons > 0 {
		score += weightSignupButton
		indicators = append(indicators, "signup_button")
	}

	if checkboxes > 0 {
		score += weightTermsCheckbox
		indicators = append(indicators, "terms_checkbox")
	}

	if hasForm {
		score += weightSignupForm
		indicators = append(indicators, "signup_form")
	}

	if matchesAny(strings.ToLower(p.Title()), titleKeywords) {
		score += weightTitleMatch
		indicators = append(indicators, "title_match")
	}

	if matchesAny(strings.ToLower(p.URL.String()), urlKeywords) {
		score += weightURLMatch
		indicators = append(indicators, "url_match")
	}

	if score > maxScore {
		score = maxScore
	}

	return Result{
		IsSignup:   score >= threshold,
		Score:      score,
		Indicators: indicators,
		Details: Details{
			PasswordFieldCount: passwords,
			EmailFieldCount:    emails,
			SignupButtonCount:  buttons,
			TermsCheckboxCount: checkboxes,
			HasSignupForm:      hasForm,
		},
	}
}

// matchesAny reports whether text contains any of the keywords.
func matchesAny(text string, keywords []string) bool {
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

// countPasswordFields counts password inputs.
func countPasswordFields(doc *goquery.Document) int {
	return doc.Find(`input[type="password"]`).Length()
}

// countEmailFields counts explicit email inputs plus text inputs whose
// name/id/placeholder/autocomplete carry an identity keyword.
func countEmailFields(doc *goquery.Document) int {
	count := doc.Find(`input[type="email"]`).Length()

	doc.Find(`input[type="text"], input:not([type])`).Each(func(_ int, s *goquery.Selection) {
		attrs := strings.ToLower(strings.Join([]string{
			s.AttrOr("name", ""),
			s.AttrOr("id", ""),
			s.AttrOr("placeholder", ""),
			s.AttrOr("autocomplete", ""),
		}, " "))

		if matchesAny(attrs, identityFieldKeywords) {
			count++
		}
	})

	return count
}

// countSignupButtons counts clickables whose visible text matches the signup
// keyword set.
func countSignupButtons(doc *goquery.Document) int {
	count := 0

	doc.Find(`button, input[type="submit"], input[type="button"], [role="button"]`).Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if text == "" {
			text = s.AttrOr("value", "")
		}

		if matchesAny(text, signupButtonKeywords) {
			count++
		}
	})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		if matchesAny(s.Text(), signupButtonKeywords) {
			count++
		}
	})

	return count
}

// countTermsCheckboxes counts checkboxes whose label (for= or enclosing) or
// parent text matches the consent keyword set.
func countTermsCheckboxes(doc *goquery.Document) int {
	count := 0

	doc.Find(`input[type="checkbox"]`).Each(func(_ int, s *goquery.Selection) {
		if id := s.AttrOr("id", ""); id != "" {
			label := doc.Find(`label[for="` + id + `"]`)
			if label.Length() > 0 && matchesAny(label.Text(), termsCheckboxKeywords) {
				count++
				return
			}
		}

		if enclosing := s.Closest("label"); enclosing.Length() > 0 && matchesAny(enclosing.Text(), termsCheckboxKeywords) {
			count++
			return
		}

		if parent := s.Parent(); parent.Length() > 0 && matchesAny(parent.Text(), termsCheckboxKeywords) {
			count++
		}
	})

	return count
}

// hasSignupForm reports whether any form's action URL or inner HTML matches
// the signup keyword sets.
func hasSignupForm(doc *goquery.Document) bool {
	found := false

	doc.Find("form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if matchesAny(s.AttrOr("action", ""), signupFormActionKeywords) {
			found = true
			return false
		}

		if html, err := s.Html(); err == nil && matchesAny(html, signupFormBodyKeywords) {
			found = true
			return false
		}

		return true
	})

	return found
}
