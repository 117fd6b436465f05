package warn

import (
	"github.com/ssudhiravinesh/blindsight/internal/alternatives"
	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// Mode tells the rendering layer which warning surface to show
type Mode string

const (
	// ModeNone means no warning surface at all
	ModeNone Mode = "none"
	// ModeNotice is the transient low-severity summary
	ModeNotice Mode = "notice"
	// ModeCountdown is the cautionary blocking modal with a timed unlock
	ModeCountdown Mode = "countdown"
	// ModePhrase is the critical blocking modal with a typed unlock
	ModePhrase Mode = "phrase"
	// ModeError is the dismissible failure surface
	ModeError Mode = "error"
)

// Plan is everything the rendering layer needs to present one scan result:
// which surface to show, the unlock mechanics, and the content to display
type Plan struct {
	// Mode selects the warning surface
	Mode Mode `json:"mode"`
	// Severity is the overall tier
	Severity severity.Level `json:"severity"`
	// Title is the severity headline
	Title string `json:"title"`
	// Message is the severity guidance text
	Message string `json:"message"`
	// Summary is the one-sentence analysis summary
	Summary string `json:"summary,omitempty"`
	// Clauses are the flagged clauses to list
	Clauses []analyze.Clause `json:"clauses,omitempty"`
	// Alternatives are safer replacement services for the identified
	// category
	Alternatives alternatives.Category `json:"alternatives"`
	// CountdownSeconds is the timed-unlock duration for ModeCountdown
	CountdownSeconds int `json:"countdownSeconds,omitempty"`
	// ConfirmationPhrase is the typed-unlock phrase for ModePhrase
	ConfirmationPhrase string `json:"confirmationPhrase,omitempty"`
	// NoticeSeconds is the auto-dismiss timeout for ModeNotice
	NoticeSeconds int `json:"noticeSeconds,omitempty"`
	// InterceptButtons reports whether agreement buttons should be blocked
	InterceptButtons bool `json:"interceptButtons"`
}

// Planner builds rendering plans from scan results
type Planner struct {
	countdownSeconds int
	noticeSeconds    int
}

// NewPlanner creates a Planner. countdownSeconds is clamped the same way
// as the machine's countdown.
func NewPlanner(countdownSeconds, noticeSeconds int) *Planner {
	m := NewMachine(WithCountdownSeconds(countdownSeconds), WithNoticeSeconds(noticeSeconds))

	return &Planner{
		countdownSeconds: m.countdownSeconds,
		noticeSeconds:    m.noticeSeconds,
	}
}

// PlanFor maps a scan result onto the warning surface contract. The
// hostname feeds category inference for the alternatives block.
func (p *Planner) PlanFor(result *analyze.ScanResult, hostname string) Plan {
	if result.ParseError {
		return Plan{
			Mode:     ModeError,
			Severity: severity.Standard,
			Title:    "Analysis Failed",
			Message:  "The terms could not be analyzed. Proceed with your own judgment.",
		}
	}

	plan := Plan{
		Severity:     result.OverallSeverity,
		Title:        result.OverallSeverity.Title(),
		Message:      result.OverallSeverity.Message(),
		Summary:      result.Summary,
		Clauses:      result.Clauses,
		Alternatives: alternatives.ForCategory(result.Category, hostname),
	}

	switch {
	case result.OverallSeverity >= severity.Critical:
		plan.Mode = ModePhrase
		plan.ConfirmationPhrase = ConfirmationPhrase
		plan.InterceptButtons = true
	case result.OverallSeverity == severity.Cautionary:
		plan.Mode = ModeCountdown
		plan.CountdownSeconds = p.countdownSeconds
		plan.InterceptButtons = true
	default:
		plan.Mode = ModeNotice
		plan.NoticeSeconds = p.noticeSeconds
	}

	return plan
}
