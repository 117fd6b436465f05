// Package warn implements the warning and blocking state machine that turns
// a scan result into user-facing behavior: transient notices for low tiers,
// a countdown-locked modal for cautionary results, and a typed-confirmation
// lock for critical ones. Transitions are driven by explicit Tick and input
// events so the machine stays deterministic under test.
package warn

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

const (
	// DefaultCountdownSeconds is how long the cautionary modal stays locked
	DefaultCountdownSeconds = 5
	// MaxCountdownSeconds bounds operator configuration of the countdown
	MaxCountdownSeconds = 10
	// ConfirmationPhrase unlocks the critical modal, compared
	// case-insensitively
	ConfirmationPhrase = "I PROCEED"
	// DefaultNoticeSeconds is how long the low-severity notice stays up
	// before auto-dismissing
	DefaultNoticeSeconds = 8
)

// State is a warning machine state
type State string

const (
	// StateIdle means no modal and no blocked buttons
	StateIdle State = "idle"
	// StateScanning shows a non-blocking progress indicator
	StateScanning State = "scanning"
	// StateNotice shows a transient, auto-dismissing summary for tiers 0-1
	StateNotice State = "notice"
	// StateCountdown is the cautionary blocking modal with a timed unlock
	StateCountdown State = "countdown"
	// StatePhrase is the critical blocking modal with a typed unlock
	StatePhrase State = "phrase"
	// StateFailed shows a dismissible error; it never blocks
	StateFailed State = "failed"
)

// Blocking reports whether the state intercepts page buttons
func (s State) Blocking() bool {
	return s == StateCountdown || s == StatePhrase
}

// Snapshot is an observable view of the machine for status queries and the
// client rendering layer
type Snapshot struct {
	// State is the current machine state
	State State `json:"state"`
	// Severity is the tier of the active result, if resolved
	Severity severity.Level `json:"severity"`
	// CountdownRemaining is the seconds left before the cautionary modal
	// unlocks
	CountdownRemaining int `json:"countdownRemaining"`
	// NoticeRemaining is the seconds left before the transient notice
	// auto-dismisses
	NoticeRemaining int `json:"noticeRemaining"`
	// CanProceed reports whether the proceed action is unlocked
	CanProceed bool `json:"canProceed"`
	// FailureReason carries the error message in the failed state
	FailureReason string `json:"failureReason,omitempty"`
}

// Unblocker restores intercepted page buttons. Invoked when the user
// proceeds through a blocking modal.
type Unblocker interface {
	Unblock()
}

// Machine is the warning state machine for one page session. Safe for
// concurrent use: status queries and tick delivery can race with events.
type Machine struct {
	mu sync.Mutex

	countdownSeconds int
	noticeSeconds    int
	phrase           string

	state         State
	level         severity.Level
	countdown     int
	notice        int
	canProceed    bool
	failureReason string
	unblocker     Unblocker
}

// MachineOption configures a Machine
type MachineOption func(*Machine)

// WithCountdownSeconds sets the cautionary unlock countdown, clamped to
// [DefaultCountdownSeconds, MaxCountdownSeconds]
func WithCountdownSeconds(n int) MachineOption {
	return func(m *Machine) {
		switch {
		case n < DefaultCountdownSeconds:
			m.countdownSeconds = DefaultCountdownSeconds
		case n > MaxCountdownSeconds:
			m.countdownSeconds = MaxCountdownSeconds
		default:
			m.countdownSeconds = n
		}
	}
}

// WithNoticeSeconds sets the transient notice duration
func WithNoticeSeconds(n int) MachineOption {
	return func(m *Machine) {
		if n > 0 {
			m.noticeSeconds = n
		}
	}
}

// WithUnblocker attaches the button restorer invoked on proceed
func WithUnblocker(u Unblocker) MachineOption {
	return func(m *Machine) {
		m.unblocker = u
	}
}

// NewMachine creates a Machine in the idle state
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		countdownSeconds: DefaultCountdownSeconds,
		noticeSeconds:    DefaultNoticeSeconds,
		phrase:           ConfirmationPhrase,
		state:            StateIdle,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// StartScan enters the scanning state. Any previous modal state is torn
// down first so at most one warning surface exists at a time.
func (m *Machine) StartScan() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()
	m.state = StateScanning
}

// Resolve applies a completed scan result. Tiers 0-1 show a transient
// notice; tier 2 enters the countdown lock; tier 3 enters the typed-phrase
// lock. A parse-error result is treated as a failure: inability to
// determine risk is never rendered as safe, and never blocks.
func (m *Machine) Resolve(result *analyze.ScanResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()

	if result.ParseError {
		m.state = StateFailed
		m.failureReason = "analysis response could not be understood"

		return
	}

	m.level = result.OverallSeverity

	switch {
	case result.OverallSeverity >= severity.Critical:
		m.state = StatePhrase
	case result.OverallSeverity == severity.Cautionary:
		m.state = StateCountdown
		m.countdown = m.countdownSeconds
	default:
		m.state = StateNotice
		m.notice = m.noticeSeconds
	}

	log.Debug().Str("state", string(m.state)).Int("severity", int(result.OverallSeverity)).Msg("warning state resolved")
}

// Fail enters the failed state. Failures never intercept buttons: blocking
// happens only on a positive finding of risk.
func (m *Machine) Fail(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()
	m.state = StateFailed
	m.failureReason = reason
}

// Tick advances time-driven transitions by one second: the cautionary
// countdown unlock and the notice auto-dismiss. Ticks in other states are
// no-ops.
func (m *Machine) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateCountdown:
		if m.countdown > 0 {
			m.countdown--
		}

		if m.countdown == 0 {
			m.canProceed = true
		}
	case StateNotice:
		if m.notice > 0 {
			m.notice--
		}

		if m.notice == 0 {
			m.state = StateIdle
		}
	}
}

// SubmitPhrase validates a typed confirmation against the unlock phrase,
// case-insensitively. A mismatch returns ErrPhraseMismatch, which the
// rendering layer surfaces as shake feedback.
func (m *Machine) SubmitPhrase(input string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StatePhrase {
		return ErrNotBlocking
	}

	if !strings.EqualFold(strings.TrimSpace(input), m.phrase) {
		return ErrPhraseMismatch
	}

	m.canProceed = true

	return nil
}

// Proceed completes an unlocked blocking modal: the intercepted buttons are
// restored and the machine returns to idle. Locked or non-blocking states
// return an error.
func (m *Machine) Proceed() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Blocking() {
		return ErrNotBlocking
	}

	if !m.canProceed {
		return ErrProceedLocked
	}

	if m.unblocker != nil {
		m.unblocker.Unblock()
	}

	m.state = StateIdle
	m.canProceed = false

	return nil
}

// Abort closes the active warning without restoring intercepted buttons;
// the user is leaving rather than agreeing
func (m *Machine) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateIdle
	m.canProceed = false
	m.countdown = 0
	m.notice = 0
}

// Dismiss closes a notice or failure surface
func (m *Machine) Dismiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateNotice || m.state == StateFailed {
		m.state = StateIdle
		m.notice = 0
		m.failureReason = ""
	}
}

// Snapshot returns the current observable state
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		State:              m.state,
		Severity:           m.level,
		CountdownRemaining: m.countdown,
		NoticeRemaining:    m.notice,
		CanProceed:         m.canProceed,
		FailureReason:      m.failureReason,
	}
}

// teardownLocked clears any previous modal state before a new surface is
// shown. Callers hold the mutex.
func (m *Machine) teardownLocked() {
	m.canProceed = false
	m.countdown = 0
	m.notice = 0
	m.failureReason = ""
}
