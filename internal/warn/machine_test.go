package warn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// countingUnblocker records Unblock invocations
type countingUnblocker struct {
	calls int
}

func (u *countingUnblocker) Unblock() { u.calls++ }

func TestMachine_SafeTermsStayNonBlocking(t *testing.T) {
	m := NewMachine()

	m.StartScan()
	assert.Equal(t, StateScanning, m.Snapshot().State)

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Standard})

	snap := m.Snapshot()
	assert.Equal(t, StateNotice, snap.State)
	assert.False(t, snap.State.Blocking())
	assert.Equal(t, DefaultNoticeSeconds, snap.NoticeRemaining)
}

func TestMachine_NoticeAutoDismisses(t *testing.T) {
	m := NewMachine(WithNoticeSeconds(3))

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Notable})

	for range 3 {
		m.Tick()
	}

	assert.Equal(t, StateIdle, m.Snapshot().State)
}

func TestMachine_CautionaryCountdownUnlock(t *testing.T) {
	unblocker := &countingUnblocker{}
	m := NewMachine(WithCountdownSeconds(5), WithUnblocker(unblocker))

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Cautionary})

	snap := m.Snapshot()
	require.Equal(t, StateCountdown, snap.State)
	assert.True(t, snap.State.Blocking())
	assert.Equal(t, 5, snap.CountdownRemaining)
	assert.False(t, snap.CanProceed)

	// locked until the countdown reaches zero
	assert.ErrorIs(t, m.Proceed(), ErrProceedLocked)

	for range 4 {
		m.Tick()
	}

	assert.False(t, m.Snapshot().CanProceed)

	m.Tick()

	snap = m.Snapshot()
	assert.Zero(t, snap.CountdownRemaining)
	assert.True(t, snap.CanProceed)

	require.NoError(t, m.Proceed())
	assert.Equal(t, StateIdle, m.Snapshot().State)
	assert.Equal(t, 1, unblocker.calls)
}

func TestMachine_CriticalPhraseUnlock(t *testing.T) {
	m := NewMachine()

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Critical, Lethal: true})

	snap := m.Snapshot()
	require.Equal(t, StatePhrase, snap.State)
	assert.False(t, snap.CanProceed)

	// ticks never unlock the critical modal
	for range 30 {
		m.Tick()
	}

	assert.False(t, m.Snapshot().CanProceed)

	assert.ErrorIs(t, m.SubmitPhrase("i agree"), ErrPhraseMismatch)
	assert.False(t, m.Snapshot().CanProceed)

	// exact phrase, case-insensitive, surrounding whitespace ignored
	require.NoError(t, m.SubmitPhrase("  i proceed "))
	assert.True(t, m.Snapshot().CanProceed)

	require.NoError(t, m.Proceed())
	assert.Equal(t, StateIdle, m.Snapshot().State)
}

func TestMachine_AbortDoesNotUnblock(t *testing.T) {
	unblocker := &countingUnblocker{}
	m := NewMachine(WithUnblocker(unblocker))

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Cautionary})
	m.Abort()

	assert.Equal(t, StateIdle, m.Snapshot().State)
	assert.Zero(t, unblocker.calls)
}

func TestMachine_ParseErrorNeverBlocksNorImpliesSafe(t *testing.T) {
	m := NewMachine()

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Standard, ParseError: true})

	snap := m.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.False(t, snap.State.Blocking())
	assert.NotEmpty(t, snap.FailureReason)

	m.Dismiss()
	assert.Equal(t, StateIdle, m.Snapshot().State)
}

func TestMachine_FailureNeverBlocks(t *testing.T) {
	m := NewMachine()

	m.StartScan()
	m.Fail("no terms of service found")

	snap := m.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.False(t, snap.State.Blocking())
	assert.Equal(t, "no terms of service found", snap.FailureReason)
}

func TestMachine_ModalExclusivity(t *testing.T) {
	m := NewMachine()

	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Critical})
	require.NoError(t, m.SubmitPhrase("I PROCEED"))
	require.True(t, m.Snapshot().CanProceed)

	// a new cautionary resolution tears the critical modal down first:
	// exactly one surface remains and the unlock state does not leak
	m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Cautionary})

	snap := m.Snapshot()
	assert.Equal(t, StateCountdown, snap.State)
	assert.False(t, snap.CanProceed)
	assert.Equal(t, DefaultCountdownSeconds, snap.CountdownRemaining)
}

func TestMachine_ProceedOutsideBlockingState(t *testing.T) {
	m := NewMachine()

	assert.ErrorIs(t, m.Proceed(), ErrNotBlocking)
	assert.ErrorIs(t, m.SubmitPhrase("I PROCEED"), ErrNotBlocking)
}

func TestWithCountdownSeconds_Clamped(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "below minimum", input: 1, expected: DefaultCountdownSeconds},
		{name: "above maximum", input: 60, expected: MaxCountdownSeconds},
		{name: "in range", input: 8, expected: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(WithCountdownSeconds(tc.input))

			m.Resolve(&analyze.ScanResult{OverallSeverity: severity.Cautionary})
			assert.Equal(t, tc.expected, m.Snapshot().CountdownRemaining)
		})
	}
}
