package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/fetch"
	"github.com/ssudhiravinesh/blindsight/internal/history"
	"github.com/ssudhiravinesh/blindsight/internal/page"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
	"github.com/ssudhiravinesh/blindsight/internal/warn"
)

// signupPageHTML is a signup form with terms links but no inline terms text
const signupPageHTML = `
<html>
<head><title>Create your account</title></head>
<body>
	<form action="/register">
		<input type="email" name="email" placeholder="Email address">
		<input type="password" name="password">
		<input type="password" name="confirm_password">
		<label><input type="checkbox"> I agree to the <a href="/terms">Terms of Service</a></label>
		<button type="submit">Sign Up</button>
	</form>
	<footer><a href="/legal/privacy">Privacy Policy</a></footer>
</body>
</html>`

// stubFetcher replays canned documents per URL
type stubFetcher struct {
	mu    sync.Mutex
	docs  map[string]*fetch.Document
	errs  map[string]error
	calls []string
}

func (f *stubFetcher) Fetch(_ context.Context, rawURL string) (*fetch.Document, error) {
	f.mu.Lock()
	f.calls = append(f.calls, rawURL)
	f.mu.Unlock()

	if err, ok := f.errs[rawURL]; ok {
		return nil, err
	}

	if doc, ok := f.docs[rawURL]; ok {
		return doc, nil
	}

	return nil, fmt.Errorf("%w: %s", fetch.ErrBlocked, rawURL)
}

// stubAnalyzer returns a canned result, optionally blocking until released
type stubAnalyzer struct {
	result  *analyze.ScanResult
	err     error
	block   chan struct{}
	mu      sync.Mutex
	calls   int
}

func (a *stubAnalyzer) Analyze(_ context.Context, _, _ string) (*analyze.ScanResult, error) {
	a.mu.Lock()
	a.calls++
	a.mu.Unlock()

	if a.block != nil {
		<-a.block
	}

	if a.err != nil {
		return nil, a.err
	}

	return a.result, nil
}

// stubRecorder collects history entries in memory
type stubRecorder struct {
	mu      sync.Mutex
	entries []history.Entry
}

func (r *stubRecorder) Add(_ context.Context, entry history.Entry) (history.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = fmt.Sprintf("entry-%d", len(r.entries)+1)
	r.entries = append(r.entries, entry)

	return entry, nil
}

func newTestController(fetcher Fetcher, analyzer Analyzer, recorder Recorder) *Controller {
	return NewController(Options{}, fetcher, analyzer, recorder, history.NewResultCache(), nil)
}

func evaluatePage(t *testing.T, c *Controller, tabID string) *Evaluation {
	t.Helper()

	eval, err := c.Evaluate(context.Background(), tabID, page.Snapshot{
		URL:  "https://example.com/signup",
		HTML: signupPageHTML,
	})
	require.NoError(t, err)

	return eval
}

func TestEvaluate_ConsentPolicyPromptsWithoutScanning(t *testing.T) {
	analyzer := &stubAnalyzer{result: &analyze.ScanResult{}}
	c := newTestController(&stubFetcher{}, analyzer, &stubRecorder{})

	eval := evaluatePage(t, c, "tab-1")

	assert.True(t, eval.Detection.IsSignup)
	assert.GreaterOrEqual(t, eval.Detection.Score, 50)
	assert.True(t, eval.PromptConsent)
	assert.Nil(t, eval.Outcome)
	assert.Zero(t, analyzer.calls)
}

func TestEvaluate_NonSignupPage(t *testing.T) {
	c := newTestController(&stubFetcher{}, &stubAnalyzer{}, &stubRecorder{})

	eval, err := c.Evaluate(context.Background(), "tab-1", page.Snapshot{
		URL:  "https://example.com/blog/post",
		HTML: `<html><head><title>A blog post</title></head><body><article><p>Nothing to sign up for here.</p></article></body></html>`,
	})
	require.NoError(t, err)

	assert.False(t, eval.Detection.IsSignup)
	assert.False(t, eval.PromptConsent)
}

func TestScan_FetchCascadeFallsThroughCandidates(t *testing.T) {
	longTerms := strings.Repeat("You agree to binding arbitration and broad data sharing. ", 20)

	fetcher := &stubFetcher{
		errs: map[string]error{
			"https://example.com/terms": fetch.ErrBlocked,
		},
		docs: map[string]*fetch.Document{
			"https://example.com/legal/privacy": {URL: "https://example.com/legal/privacy", Text: longTerms},
		},
	}
	analyzer := &stubAnalyzer{result: &analyze.ScanResult{
		OverallSeverity: severity.Cautionary,
		Category:        severity.ServiceUnknown,
		Summary:         "Aggressive arbitration clause.",
		Clauses:         []analyze.Clause{{Type: severity.ClauseArbitration, Severity: severity.Cautionary, Explanation: "No opt-out"}},
	}}
	recorder := &stubRecorder{}

	c := newTestController(fetcher, analyzer, recorder)
	evaluatePage(t, c, "tab-1")

	outcome, err := c.Scan(context.Background(), "tab-1")
	require.NoError(t, err)

	// the blocked top candidate is skipped, the privacy link succeeds
	require.GreaterOrEqual(t, len(fetcher.calls), 2)
	assert.Equal(t, "https://example.com/terms", fetcher.calls[0])
	assert.Equal(t, "https://example.com/legal/privacy", fetcher.calls[1])

	assert.Equal(t, severity.Cautionary, outcome.Result.OverallSeverity)
	assert.Equal(t, "remote:https://example.com/legal/privacy", outcome.Source)
	assert.Equal(t, warn.ModeCountdown, outcome.Plan.Mode)
	assert.Equal(t, severity.BadgeCaution, outcome.Badge)
	assert.Positive(t, outcome.BlockedButtons)

	// completed scans are recorded
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "example.com", recorder.entries[0].Hostname)
	assert.Equal(t, 1, recorder.entries[0].ClauseCount)
}

func TestScan_AllCandidatesExhausted(t *testing.T) {
	fetcher := &stubFetcher{} // every fetch fails
	c := newTestController(fetcher, &stubAnalyzer{}, &stubRecorder{})
	evaluatePage(t, c, "tab-1")

	_, err := c.Scan(context.Background(), "tab-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCandidatesUnreachable)

	// every discovered candidate was tried before giving up
	assert.NotEmpty(t, fetcher.calls)

	// candidates existed but could not be fetched, which is a fetch
	// failure, not a page without terms
	status, statusErr := c.Status("tab-1")
	require.NoError(t, statusErr)
	assert.Equal(t, severity.BadgeError, status.Badge)
	assert.Equal(t, warn.StateFailed, status.Warning.State)
	assert.NotEmpty(t, status.LastError)
}

func TestScan_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	analyzer := &stubAnalyzer{
		result: &analyze.ScanResult{OverallSeverity: severity.Standard},
		block:  release,
	}
	longTerms := strings.Repeat("Standard service terms apply to all users of this site. ", 20)
	fetcher := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.com/terms": {URL: "https://example.com/terms", Text: longTerms},
	}}

	c := newTestController(fetcher, analyzer, &stubRecorder{})
	evaluatePage(t, c, "tab-1")

	firstDone := make(chan error, 1)

	go func() {
		_, err := c.Scan(context.Background(), "tab-1")
		firstDone <- err
	}()

	// wait for the first scan to reach the blocking analyzer
	require.Eventually(t, func() bool {
		analyzer.mu.Lock()
		defer analyzer.mu.Unlock()

		return analyzer.calls == 1
	}, time.Second, 5*time.Millisecond)

	_, err := c.Scan(context.Background(), "tab-1")
	assert.ErrorIs(t, err, ErrScanInProgress)

	close(release)
	require.NoError(t, <-firstDone)

	// only the original scan ran the pipeline
	assert.Equal(t, 1, analyzer.calls)

	status, err := c.Status("tab-1")
	require.NoError(t, err)
	assert.False(t, status.ScanInProgress)
	assert.NotNil(t, status.LastResult)
}

func TestScan_NoSession(t *testing.T) {
	c := newTestController(&stubFetcher{}, &stubAnalyzer{}, &stubRecorder{})

	_, err := c.Scan(context.Background(), "missing-tab")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestScan_AnalyzerFailureSurfaces(t *testing.T) {
	longTerms := strings.Repeat("Terms text for analysis purposes in this scenario. ", 20)
	fetcher := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.com/terms": {URL: "https://example.com/terms", Text: longTerms},
	}}
	analyzer := &stubAnalyzer{err: errors.New("no analysis provider available")}

	c := newTestController(fetcher, analyzer, &stubRecorder{})
	evaluatePage(t, c, "tab-1")

	_, err := c.Scan(context.Background(), "tab-1")
	require.Error(t, err)

	status, statusErr := c.Status("tab-1")
	require.NoError(t, statusErr)
	assert.Equal(t, severity.BadgeError, status.Badge)
	assert.Nil(t, status.LastResult)
}

func TestWarn_ReplaysWithoutRescan(t *testing.T) {
	analyzer := &stubAnalyzer{}
	c := newTestController(&stubFetcher{}, analyzer, &stubRecorder{})
	evaluatePage(t, c, "tab-1")

	outcome, err := c.Warn("tab-1", &analyze.ScanResult{
		OverallSeverity: severity.Critical,
		Lethal:          true,
		Category:        severity.ServiceVPN,
	})
	require.NoError(t, err)

	assert.Zero(t, analyzer.calls)
	assert.Equal(t, warn.ModePhrase, outcome.Plan.Mode)
	assert.Equal(t, warn.ConfirmationPhrase, outcome.Plan.ConfirmationPhrase)
	assert.Positive(t, outcome.BlockedButtons)

	machine, err := c.Machine("tab-1")
	require.NoError(t, err)
	assert.Equal(t, warn.StatePhrase, machine.Snapshot().State)
}

func TestDropTab(t *testing.T) {
	cache := history.NewResultCache()
	c := NewController(Options{}, &stubFetcher{}, &stubAnalyzer{}, &stubRecorder{}, cache, nil)
	evaluatePage(t, c, "tab-1")

	cache.Put("tab-1", &analyze.ScanResult{})
	c.DropTab("tab-1")

	_, err := c.Status("tab-1")
	assert.ErrorIs(t, err, ErrNoSession)

	_, ok := cache.Get("tab-1")
	assert.False(t, ok)
}

func TestEvaluate_AutoPolicyScansImmediately(t *testing.T) {
	longTerms := strings.Repeat("All users accept these standard terms of service. ", 20)
	fetcher := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.com/terms": {URL: "https://example.com/terms", Text: longTerms},
	}}
	analyzer := &stubAnalyzer{result: &analyze.ScanResult{OverallSeverity: severity.Standard}}

	c := NewController(Options{Policy: PolicyAuto}, fetcher, analyzer, &stubRecorder{}, history.NewResultCache(), nil)

	eval := evaluatePage(t, c, "tab-1")

	assert.False(t, eval.PromptConsent)
	require.NotNil(t, eval.Outcome)
	assert.Equal(t, 1, analyzer.calls)
	assert.Equal(t, severity.BadgeSafe, eval.Outcome.Badge)
	assert.Equal(t, warn.ModeNotice, eval.Outcome.Plan.Mode)
}
