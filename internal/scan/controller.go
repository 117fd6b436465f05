// Package scan orchestrates the full pipeline for a submitted page: signup
// detection, terms extraction with its fetch-candidate cascade, analysis,
// history recording, and the warning plan handed back to the client.
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/detect"
	"github.com/ssudhiravinesh/blindsight/internal/extract"
	"github.com/ssudhiravinesh/blindsight/internal/fetch"
	"github.com/ssudhiravinesh/blindsight/internal/history"
	"github.com/ssudhiravinesh/blindsight/internal/page"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
	"github.com/ssudhiravinesh/blindsight/internal/warn"
)

// AutoPolicy controls what happens when a submitted page looks like a
// signup flow
type AutoPolicy string

const (
	// PolicyConsent surfaces a non-blocking prompt and scans only when the
	// user opts in. The default: no unsolicited network calls or model
	// spend.
	PolicyConsent AutoPolicy = "consent"
	// PolicyAuto scans silently and surfaces a modal only for severity >= 2
	PolicyAuto AutoPolicy = "auto"
)

// Fetcher retrieves candidate documents. *fetch.Relay satisfies this.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Document, error)
}

// Analyzer submits document text for severity classification.
// *analyze.Analyzer satisfies this.
type Analyzer interface {
	Analyze(ctx context.Context, text, sourceURL string) (*analyze.ScanResult, error)
}

// Recorder persists completed scans. *history.Store satisfies this.
type Recorder interface {
	Add(ctx context.Context, entry history.Entry) (history.Entry, error)
}

// Notifier is told about completed scans. Optional.
type Notifier interface {
	ScanCompleted(ctx context.Context, entry history.Entry)
}

// Options tune the controller
type Options struct {
	// SignupThreshold is the detector score gate, 0-100
	SignupThreshold int
	// Policy selects the auto-scan behavior for detected signup pages
	Policy AutoPolicy
	// SettleDelay is how long the client should wait after page load before
	// submitting a snapshot, letting dynamic signup forms render
	SettleDelay time.Duration
	// CountdownSeconds is the cautionary modal unlock countdown
	CountdownSeconds int
	// NoticeSeconds is the transient notice auto-dismiss timeout
	NoticeSeconds int
}

func (o *Options) withDefaults() {
	if o.SignupThreshold <= 0 {
		o.SignupThreshold = detect.DefaultThreshold
	}

	if o.Policy == "" {
		o.Policy = PolicyConsent
	}

	if o.SettleDelay <= 0 {
		o.SettleDelay = 1500 * time.Millisecond
	}

	if o.CountdownSeconds <= 0 {
		o.CountdownSeconds = warn.DefaultCountdownSeconds
	}

	if o.NoticeSeconds <= 0 {
		o.NoticeSeconds = warn.DefaultNoticeSeconds
	}
}

// Evaluation is the response to a submitted page snapshot
type Evaluation struct {
	// TabID identifies the session
	TabID string `json:"tabId"`
	// Detection is the signup heuristic outcome
	Detection detect.Result `json:"detection"`
	// PromptConsent asks the client to show the opt-in prompt before
	// scanning
	PromptConsent bool `json:"promptConsent"`
	// Outcome is present when the policy triggered an immediate scan
	Outcome *Outcome `json:"outcome,omitempty"`
	// ScanError carries the immediate scan's failure, if any
	ScanError string `json:"scanError,omitempty"`
	// SettleDelayMillis is the snapshot delay hint for the client
	SettleDelayMillis int64 `json:"settleDelayMillis"`
}

// Outcome is a completed scan: the normalized result plus everything the
// client needs to render it
type Outcome struct {
	// Result is the normalized analysis result
	Result *analyze.ScanResult `json:"result"`
	// Source says where the terms text came from
	Source string `json:"source"`
	// CharCount is the length of the analyzed text
	CharCount int `json:"charCount"`
	// Plan is the warning surface to render
	Plan warn.Plan `json:"plan"`
	// Badge is the status tag for the UI chrome
	Badge severity.BadgeStatus `json:"badge"`
	// BlockedButtons is how many agreement buttons were intercepted
	BlockedButtons int `json:"blockedButtons"`
	// History is the recorded history entry
	History history.Entry `json:"history"`
}

// Status answers "what happened on this page"
type Status struct {
	// TabID identifies the session
	TabID string `json:"tabId"`
	// IsSignup reports the detector gate outcome
	IsSignup bool `json:"isSignup"`
	// Detection is the full detector result
	Detection detect.Result `json:"detection"`
	// DiscoveredLinks are the terms candidates found on the page
	DiscoveredLinks []extract.Link `json:"discoveredLinks"`
	// ScanInProgress reports the single-flight guard state
	ScanInProgress bool `json:"scanInProgress"`
	// LastResult is the most recent completed result, if any
	LastResult *analyze.ScanResult `json:"lastResult,omitempty"`
	// LastError is the most recent scan failure, if any
	LastError string `json:"lastError,omitempty"`
	// Badge is the current status tag
	Badge severity.BadgeStatus `json:"badge"`
	// Warning is the warning machine's observable state
	Warning warn.Snapshot `json:"warning"`
}

// Controller owns the per-tab sessions and runs the scan pipeline
type Controller struct {
	options  Options
	fetcher  Fetcher
	analyzer Analyzer
	recorder Recorder
	cache    *history.ResultCache
	planner  *warn.Planner
	notifier Notifier

	registry *sessionRegistry
}

// NewController wires the pipeline. notifier may be nil.
func NewController(options Options, fetcher Fetcher, analyzer Analyzer, recorder Recorder, cache *history.ResultCache, notifier Notifier) *Controller {
	options.withDefaults()

	return &Controller{
		options:  options,
		fetcher:  fetcher,
		analyzer: analyzer,
		recorder: recorder,
		cache:    cache,
		planner:  warn.NewPlanner(options.CountdownSeconds, options.NoticeSeconds),
		notifier: notifier,
		registry: newSessionRegistry(),
	}
}

// Evaluate registers a fresh page snapshot for a tab, runs signup
// detection, and applies the auto-scan policy. A new snapshot replaces the
// tab's previous session entirely: per-page state never leaks across
// navigations.
func (c *Controller) Evaluate(ctx context.Context, tabID string, snap page.Snapshot) (*Evaluation, error) {
	p, err := page.Parse(snap)
	if err != nil {
		return nil, err
	}

	detection := detect.Detect(p, c.options.SignupThreshold)

	s := &session{
		tabID:       tabID,
		page:        p,
		detection:   detection,
		links:       extract.DiscoverLinks(p),
		interceptor: warn.NewInterceptor(p),
		badge:       severity.BadgeClear,
	}
	s.machine = warn.NewMachine(
		warn.WithCountdownSeconds(c.options.CountdownSeconds),
		warn.WithNoticeSeconds(c.options.NoticeSeconds),
		warn.WithUnblocker(s.interceptor),
	)
	c.registry.put(s)

	log.Info().
		Str("tab_id", tabID).
		Str("url", snap.URL).
		Bool("is_signup", detection.IsSignup).
		Int("score", detection.Score).
		Msg("page evaluated")

	eval := &Evaluation{
		TabID:             tabID,
		Detection:         detection,
		SettleDelayMillis: c.options.SettleDelay.Milliseconds(),
	}

	if !detection.IsSignup {
		return eval, nil
	}

	switch c.options.Policy {
	case PolicyAuto:
		outcome, err := c.Scan(ctx, tabID)
		if err != nil {
			eval.ScanError = err.Error()
		} else {
			eval.Outcome = outcome
		}
	default:
		eval.PromptConsent = true
	}

	return eval, nil
}

// Scan runs the full pipeline for a tab's current page. Single-flight per
// session: a concurrent request returns ErrScanInProgress immediately.
func (c *Controller) Scan(ctx context.Context, tabID string) (*Outcome, error) {
	s, ok := c.registry.get(tabID)
	if !ok {
		return nil, ErrNoSession
	}

	if err := s.beginScan(); err != nil {
		return nil, err
	}

	s.machine.StartScan()

	outcome, err := c.runPipeline(ctx, s)
	if err != nil {
		badge := severity.BadgeError
		if errors.Is(err, extract.ErrNoTermsFound) {
			badge = severity.BadgeNoTerms
		}

		s.finishScan(nil, badge, err)
		s.machine.Fail(err.Error())

		log.Warn().Err(err).Str("tab_id", tabID).Msg("scan failed")

		return nil, err
	}

	s.finishScan(outcome.Result, outcome.Badge, nil)

	return outcome, nil
}

// runPipeline is one orchestration pass: extract, cascade through fetch
// candidates, analyze, record
func (c *Controller) runPipeline(ctx context.Context, s *session) (*Outcome, error) {
	text, source, err := c.locateTerms(ctx, s)
	if err != nil {
		return nil, err
	}

	result, err := c.analyzer.Analyze(ctx, text, s.page.URL.String())
	if err != nil {
		return nil, err
	}

	entry := c.record(ctx, s, result)

	if c.cache != nil {
		c.cache.Put(s.tabID, result)
	}

	s.machine.Resolve(result)

	plan := c.planner.PlanFor(result, page.Hostname(s.page.URL.String()))

	blocked := 0
	if plan.InterceptButtons {
		blocked = s.interceptor.Block()
	}

	badge := result.OverallSeverity.Badge()
	if result.ParseError {
		badge = severity.BadgeError
	}

	outcome := &Outcome{
		Result:         result,
		Source:         source,
		CharCount:      len(text),
		Plan:           plan,
		Badge:          badge,
		BlockedButtons: blocked,
		History:        entry,
	}

	if c.notifier != nil {
		c.notifier.ScanCompleted(ctx, entry)
	}

	return outcome, nil
}

// locateTerms runs the extraction chain, then cascades through remote
// fetch candidates. Discovery on arbitrary sites is unreliable: the
// top-priority link is tried first, then every remaining discovered link
// in priority order, bounded by the finite link list.
func (c *Controller) locateTerms(ctx context.Context, s *session) (text, source string, err error) {
	switch r := extract.Extract(s.page).(type) {
	case extract.Success:
		return r.Text, r.Source, nil
	case extract.Failure:
		if !r.NeedsRemoteFetch {
			return "", "", r.Err()
		}

		candidates := make([]string, 0, len(r.Links)+1)
		if r.CandidateURL != "" {
			candidates = append(candidates, r.CandidateURL)
		}

		candidates = append(candidates, lo.Map(r.Links, func(link extract.Link, _ int) string {
			return link.URL
		})...)
		candidates = lo.Uniq(candidates)

		for _, candidate := range candidates {
			doc, fetchErr := c.fetcher.Fetch(ctx, candidate)
			if fetchErr != nil {
				log.Debug().Err(fetchErr).Str("url", candidate).Msg("terms candidate failed, trying next")

				if ctx.Err() != nil {
					return "", "", ctx.Err()
				}

				continue
			}

			return doc.Text, "remote:" + candidate, nil
		}

		return "", "", fmt.Errorf("%w: all %d candidates failed: %s", ErrCandidatesUnreachable, len(candidates), r.Reason)
	}

	return "", "", extract.ErrNoTermsFound
}

// record persists the completed scan; history failures are logged, never
// fatal to the scan itself
func (c *Controller) record(ctx context.Context, s *session, result *analyze.ScanResult) history.Entry {
	pageURL := s.page.URL.String()

	entry := history.Entry{
		Hostname:    page.Hostname(pageURL),
		URL:         pageURL,
		Severity:    result.OverallSeverity,
		Summary:     result.Summary,
		ClauseCount: len(result.Clauses),
		Category:    result.Category,
		ServiceName: result.ServiceName,
	}

	if c.recorder == nil {
		return entry
	}

	recorded, err := c.recorder.Add(ctx, entry)
	if err != nil {
		log.Error().Err(err).Str("hostname", entry.Hostname).Msg("failed to record scan in history")

		return entry
	}

	return recorded
}

// Status reports the current page state for a tab
func (c *Controller) Status(tabID string) (*Status, error) {
	s, ok := c.registry.get(tabID)
	if !ok {
		return nil, ErrNoSession
	}

	inProgress, result, lastErr, badge := s.snapshotState()

	status := &Status{
		TabID:           tabID,
		IsSignup:        s.detection.IsSignup,
		Detection:       s.detection,
		DiscoveredLinks: s.links,
		ScanInProgress:  inProgress,
		LastResult:      result,
		Badge:           badge,
		Warning:         s.machine.Snapshot(),
	}

	if lastErr != nil {
		status.LastError = lastErr.Error()
	}

	return status, nil
}

// Warn drives the warning surface for a tab directly from an existing
// result, without rescanning. Used to re-trigger a warning from a stored
// history entry.
func (c *Controller) Warn(tabID string, result *analyze.ScanResult) (*Outcome, error) {
	s, ok := c.registry.get(tabID)
	if !ok {
		return nil, ErrNoSession
	}

	s.machine.Resolve(result)

	plan := c.planner.PlanFor(result, page.Hostname(s.page.URL.String()))

	blocked := 0
	if plan.InterceptButtons {
		blocked = s.interceptor.Block()
	}

	badge := result.OverallSeverity.Badge()

	s.mu.Lock()
	s.lastResult = result
	s.badge = badge
	s.mu.Unlock()

	return &Outcome{
		Result:         result,
		Source:         "replay",
		Plan:           plan,
		Badge:          badge,
		BlockedButtons: blocked,
	}, nil
}

// Machine exposes a tab's warning machine for unlock interactions
func (c *Controller) Machine(tabID string) (*warn.Machine, error) {
	s, ok := c.registry.get(tabID)
	if !ok {
		return nil, ErrNoSession
	}

	return s.machine, nil
}

// DropTab discards a tab's session and cached result when the tab closes
func (c *Controller) DropTab(tabID string) {
	c.registry.drop(tabID)

	if c.cache != nil {
		c.cache.DropTab(tabID)
	}
}
