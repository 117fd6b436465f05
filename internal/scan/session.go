package scan

import (
	"sync"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/detect"
	"github.com/ssudhiravinesh/blindsight/internal/extract"
	"github.com/ssudhiravinesh/blindsight/internal/page"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
	"github.com/ssudhiravinesh/blindsight/internal/warn"
)

// session is the per-tab scan state: one page snapshot, one warning machine,
// one single-flight guard. Replaced wholesale when the tab navigates.
type session struct {
	mu sync.Mutex

	tabID       string
	page        *page.Page
	detection   detect.Result
	links       []extract.Link
	machine     *warn.Machine
	interceptor *warn.Interceptor

	scanInProgress bool
	lastResult     *analyze.ScanResult
	lastErr        error
	badge          severity.BadgeStatus
}

// beginScan acquires the single-flight guard. A second concurrent scan is
// rejected outright, never queued: overlapping scans would race on the
// shared result and double-submit to a paid API.
func (s *session) beginScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanInProgress {
		return ErrScanInProgress
	}

	s.scanInProgress = true
	s.badge = severity.BadgeScanning

	return nil
}

// finishScan releases the guard and records the outcome
func (s *session) finishScan(result *analyze.ScanResult, badge severity.BadgeStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scanInProgress = false
	s.lastErr = err
	s.badge = badge

	if result != nil {
		s.lastResult = result
	}
}

// snapshotState returns the fields a status query needs
func (s *session) snapshotState() (inProgress bool, result *analyze.ScanResult, lastErr error, badge severity.BadgeStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scanInProgress, s.lastResult, s.lastErr, s.badge
}

// sessionRegistry tracks live sessions by tab
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*session)}
}

func (r *sessionRegistry) get(tabID string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[tabID]

	return s, ok
}

func (r *sessionRegistry) put(s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.tabID] = s
}

func (r *sessionRegistry) drop(tabID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, tabID)
}
