package warn

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ssudhiravinesh/blindsight/internal/page"
)

const (
	// BlockedAttr marks an intercepted button in the document
	BlockedAttr = "data-blindsight-blocked"
	// blockedStyle is appended to an intercepted button's inline style
	blockedStyle = "pointer-events: none; opacity: 0.5; filter: grayscale(100%); cursor: not-allowed"
)

// blockedButton remembers a button's exact pre-block inline style so
// restoration is lossless
type blockedButton struct {
	sel       *goquery.Selection
	prevStyle string
	hadStyle  bool
}

// Interceptor disables a page's agreement buttons during a blocking warning
// and restores them exactly on unblock. Single writer of the blocked set.
type Interceptor struct {
	mu      sync.Mutex
	page    *page.Page
	blocked []blockedButton
}

// NewInterceptor creates an Interceptor for the given page
func NewInterceptor(p *page.Page) *Interceptor {
	return &Interceptor{page: p}
}

// FindTargets returns the agreement buttons that would be intercepted:
// submit-like controls whose text or value matches an agreement keyword,
// capped at maxInterceptedButtons
func (i *Interceptor) FindTargets() []*goquery.Selection {
	seen := make(map[*html.Node]struct{})

	var targets []*goquery.Selection

	for _, selector := range buttonSelectors {
		i.page.Doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if len(targets) >= maxInterceptedButtons {
				return
			}

			node := s.Get(0)
			if _, dup := seen[node]; dup {
				return
			}

			value, _ := s.Attr("value")
			combined := strings.ToLower(s.Text() + " " + value)

			for _, kw := range agreementKeywords {
				if strings.Contains(combined, kw) {
					seen[node] = struct{}{}
					targets = append(targets, s)

					break
				}
			}
		})
	}

	return targets
}

// Block intercepts the page's agreement buttons: each is marked with
// BlockedAttr and visually disabled via inline style, with the original
// style snapshotted first. Returns the number of buttons intercepted.
// Calling Block while already blocked is a no-op.
func (i *Interceptor) Block() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.blocked) > 0 {
		return len(i.blocked)
	}

	for _, s := range i.FindTargets() {
		prev, had := s.Attr("style")

		next := blockedStyle
		if had && strings.TrimSpace(prev) != "" {
			next = strings.TrimRight(strings.TrimSpace(prev), ";") + "; " + blockedStyle
		}

		s.SetAttr(BlockedAttr, "true")
		s.SetAttr("style", next)

		i.blocked = append(i.blocked, blockedButton{
			sel:       s,
			prevStyle: prev,
			hadStyle:  had,
		})
	}

	return len(i.blocked)
}

// Unblock restores every intercepted button to its exact pre-block state.
// Safe to call repeatedly: after the first call it is a no-op.
func (i *Interceptor) Unblock() {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, b := range i.blocked {
		b.sel.RemoveAttr(BlockedAttr)

		if b.hadStyle {
			b.sel.SetAttr("style", b.prevStyle)
		} else {
			b.sel.RemoveAttr("style")
		}
	}

	i.blocked = nil
}

// BlockedCount reports how many buttons are currently intercepted
func (i *Interceptor) BlockedCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.blocked)
}
