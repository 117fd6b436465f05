package history

import (
	"sync"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
)

// ResultCache keeps the latest scan result per tab so popups and repeat
// status queries don't trigger a rescan. Entries live until the tab closes.
type ResultCache struct {
	mu      sync.RWMutex
	results map[string]*analyze.ScanResult
}

// NewResultCache creates an empty per-tab cache
func NewResultCache() *ResultCache {
	return &ResultCache{
		results: make(map[string]*analyze.ScanResult),
	}
}

// Put stores the latest result for a tab
func (c *ResultCache) Put(tabID string, result *analyze.ScanResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results[tabID] = result
}

// Get returns the cached result for a tab, if any
func (c *ResultCache) Get(tabID string) (*analyze.ScanResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.results[tabID]

	return result, ok
}

// DropTab removes the cached result when a tab closes
func (c *ResultCache) DropTab(tabID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.results, tabID)
}

// Len reports the number of cached tabs
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.results)
}
