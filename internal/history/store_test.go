package history

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssudhiravinesh/blindsight/internal/analyze"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

func newTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"), maxEntries)
	require.NoError(t, err)

	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_AddAndList(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	entry, err := store.Add(ctx, Entry{
		Hostname:    "example.com",
		URL:         "https://example.com/signup",
		Severity:    severity.Cautionary,
		Summary:     "Broad data sharing with advertisers.",
		ClauseCount: 2,
		Category:    severity.ServiceVPN,
		ServiceName: "ExampleVPN",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "example.com", entries[0].Hostname)
	assert.Equal(t, severity.Cautionary, entries[0].Severity)
	assert.Equal(t, severity.ServiceVPN, entries[0].Category)
	assert.Equal(t, 2, entries[0].ClauseCount)
}

func TestStore_Defaults(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	entry, err := store.Add(ctx, Entry{
		Hostname: "example.com",
		URL:      "https://example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "No summary available", entry.Summary)
	assert.Equal(t, severity.ServiceUnknown, entry.Category)
	assert.Equal(t, "example.com", entry.ServiceName)
}

func TestStore_CapEviction(t *testing.T) {
	const maxEntries = 3

	store := newTestStore(t, maxEntries)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		_, err := store.Add(ctx, Entry{
			Hostname:  "site" + strconv.Itoa(i) + ".com",
			URL:       "https://site" + strconv.Itoa(i) + ".com/terms",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, maxEntries)

	// newest first, oldest evicted
	assert.Equal(t, "site4.com", entries[0].Hostname)
	assert.Equal(t, "site3.com", entries[1].Hostname)
	assert.Equal(t, "site2.com", entries[2].Hostname)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	_, err := store.Add(ctx, Entry{Hostname: "example.com", URL: "https://example.com"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResultCache(t *testing.T) {
	cache := NewResultCache()

	_, ok := cache.Get("tab-1")
	assert.False(t, ok)

	result := &analyze.ScanResult{OverallSeverity: severity.Notable}
	cache.Put("tab-1", result)
	cache.Put("tab-2", &analyze.ScanResult{OverallSeverity: severity.Critical, Lethal: true})

	got, ok := cache.Get("tab-1")
	require.True(t, ok)
	assert.Equal(t, severity.Notable, got.OverallSeverity)
	assert.Equal(t, 2, cache.Len())

	cache.DropTab("tab-1")

	_, ok = cache.Get("tab-1")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}
