package mirror

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	mu      sync.Mutex
	records []string
	err     error
	calls   int
}

func (f *fakeLoader) load(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	out := make([]string, len(f.records))
	copy(out, f.records)

	return out, nil
}

func (f *fakeLoader) set(records []string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records = records
	f.err = err
}

func (f *fakeLoader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCollection_EnsureFreshLoadsLazily(t *testing.T) {
	loader := &fakeLoader{records: []string{"a", "b"}}
	c := NewCollection("test", loader.load, time.Hour, testLogger())
	defer c.Close()

	records, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, records)
	assert.Equal(t, 1, loader.callCount())

	// Warm mirror serves without reloading.
	records, err = c.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, records)
	assert.Equal(t, 1, loader.callCount())
}

func TestCollection_EnsureFreshFailsWhenNeverLoaded(t *testing.T) {
	loader := &fakeLoader{err: errors.New("record store down")}
	c := NewCollection("test", loader.load, time.Hour, testLogger())
	defer c.Close()

	_, err := c.EnsureFresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record store down")
	assert.Error(t, c.Err())
}

func TestCollection_ServesStaleDataOnError(t *testing.T) {
	loader := &fakeLoader{records: []string{"a"}}
	c := NewCollection("test", loader.load, time.Hour, testLogger())
	defer c.Close()

	_, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)

	// Subsequent refreshes fail but the stale snapshot survives.
	loader.set(nil, errors.New("record store down"))
	c.Invalidate()

	assert.Eventually(t, func() bool {
		return c.Err() != nil
	}, time.Second, 10*time.Millisecond)

	records, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, records)
}

func TestCollection_FallbackServesColdMirror(t *testing.T) {
	primary := &fakeLoader{err: errors.New("record store down")}
	fallback := &fakeLoader{records: []string{"cached"}}
	c := NewCollection("test", primary.load, time.Hour, testLogger(),
		WithFallback(fallback.load))
	defer c.Close()

	records, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cached"}, records)
	assert.Equal(t, 1, fallback.callCount())

	// The outage stays visible even while fallback data is served.
	assert.Error(t, c.Err())
}

func TestCollection_FallbackErrorKeepsPrimaryError(t *testing.T) {
	primary := &fakeLoader{err: errors.New("record store down")}
	fallback := &fakeLoader{err: errors.New("cache miss")}
	c := NewCollection("test", primary.load, time.Hour, testLogger(),
		WithFallback(fallback.load))
	defer c.Close()

	_, err := c.EnsureFresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record store down")
}

func TestCollection_FallbackIgnoredOnceWarm(t *testing.T) {
	primary := &fakeLoader{records: []string{"live"}}
	fallback := &fakeLoader{records: []string{"cached"}}
	c := NewCollection("test", primary.load, time.Hour, testLogger(),
		WithFallback(fallback.load))
	defer c.Close()

	_, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)

	// A warm mirror keeps its own stale data instead of the cache.
	primary.set(nil, errors.New("record store down"))
	c.Invalidate()

	assert.Eventually(t, func() bool {
		return c.Err() != nil
	}, time.Second, 10*time.Millisecond)

	records, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"live"}, records)
	assert.Equal(t, 0, fallback.callCount())
}

func TestCollection_InvalidateTriggersRefresh(t *testing.T) {
	loader := &fakeLoader{records: []string{"a"}}
	c := NewCollection("test", loader.load, time.Hour, testLogger())
	defer c.Close()

	_, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)

	loader.set([]string{"a", "b"}, nil)
	c.Invalidate()

	assert.Eventually(t, func() bool {
		return len(c.Snapshot()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.NoError(t, c.Err())
}

func TestCollection_PollRefreshes(t *testing.T) {
	loader := &fakeLoader{records: []string{"a"}}
	c := NewCollection("test", loader.load, 20*time.Millisecond, testLogger())
	defer c.Close()

	assert.Eventually(t, func() bool {
		return len(c.Snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	loader.set([]string{"a", "b", "c"}, nil)

	assert.Eventually(t, func() bool {
		return len(c.Snapshot()) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestCollection_SnapshotIsACopy(t *testing.T) {
	loader := &fakeLoader{records: []string{"a", "b"}}
	c := NewCollection("test", loader.load, time.Hour, testLogger())
	defer c.Close()

	_, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)

	snap := c.Snapshot()
	snap[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, c.Snapshot())
}

func TestCollection_CloseStopsLoop(t *testing.T) {
	loader := &fakeLoader{records: []string{"a"}}
	c := NewCollection("test", loader.load, 10*time.Millisecond, testLogger())

	_, err := c.EnsureFresh(context.Background())
	require.NoError(t, err)

	c.Close()
	calls := loader.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, loader.callCount())

	// Closing twice is safe.
	c.Close()
}
