// Package mirror provides an in-process read replica of a remote record
// collection. A Collection polls its loader on an interval and can be
// invalidated eagerly after a local mutation. Reads always serve the last
// successful load; a failing loader leaves the stale data in place and is
// surfaced through Err.
package mirror

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Loader fetches the current records of the mirrored collection.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Option configures a Collection at construction time.
type Option[T any] func(*Collection[T])

// WithFallback installs a secondary loader consulted only while the mirror is
// cold: when no primary load has ever succeeded and the primary loader fails,
// its result is served instead. A warm mirror keeps its stale data and never
// falls back.
func WithFallback[T any](fallback Loader[T]) Option[T] {
	return func(c *Collection[T]) {
		c.fallback = fallback
	}
}

// ErrNoData is returned when no load has ever succeeded.
var ErrNoData = errors.New("mirror holds no data yet")

// Collection is a self-refreshing mirror of a remote collection.
type Collection[T any] struct {
	name        string
	loader      Loader[T]
	fallback    Loader[T]
	interval    time.Duration
	loadTimeout time.Duration
	logger      *slog.Logger

	mu       sync.RWMutex
	records  []T
	loadedAt time.Time
	loaded   bool
	lastErr  error

	invalidate chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

const defaultLoadTimeout = 15 * time.Second

// NewCollection creates a mirror and starts its refresh loop. The first load
// happens lazily, on the first EnsureFresh call or the first tick.
func NewCollection[T any](name string, loader Loader[T], interval time.Duration, logger *slog.Logger, opts ...Option[T]) *Collection[T] {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	c := &Collection[T]{
		name:        name,
		loader:      loader,
		interval:    interval,
		loadTimeout: defaultLoadTimeout,
		logger:      logger,
		invalidate:  make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.wg.Add(1)
	go c.loop()

	return c
}

func (c *Collection[T]) loop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
		case <-c.invalidate:
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.loadTimeout)
		c.refresh(ctx)
		cancel()
	}
}

// refresh runs the loader once and swaps in the result on success. A cold
// mirror whose primary load fails tries the fallback loader; the primary
// error is kept so Err still reports the outage.
func (c *Collection[T]) refresh(ctx context.Context) {
	records, err := c.loader(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.lastErr = err
		if !c.loaded && c.fallback != nil {
			if fallbackRecords, fallbackErr := c.fallback(ctx); fallbackErr == nil {
				c.records = fallbackRecords
				c.loadedAt = time.Now()
				c.loaded = true
				c.logger.Warn("mirror load failed, serving fallback snapshot",
					slog.String("collection", c.name),
					slog.Any("error", err),
				)

				return
			}
		}
		c.logger.Warn("mirror refresh failed, serving stale data",
			slog.String("collection", c.name),
			slog.Any("error", err),
		)

		return
	}

	c.records = records
	c.loadedAt = time.Now()
	c.loaded = true
	c.lastErr = nil
}

// Snapshot returns a copy of the last successfully loaded records.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	copy(out, c.records)

	return out
}

// EnsureFresh returns the mirrored records, loading synchronously if no load
// has succeeded yet. Once warm it serves the mirror without blocking.
func (c *Collection[T]) EnsureFresh(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()

	if !loaded {
		c.refresh(ctx)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		if c.lastErr != nil {
			return nil, c.lastErr
		}

		return nil, ErrNoData
	}

	out := make([]T, len(c.records))
	copy(out, c.records)

	return out, nil
}

// Invalidate schedules an eager refresh. It never blocks; overlapping
// invalidations collapse into one refresh.
func (c *Collection[T]) Invalidate() {
	select {
	case c.invalidate <- struct{}{}:
	default:
	}
}

// Err returns the error of the last refresh attempt, nil after a success.
func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastErr
}

// LoadedAt returns the time of the last successful load.
func (c *Collection[T]) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loadedAt
}

// Close stops the refresh loop. Snapshot keeps serving the last loaded data.
func (c *Collection[T]) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}
