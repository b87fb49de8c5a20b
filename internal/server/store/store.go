package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

// DefaultFreshness is how long a cached snapshot is served without touching
// durable storage.
const DefaultFreshness = 5 * time.Second

// Collection is one logical collection (users, records, content page)
// serialized as a single JSON document under a fixed key.
//
// Reads within the freshness window are served from the cache. A successful
// Put replaces the cache atomically with the durable write, so a reader never
// observes a cache entry older than the last write issued by this process.
// Update serializes read-modify-write cycles through a per-collection lock.
type Collection[T any] struct {
	backend Backend
	key     string
	window  time.Duration
	now     func() time.Time

	// writeMu serializes whole read-modify-write cycles; mu guards the
	// cache and is held across backend calls so cache swaps stay atomic
	// with the durable operation.
	writeMu sync.Mutex
	mu      sync.Mutex

	cached   T
	loadedAt time.Time
	hasCache bool
}

// NewCollection creates a collection stored under the given document key.
func NewCollection[T any](backend Backend, key string, window time.Duration) *Collection[T] {
	if window <= 0 {
		window = DefaultFreshness
	}
	return &Collection[T]{
		backend: backend,
		key:     key,
		window:  window,
		now:     time.Now,
	}
}

// SetClock replaces the time source. Tests use it to drive the freshness
// window without sleeping.
func (c *Collection[T]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the latest known snapshot. The cache is served as long as its
// age is below the freshness window; otherwise the document is reloaded from
// durable storage. A missing document yields the zero snapshot, not an error.
//
// The returned snapshot shares backing arrays with the cache and must be
// treated as read-only; all mutation goes through Update.
func (c *Collection[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasCache && c.now().Sub(c.loadedAt) < c.window {
		return c.cached, nil
	}

	var snap T
	data, err := c.backend.Read(ctx, c.key)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		// first access: no document yet, serve the defined default
	case err != nil:
		var zero T
		return zero, storageError("read", c.key, err)
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			var zero T
			return zero, storageError("decode", c.key, err)
		}
	}

	c.cached = snap
	c.loadedAt = c.now()
	c.hasCache = true
	return snap, nil
}

// Put writes the snapshot durably and, on success, replaces the cache and
// resets its freshness clock. On failure the cache is left untouched.
func (c *Collection[T]) Put(ctx context.Context, snap T) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return storageError("encode", c.key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.backend.Write(ctx, c.key, data); err != nil {
		return storageError("write", c.key, err)
	}

	c.cached = snap
	c.loadedAt = c.now()
	c.hasCache = true
	return nil
}

// Update runs fn over the current snapshot and persists the result. The whole
// read-modify-write cycle holds the collection's mutation lock, so concurrent
// updates never interleave and no write is lost. An error from fn aborts the
// update without writing.
//
// fn receives a detached copy of the snapshot. The cached snapshot is never
// mutated in place: it is only replaced by a successful Put, so an aborted or
// failed update leaves the cache untouched and concurrent readers keep seeing
// the previous state.
func (c *Collection[T]) Update(ctx context.Context, fn func(*T) error) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	snap, err := c.Get(ctx)
	if err != nil {
		return err
	}
	work, err := cloneSnapshot(snap)
	if err != nil {
		return storageError("clone", c.key, err)
	}
	if err := fn(&work); err != nil {
		return err
	}
	return c.Put(ctx, work)
}

// cloneSnapshot detaches a snapshot from the cache's backing arrays by
// round-tripping it through the JSON codec.
func cloneSnapshot[T any](snap T) (T, error) {
	var out T
	data, err := json.Marshal(snap)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
