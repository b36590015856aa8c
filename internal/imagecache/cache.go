// Package imagecache provides a process-local byte cache for remote images
// with single-flight deduplication and LRU eviction under a byte budget.
//
// The cache map and recency list live under one mutex; network fetches run
// outside the critical section so a slow remote never blocks unrelated
// lookups. Failed fetches leave no entry behind: the locator simply returns
// to absent and a later Fetch retries from scratch.
package imagecache

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alexisbeaulieu97/glosskit/internal/logger"
	glosskiterrors "github.com/alexisbeaulieu97/glosskit/pkg/errors"
)

// DefaultBudget bounds in-memory cache size when no option overrides it.
// Sized for a few hundred thumbnail-scale images.
const DefaultBudget = 32 << 20

// FetchFunc retrieves the raw bytes for a locator. The default implementation
// performs an HTTP GET; tests inject stubs.
type FetchFunc func(ctx context.Context, locator string) ([]byte, error)

// Entry describes one cached image for introspection.
type Entry struct {
	Key          string
	Size         int
	LastAccessed time.Time
}

type record struct {
	key          string
	bytes        []byte
	lastAccessed time.Time
}

// Cache is a byte-budgeted LRU image cache. All methods are safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently accessed
	size    int64

	budget   int64
	fetch    FetchFunc
	validate bool
	disk     *diskStore
	log      *logger.Logger
	now      func() time.Time

	group singleflight.Group
}

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithBudget sets the in-memory byte budget.
func WithBudget(bytes int64) Option {
	return func(c *Cache) {
		if bytes > 0 {
			c.budget = bytes
		}
	}
}

// WithFetcher replaces the underlying fetch implementation.
func WithFetcher(fn FetchFunc) Option {
	return func(c *Cache) {
		if fn != nil {
			c.fetch = fn
		}
	}
}

// WithValidation toggles image sniffing of fetched payloads. On by default;
// turning it off stores whatever bytes the fetcher returns.
func WithValidation(enabled bool) Option {
	return func(c *Cache) { c.validate = enabled }
}

// WithLogger attaches a logger. Nil is fine and discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// New constructs a Cache. The returned error is non-nil only when an option
// needs filesystem setup that fails (see WithDiskStore).
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		budget:   DefaultBudget,
		fetch:    httpFetch,
		validate: true,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.disk != nil {
		if err := c.disk.init(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Fetch returns the cached bytes for the locator, fetching them on a miss.
// Concurrent calls for one uncached locator share a single underlying fetch
// and all receive the same bytes or the same error. Cancelling the caller's
// context detaches only that caller; the shared fetch keeps running and may
// still populate the cache.
func (c *Cache) Fetch(ctx context.Context, locator string) ([]byte, error) {
	if b, ok := c.Peek(locator); ok {
		return b, nil
	}

	ch := c.group.DoChan(locator, func() (any, error) {
		return c.load(locator)
	})

	select {
	case <-ctx.Done():
		return nil, glosskiterrors.NewFetchError(locator, glosskiterrors.FetchKindCancelled, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// load runs inside the single-flight group: at most one execution per
// locator is in flight at any time.
func (c *Cache) load(locator string) ([]byte, error) {
	// A fetch that finished between the caller's miss and this execution
	// already populated the map.
	if b, ok := c.Peek(locator); ok {
		return b, nil
	}

	if c.disk != nil {
		if b, ok := c.disk.load(locator); ok {
			c.insert(locator, b)
			c.log.WithFields(map[string]any{"locator": locator, "bytes": len(b)}).Debug("disk tier hit")
			return b, nil
		}
	}

	// The fetch is deliberately detached from any single caller's context:
	// subscribers come and go while it runs.
	b, err := c.fetch(context.Background(), locator)
	if err != nil {
		err = classify(locator, err)
		c.log.WithFields(map[string]any{"locator": locator}).Error(err, "fetch failed")
		return nil, err
	}

	if c.validate {
		if err := sniffImage(b); err != nil {
			err = glosskiterrors.NewFetchError(locator, glosskiterrors.FetchKindDecode, err)
			c.log.WithFields(map[string]any{"locator": locator}).Error(err, "payload is not an image")
			return nil, err
		}
	}

	c.insert(locator, b)
	if c.disk != nil {
		if err := c.disk.store(locator, b); err != nil {
			c.log.WithFields(map[string]any{"locator": locator}).Error(err, "disk tier write failed")
		}
	}

	c.log.WithFields(map[string]any{"locator": locator, "bytes": len(b)}).Debug("entry cached")
	return b, nil
}

// Peek returns cached bytes without ever triggering network activity. A hit
// refreshes the entry's recency. Returned bytes are owned by the cache and
// must be treated as read-only.
func (c *Cache) Peek(locator string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[locator]
	if !ok {
		return nil, false
	}

	rec := el.Value.(*record)
	rec.lastAccessed = c.now()
	c.order.MoveToFront(el)
	return rec.bytes, true
}

// Invalidate drops the locator from memory and the disk tier. A later Fetch
// starts over from absent: the single-flight key is forgotten too, so it can
// never join a flight that started before the invalidation.
func (c *Cache) Invalidate(locator string) {
	c.mu.Lock()
	if el, ok := c.entries[locator]; ok {
		c.removeLocked(el)
	}
	c.mu.Unlock()

	c.group.Forget(locator)

	if c.disk != nil {
		c.disk.remove(locator)
	}
}

// Clear empties the cache and the disk tier.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.size = 0
	c.mu.Unlock()

	if c.disk != nil {
		c.disk.clear()
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SizeBytes returns the total cached byte count.
func (c *Cache) SizeBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Entries returns a snapshot of cache metadata, most recently accessed first.
func (c *Cache) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		rec := el.Value.(*record)
		out = append(out, Entry{Key: rec.key, Size: len(rec.bytes), LastAccessed: rec.lastAccessed})
	}
	return out
}

func (c *Cache) insert(locator string, b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A payload larger than the whole budget can never fit, so it goes to
	// the caller uncached; any stale entry under the locator is dropped.
	if int64(len(b)) > c.budget {
		if el, ok := c.entries[locator]; ok {
			c.removeLocked(el)
		}
		c.log.WithFields(map[string]any{"locator": locator, "bytes": len(b)}).Debug("payload exceeds budget, not cached")
		return
	}

	if el, ok := c.entries[locator]; ok {
		rec := el.Value.(*record)
		c.size += int64(len(b)) - int64(len(rec.bytes))
		rec.bytes = b
		rec.lastAccessed = c.now()
		c.order.MoveToFront(el)
		c.evictLocked(el)
		return
	}

	el := c.order.PushFront(&record{key: locator, bytes: b, lastAccessed: c.now()})
	c.entries[locator] = el
	c.size += int64(len(b))
	c.evictLocked(el)
}

// evictLocked drops least-recently-accessed entries until the cache fits the
// budget. Every stored entry fits the budget on its own, so the loop always
// terminates before reaching the freshly inserted element.
func (c *Cache) evictLocked(keep *list.Element) {
	for c.size > c.budget {
		back := c.order.Back()
		if back == nil || back == keep {
			return
		}
		rec := back.Value.(*record)
		c.removeLocked(back)
		c.log.WithFields(map[string]any{"locator": rec.key, "bytes": len(rec.bytes)}).Debug("entry evicted")
	}
}

func (c *Cache) removeLocked(el *list.Element) {
	rec := el.Value.(*record)
	c.order.Remove(el)
	delete(c.entries, rec.key)
	c.size -= int64(len(rec.bytes))
}

// classify wraps transport errors as network-kind fetch errors, preserving
// already-classified ones.
func classify(locator string, err error) error {
	var fetchErr *glosskiterrors.FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return glosskiterrors.NewFetchError(locator, glosskiterrors.FetchKindNetwork, err)
}
