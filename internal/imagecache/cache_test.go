package imagecache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glosskiterrors "github.com/alexisbeaulieu97/glosskit/pkg/errors"
)

// payloadFetcher returns fixed bytes per locator and counts invocations.
func payloadFetcher(payloads map[string][]byte, calls *atomic.Int32) FetchFunc {
	return func(ctx context.Context, locator string) ([]byte, error) {
		calls.Add(1)
		b, ok := payloads[locator]
		if !ok {
			return nil, fmt.Errorf("no payload for %s", locator)
		}
		return b, nil
	}
}

func newTestCache(t *testing.T, opts ...Option) *Cache {
	t.Helper()
	c, err := New(append([]Option{WithValidation(false)}, opts...)...)
	require.NoError(t, err)
	return c
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetchCachesAndPeeks(t *testing.T) {
	var calls atomic.Int32
	payload := []byte("image-bytes")
	c := newTestCache(t, WithFetcher(payloadFetcher(map[string][]byte{"a": payload}, &calls)))

	got, err := c.Fetch(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, int32(1), calls.Load())

	peeked, ok := c.Peek("a")
	require.True(t, ok)
	assert.Equal(t, payload, peeked)

	// A second fetch is served from memory.
	_, err = c.Fetch(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPeekNeverFetches(t *testing.T) {
	var calls atomic.Int32
	c := newTestCache(t, WithFetcher(payloadFetcher(nil, &calls)))

	_, ok := c.Peek("missing")
	assert.False(t, ok)
	assert.Equal(t, int32(0), calls.Load())
}

func TestConcurrentFetchesAreSingleFlight(t *testing.T) {
	const subscribers = 16

	var calls atomic.Int32
	release := make(chan struct{})
	payload := []byte("shared-bytes")

	c := newTestCache(t, WithFetcher(func(ctx context.Context, locator string) ([]byte, error) {
		calls.Add(1)
		<-release
		return payload, nil
	}))

	var wg sync.WaitGroup
	results := make([][]byte, subscribers)
	errs := make([]error, subscribers)

	for i := 0; i < subscribers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Fetch(context.Background(), "shared")
		}(i)
	}

	// Give every subscriber time to join the in-flight fetch before it
	// completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "exactly one underlying fetch")
	for i := 0; i < subscribers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, payload, results[i])
	}
}

func TestFailurePropagatesToAllSubscribers(t *testing.T) {
	const subscribers = 8

	var calls atomic.Int32
	release := make(chan struct{})

	c := newTestCache(t, WithFetcher(func(ctx context.Context, locator string) ([]byte, error) {
		calls.Add(1)
		<-release
		return nil, fmt.Errorf("connection reset")
	}))

	var wg sync.WaitGroup
	errs := make([]error, subscribers)
	for i := 0; i < subscribers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Fetch(context.Background(), "broken")
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, err := range errs {
		var fetchErr *glosskiterrors.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, glosskiterrors.FetchKindNetwork, fetchErr.Kind)
	}
}

func TestFailureLeavesNoEntryAndRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestCache(t, WithFetcher(func(ctx context.Context, locator string) ([]byte, error) {
		if calls.Add(1) == 1 {
			return nil, fmt.Errorf("transient failure")
		}
		return []byte("recovered"), nil
	}))

	_, err := c.Fetch(context.Background(), "flaky")
	require.Error(t, err)

	_, ok := c.Peek("flaky")
	assert.False(t, ok, "failed fetch must leave no entry behind")

	got, err := c.Fetch(context.Background(), "flaky")
	require.NoError(t, err)
	assert.Equal(t, []byte("recovered"), got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDecodeFailureIsClassified(t *testing.T) {
	var calls atomic.Int32
	c, err := New(WithFetcher(payloadFetcher(map[string][]byte{"junk": []byte("not an image")}, &calls)))
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "junk")
	require.Error(t, err)

	var fetchErr *glosskiterrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, glosskiterrors.FetchKindDecode, fetchErr.Kind)

	_, ok := c.Peek("junk")
	assert.False(t, ok)
}

func TestValidationAcceptsRealImages(t *testing.T) {
	var calls atomic.Int32
	payload := pngBytes(t)
	c, err := New(WithFetcher(payloadFetcher(map[string][]byte{"img": payload}, &calls)))
	require.NoError(t, err)

	got, err := c.Fetch(context.Background(), "img")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestCancelledCallerDetachesWithoutAbortingFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	payload := []byte("slow-bytes")

	c := newTestCache(t, WithFetcher(func(ctx context.Context, locator string) ([]byte, error) {
		calls.Add(1)
		<-release
		return payload, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Fetch(ctx, "slow")
	require.Error(t, err)

	var fetchErr *glosskiterrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, glosskiterrors.FetchKindCancelled, fetchErr.Kind)

	// The orphaned fetch completes and still populates the cache.
	close(release)
	require.Eventually(t, func() bool {
		_, ok := c.Peek("slow")
		return ok
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestEvictionKeepsTotalUnderBudget(t *testing.T) {
	entry := bytes.Repeat([]byte{0xab}, 100)
	payloads := map[string][]byte{}
	for i := 0; i < 10; i++ {
		payloads[fmt.Sprintf("img-%d", i)] = entry
	}

	var calls atomic.Int32
	c := newTestCache(t,
		WithBudget(350),
		WithFetcher(payloadFetcher(payloads, &calls)),
	)

	for i := 0; i < 10; i++ {
		_, err := c.Fetch(context.Background(), fmt.Sprintf("img-%d", i))
		require.NoError(t, err)
		assert.LessOrEqual(t, c.SizeBytes(), int64(350))
	}

	assert.Equal(t, 3, c.Len())
}

func TestEvictionOrderIsLeastRecentlyAccessed(t *testing.T) {
	entry := bytes.Repeat([]byte{0x01}, 10)
	payloads := map[string][]byte{"a": entry, "b": entry, "c": entry, "d": entry}

	var calls atomic.Int32
	c := newTestCache(t, WithBudget(30), WithFetcher(payloadFetcher(payloads, &calls)))

	for _, key := range []string{"a", "b", "c"} {
		_, err := c.Fetch(context.Background(), key)
		require.NoError(t, err)
	}

	// Inserting d exceeds the budget; a is the least recently accessed.
	_, err := c.Fetch(context.Background(), "d")
	require.NoError(t, err)

	_, ok := c.Peek("a")
	assert.False(t, ok, "a should have been evicted")
	for _, key := range []string{"b", "c", "d"} {
		_, ok := c.Peek(key)
		assert.True(t, ok, "%s should remain", key)
	}
}

func TestPeekRefreshesRecency(t *testing.T) {
	entry := bytes.Repeat([]byte{0x02}, 10)
	payloads := map[string][]byte{"a": entry, "b": entry, "c": entry, "d": entry}

	var calls atomic.Int32
	c := newTestCache(t, WithBudget(30), WithFetcher(payloadFetcher(payloads, &calls)))

	for _, key := range []string{"a", "b", "c"} {
		_, err := c.Fetch(context.Background(), key)
		require.NoError(t, err)
	}

	// Touching a promotes it; b becomes the eviction candidate.
	_, ok := c.Peek("a")
	require.True(t, ok)

	_, err := c.Fetch(context.Background(), "d")
	require.NoError(t, err)

	_, ok = c.Peek("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Peek("a")
	assert.True(t, ok, "a was refreshed and should remain")
}

func TestOversizedPayloadBypassesCache(t *testing.T) {
	big := bytes.Repeat([]byte{0x03}, 100)
	small := bytes.Repeat([]byte{0x04}, 10)

	var calls atomic.Int32
	c := newTestCache(t,
		WithBudget(50),
		WithFetcher(payloadFetcher(map[string][]byte{"big": big, "small": small}, &calls)),
	)

	got, err := c.Fetch(context.Background(), "big")
	require.NoError(t, err)
	assert.Equal(t, big, got, "the caller still receives the payload")

	assert.LessOrEqual(t, c.SizeBytes(), int64(50), "total size never exceeds the budget")
	assert.Equal(t, 0, c.Len())
	_, ok := c.Peek("big")
	assert.False(t, ok, "a payload larger than the budget is never cached")

	_, err = c.Fetch(context.Background(), "small")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.LessOrEqual(t, c.SizeBytes(), int64(50))
}

func TestOversizedPayloadReplacesNothing(t *testing.T) {
	small := bytes.Repeat([]byte{0x05}, 10)
	big := bytes.Repeat([]byte{0x06}, 100)

	var calls atomic.Int32
	payloads := map[string][]byte{"a": small}
	c := newTestCache(t,
		WithBudget(50),
		WithFetcher(payloadFetcher(payloads, &calls)),
	)

	_, err := c.Fetch(context.Background(), "a")
	require.NoError(t, err)

	// The locator now serves a payload that no longer fits; refetching it
	// must drop the stale entry rather than keep serving it.
	payloads["a"] = big
	c.Invalidate("a")

	got, err := c.Fetch(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, big, got)
	assert.Zero(t, c.SizeBytes())
	assert.Equal(t, 0, c.Len())
}

func TestInvalidateForcesRefetch(t *testing.T) {
	var calls atomic.Int32
	c := newTestCache(t, WithFetcher(payloadFetcher(map[string][]byte{"a": []byte("v1")}, &calls)))

	_, err := c.Fetch(context.Background(), "a")
	require.NoError(t, err)

	c.Invalidate("a")
	_, ok := c.Peek("a")
	assert.False(t, ok)

	_, err = c.Fetch(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestInvalidateDetachesInFlightFetch(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	c := newTestCache(t, WithFetcher(func(ctx context.Context, locator string) ([]byte, error) {
		if calls.Add(1) == 1 {
			<-release
			return []byte("stale"), nil
		}
		return []byte("fresh"), nil
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Fetch(context.Background(), "a")
	}()

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, time.Millisecond, "first fetch underway")

	// Invalidating while a fetch is in flight must not let a later Fetch
	// join that flight and receive the bytes just invalidated.
	c.Invalidate("a")

	got, err := c.Fetch(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), got)
	assert.Equal(t, int32(2), calls.Load())

	close(release)
	<-done
}

func TestClearEmptiesEverything(t *testing.T) {
	entry := []byte("bytes")
	var calls atomic.Int32
	c := newTestCache(t, WithFetcher(payloadFetcher(map[string][]byte{"a": entry, "b": entry}, &calls)))

	for _, key := range []string{"a", "b"} {
		_, err := c.Fetch(context.Background(), key)
		require.NoError(t, err)
	}
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.SizeBytes())
}

func TestEntriesSnapshotIsMostRecentFirst(t *testing.T) {
	entry := []byte("bytes")
	var calls atomic.Int32
	c := newTestCache(t, WithFetcher(payloadFetcher(map[string][]byte{"a": entry, "b": entry}, &calls)))

	for _, key := range []string{"a", "b"} {
		_, err := c.Fetch(context.Background(), key)
		require.NoError(t, err)
	}

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Key)
	assert.Equal(t, "a", entries[1].Key)
	assert.Equal(t, len(entry), entries[0].Size)
}
