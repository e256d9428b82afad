package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"peerdiff/feature/peering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLookup struct {
	calls atomic.Int32
	delay time.Duration
	err   error
}

func (c *countingLookup) LookupAsInfo(ctx context.Context, asn uint32, selfAsno string) (models.AsInfo, error) {
	c.calls.Add(1)
	select {
	case <-time.After(c.delay):
	case <-ctx.Done():
		return models.AsInfo{AnnouncedSet: models.AnySet}, ctx.Err()
	}
	if c.err != nil {
		return models.AsInfo{AnnouncedSet: models.AnySet}, c.err
	}
	return models.AsInfo{Name: "peer", AnnouncedSet: "AS-PEER"}, nil
}

func TestInfoCache_Memoizes(t *testing.T) {
	inner := &countingLookup{}
	cache := NewInfoCache(inner, 0)

	for i := 0; i < 3; i++ {
		info, err := cache.LookupAsInfo(context.Background(), 64500, "64496")
		require.NoError(t, err)
		assert.Equal(t, "AS-PEER", info.AnnouncedSet)
	}
	assert.Equal(t, int32(1), inner.calls.Load())

	// Different self ASN is a different question.
	_, _ = cache.LookupAsInfo(context.Background(), 64500, "64497")
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestInfoCache_DoesNotCacheErrors(t *testing.T) {
	inner := &countingLookup{err: errors.New("timeout")}
	cache := NewInfoCache(inner, 0)

	info, err := cache.LookupAsInfo(context.Background(), 64500, "64496")
	assert.Error(t, err)
	assert.Equal(t, models.AnySet, info.AnnouncedSet)

	_, _ = cache.LookupAsInfo(context.Background(), 64500, "64496")
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestInfoCache_Expires(t *testing.T) {
	inner := &countingLookup{}
	cache := NewInfoCache(inner, 10*time.Millisecond)

	_, _ = cache.LookupAsInfo(context.Background(), 64500, "64496")
	time.Sleep(30 * time.Millisecond)
	_, _ = cache.LookupAsInfo(context.Background(), 64500, "64496")
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestInfoCache_Invalidate(t *testing.T) {
	inner := &countingLookup{}
	cache := NewInfoCache(inner, 0)

	_, _ = cache.LookupAsInfo(context.Background(), 64500, "64496")
	cache.Invalidate()
	_, _ = cache.LookupAsInfo(context.Background(), 64500, "64496")
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestInfoCache_SingleFlight(t *testing.T) {
	inner := &countingLookup{delay: 50 * time.Millisecond}
	cache := NewInfoCache(inner, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cache.LookupAsInfo(context.Background(), 64500, "64496")
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestInfoCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	inner := &countingLookup{delay: 100 * time.Millisecond}
	cache := NewInfoCache(inner, 0)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := cache.LookupAsInfo(ctxA, 64500, "64496")
		errA <- err
	}()
	require.Eventually(t, func() bool { return inner.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		info models.AsInfo
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		info, err := cache.LookupAsInfo(context.Background(), 64500, "64496")
		resB <- result{info, err}
	}()

	time.Sleep(10 * time.Millisecond)
	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, models.AsInfo{Name: "peer", AnnouncedSet: "AS-PEER"}, b.info)
	assert.Equal(t, int32(1), inner.calls.Load())

	// The shared answer was cached for later callers.
	info, err := cache.LookupAsInfo(context.Background(), 64500, "64496")
	require.NoError(t, err)
	assert.Equal(t, "AS-PEER", info.AnnouncedSet)
	assert.Equal(t, int32(1), inner.calls.Load())
}
