package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedExtractor_ServesRepeatsFromCache(t *testing.T) {
	next := &wordExtractor{}
	cache := newMemoryCache()
	e := NewCachedExtractor(next, cache, time.Minute, nil)

	first, err := e.Extract(context.Background(), "Go Redis")
	require.NoError(t, err)
	second, err := e.Extract(context.Background(), "Go Redis")
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, 1, cache.sets)
}

func TestCachedExtractor_CacheFailuresFallThrough(t *testing.T) {
	next := &wordExtractor{}
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	e := NewCachedExtractor(next, cache, time.Minute, nil)

	got, err := e.Extract(context.Background(), "kafka")
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka"}, got.Sorted())
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedExtractor_ExtractorErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	cache := newMemoryCache()
	e := NewCachedExtractor(&wordExtractor{fail: map[string]error{"x": boom}}, cache, time.Minute, nil)

	_, err := e.Extract(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, cache.sets)
}

func TestNewCachedExtractor_NilCacheReturnsNext(t *testing.T) {
	next := &wordExtractor{}
	assert.Same(t, next, NewCachedExtractor(next, nil, time.Minute, nil))
}

func TestSkillCacheKey(t *testing.T) {
	a := SkillCacheKey("go developer")
	assert.Equal(t, a, SkillCacheKey("go developer"))
	assert.NotEqual(t, a, SkillCacheKey("Go developer"))
	assert.Len(t, a, len(skillCacheKeyPrefix)+64)
}
