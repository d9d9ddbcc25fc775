package usecase

import (
	"context"
	"time"

	"skillmatch/internal/domain/skill"

	"go.uber.org/zap"
)

// CachedExtractor serves repeated texts from a SkillCache. Cache failures are
// logged and fall through to the wrapped extractor.
type CachedExtractor struct {
	next   skill.Extractor
	cache  SkillCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedExtractor(next skill.Extractor, cache SkillCache, ttl time.Duration, logger *zap.Logger) skill.Extractor {
	if cache == nil {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedExtractor{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedExtractor) Extract(ctx context.Context, text string) (skill.Set, error) {
	key := SkillCacheKey(text)

	var cached skill.Set
	hit, err := c.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		c.logger.Debug("skill cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit && err == nil {
		if cached == nil {
			cached = skill.NewSet()
		}
		return cached, nil
	}

	set, err := c.next.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, key, set, c.ttl); err != nil {
		c.logger.Debug("skill cache write failed", zap.String("key", key), zap.Error(err))
	}
	return set, nil
}
