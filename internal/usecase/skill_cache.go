package usecase

import (
	"context"
	"time"
)

// SkillCache stores extracted skill sets keyed by a digest of the source text.
type SkillCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
