package usecase

import (
	"context"
	"fmt"

	"skillmatch/internal/domain/job"
	"skillmatch/internal/domain/roadmap"

	"go.uber.org/zap"
)

type RoadmapUsecase interface {
	GenerateRoadmap(ctx context.Context, jobTitle, resumeText string) (roadmap.Roadmap, error)
}

type Roadmap struct {
	catalog *job.Catalog
	logger  *zap.Logger
}

func NewRoadmapUsecase(catalog *job.Catalog, logger *zap.Logger) *Roadmap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roadmap{catalog: catalog, logger: logger}
}

// GenerateRoadmap builds the learning roadmap for jobTitle. resumeText is
// accepted for API compatibility but does not influence the result.
func (u *Roadmap) GenerateRoadmap(ctx context.Context, jobTitle, resumeText string) (roadmap.Roadmap, error) {
	_ = resumeText

	if jobTitle == "" {
		return roadmap.Roadmap{}, fmt.Errorf("%w: job title is required", ErrMissingRequiredInput)
	}
	if err := ctx.Err(); err != nil {
		return roadmap.Roadmap{}, fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}
	if u.catalog == nil {
		return roadmap.Roadmap{}, fmt.Errorf("%w: job catalog not loaded", ErrExtractionFailure)
	}

	r := roadmap.Generate(u.catalog, jobTitle)
	u.logger.Debug("roadmap generated", zap.String("job_title", jobTitle), zap.Bool("fallback", r.Fallback), zap.Int("steps", len(r.Steps)))
	return r, nil
}
