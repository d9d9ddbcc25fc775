package app

import (
	"fmt"

	"skillmatch/internal/config"
	"skillmatch/internal/domain/job"
	"skillmatch/internal/domain/skill"
	"skillmatch/internal/infrastructure/cache"
	"skillmatch/internal/infrastructure/document"
	"skillmatch/internal/nlp"
	"skillmatch/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	Catalog *job.Catalog
	Docs    *document.Extractor
	Skills  skill.Extractor
	Cache   *cache.Redis

	Matching          usecase.MatchingUsecase
	JobRecommendation usecase.JobRecommendationUsecase
	Roadmap           usecase.RoadmapUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog, err := job.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load job catalog: %w", err)
	}
	logger.Info("job catalog loaded", zap.Int("jobs", catalog.Len()), zap.String("path", cfg.Catalog.Path))

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog,
		Docs:    document.NewExtractor(cfg.Upload.MaxBytes),
	}

	var skills skill.Extractor = nlp.NewChunkExtractor(nil)
	if cfg.Redis.Enabled {
		c.Cache = cache.NewRedis(cfg.Redis, logger)
		if c.Cache.Available() {
			skills = usecase.NewCachedExtractor(skills, c.Cache, cfg.Redis.TTL, logger)
		}
	}
	c.Skills = skills

	c.Matching = usecase.NewMatchingUsecase(c.Docs, c.Skills, logger)
	c.JobRecommendation = usecase.NewJobRecommendationUsecase(c.Catalog, c.Docs, logger)
	c.Roadmap = usecase.NewRoadmapUsecase(c.Catalog, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
