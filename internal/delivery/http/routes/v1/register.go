package v1

import (
	"skillmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match             *handler.MatchHandler
	JobRecommendation *handler.JobRecommendationHandler
	Roadmap           *handler.RoadmapHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterAnalysis(r, h.Match, h.Roadmap)
	RegisterJobs(r, h.JobRecommendation)
}
