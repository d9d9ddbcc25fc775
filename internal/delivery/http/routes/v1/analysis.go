package v1

import (
	"skillmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterAnalysis(r fiber.Router, matchHandler *handler.MatchHandler, roadmapHandler *handler.RoadmapHandler) {
	if r == nil {
		return
	}

	if matchHandler != nil {
		matchHandler.RegisterRoutes(r)
	}
	if roadmapHandler != nil {
		roadmapHandler.RegisterRoutes(r)
	}
}
