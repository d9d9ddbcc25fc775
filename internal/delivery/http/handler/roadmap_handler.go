package handler

import (
	"errors"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoadmapHandler struct {
	uc usecase.RoadmapUsecase
}

func NewRoadmapHandler(uc usecase.RoadmapUsecase) *RoadmapHandler {
	return &RoadmapHandler{uc: uc}
}

func (h *RoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/get-roadmap", h.GetRoadmap)
}

func (h *RoadmapHandler) GetRoadmap(c fiber.Ctx) error {
	var req dto.RoadmapRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid JSON body", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job title is required", nil, err)
	}

	rm, err := h.uc.GenerateRoadmap(c.Context(), req.JobTitle, req.ResumeText)
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RoadmapResponse{
		RoadmapPoints: rm.Mermaid(),
		Steps:         rm.Steps,
		Fallback:      rm.Fallback,
	})
}

func mapRoadmapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMissingRequiredInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job title is required", nil, err)
	default:
		return middleware.NewFailureError(err)
	}
}
