package handler

import (
	"errors"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/domain/job"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/career-suggestions", h.SuggestJobs)
	r.Get("/jobs", h.ListJobs)
}

func (h *JobRecommendationHandler) SuggestJobs(c fiber.Ctx) error {
	upload, closeUpload, err := resumeUpload(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	res, err := h.uc.SuggestJobs(c.Context(), usecase.SuggestParams{
		ResumeFile: upload,
		ResumeText: c.FormValue(formResumeText),
	})
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}

	out := dto.JobSuggestionsResponse{
		JobSuggestions: make([]string, 0, len(res.Suggestions)),
		Details:        make([]dto.JobSuggestionResponse, 0, len(res.Suggestions)),
	}
	for _, s := range res.Suggestions {
		out.JobSuggestions = append(out.JobSuggestions, s.Title)
		out.Details = append(out.Details, dto.JobSuggestionResponse{
			Title:         s.Title,
			Score:         s.Score,
			MatchedSkills: s.MatchedSkills,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobRecommendationHandler) ListJobs(c fiber.Ctx) error {
	entries := h.uc.ListJobs(c.Context())

	out := make([]dto.JobListItemResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.JobListItemResponse{
			Title:          job.Title(e.Name),
			RequiredSkills: e.Skills.Sorted(),
			RoadmapSteps:   len(e.Roadmap),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapJobRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type.", nil, err)
	default:
		return middleware.NewFailureError(err)
	}
}
