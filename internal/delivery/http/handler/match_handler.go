package handler

import (
	"errors"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resume-analyzer", h.Analyze)
}

func (h *MatchHandler) Analyze(c fiber.Ctx) error {
	upload, closeUpload, err := resumeUpload(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	res, err := h.uc.Analyze(c.Context(), usecase.AnalyzeParams{
		ResumeFile:         upload,
		ResumeText:         c.FormValue(formResumeText),
		JobDescriptionText: c.FormValue(formJobDescText),
	})
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.MatchingResultResponse{
		ResumeSkills:  res.ResumeSkills.Sorted(),
		JobDescSkills: res.JobSkills.Sorted(),
		MatchedSkills: res.Match.Matched.Sorted(),
		MissingSkills: res.Match.Missing,
		Score:         res.Match.Score,
		Eligible:      res.Match.Eligible,
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type.", nil, err)
	case errors.Is(err, usecase.ErrMissingRequiredInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Both resume and job description required.", nil, err)
	default:
		return middleware.NewFailureError(err)
	}
}
