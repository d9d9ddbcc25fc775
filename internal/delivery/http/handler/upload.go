package handler

import (
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	formResumeFile  = "resume_file"
	formResumeText  = "resume_text"
	formJobDescText = "job_desc_text"
)

// resumeUpload returns the uploaded resume, or nil when the form carries no
// file. The returned func closes the file.
func resumeUpload(c fiber.Ctx) (*usecase.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(formResumeFile)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil, noop, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, middleware.NewFailureError(err)
	}
	return &usecase.Upload{Filename: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}
