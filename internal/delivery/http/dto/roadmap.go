package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type RoadmapRequest struct {
	JobTitle   string `json:"job_title" validate:"required"`
	ResumeText string `json:"resume_text"`
}

func (r *RoadmapRequest) Validate() error {
	return validate.Struct(r)
}

type RoadmapResponse struct {
	RoadmapPoints string   `json:"roadmap_points"`
	Steps         []string `json:"steps"`
	Fallback      bool     `json:"fallback"`
}
