package dto

type JobListItemResponse struct {
	Title          string   `json:"title"`
	RequiredSkills []string `json:"required_skills"`
	RoadmapSteps   int      `json:"roadmap_steps"`
}
