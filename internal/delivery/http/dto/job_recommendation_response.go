package dto

type JobSuggestionsResponse struct {
	JobSuggestions []string                `json:"job_suggestions"`
	Details        []JobSuggestionResponse `json:"details"`
}

type JobSuggestionResponse struct {
	Title         string   `json:"title"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
}
