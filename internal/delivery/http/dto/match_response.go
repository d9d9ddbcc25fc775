package dto

type MatchingResultResponse struct {
	ResumeSkills  []string `json:"resume_skills"`
	JobDescSkills []string `json:"job_desc_skills"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Score         float64  `json:"score"`
	Eligible      bool     `json:"eligible"`
}
