package cli

import (
	"skillmatch/internal/usecase"

	"github.com/spf13/cobra"
)

type analyzeOutput struct {
	ResumeSkills  []string `json:"resume_skills"`
	JobDescSkills []string `json:"job_desc_skills"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Score         float64  `json:"score"`
	Eligible      bool     `json:"eligible"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "resume file (.pdf, .doc, .docx)")
	analyzeCmd.Flags().String("resume-text", "", "resume as plain text")
	analyzeCmd.Flags().StringP("job-desc", "J", "", "plain text file with the job description")
	analyzeCmd.Flags().String("job-desc-text", "", "job description as plain text")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	flags := cmd.Flags()
	resumePath, _ := flags.GetString("resume")
	resumeText, _ := flags.GetString("resume-text")
	jobPath, _ := flags.GetString("job-desc")
	jobInline, _ := flags.GetString("job-desc-text")

	jobText, err := textArg(jobInline, jobPath)
	if err != nil {
		return err
	}

	upload, closeUpload, err := openUpload(resumePath)
	if err != nil {
		return err
	}
	defer closeUpload()

	res, err := d.matching().Analyze(cmd.Context(), usecase.AnalyzeParams{
		ResumeFile:         upload,
		ResumeText:         resumeText,
		JobDescriptionText: jobText,
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), analyzeOutput{
		ResumeSkills:  res.ResumeSkills.Sorted(),
		JobDescSkills: res.JobSkills.Sorted(),
		MatchedSkills: res.Match.Matched.Sorted(),
		MissingSkills: res.Match.Missing,
		Score:         res.Match.Score,
		Eligible:      res.Match.Eligible,
	})
}
