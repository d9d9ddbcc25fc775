package cli

import (
	"skillmatch/internal/usecase"

	"github.com/spf13/cobra"
)

type suggestionOutput struct {
	Title         string   `json:"title"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank catalog jobs against a resume",
	Args:  cobra.NoArgs,
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringP("resume", "r", "", "resume file (.pdf, .doc, .docx)")
	suggestCmd.Flags().String("resume-text", "", "resume as plain text")
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	resumePath, _ := cmd.Flags().GetString("resume")
	resumeText, _ := cmd.Flags().GetString("resume-text")

	upload, closeUpload, err := openUpload(resumePath)
	if err != nil {
		return err
	}
	defer closeUpload()

	res, err := d.jobRecommendation().SuggestJobs(cmd.Context(), usecase.SuggestParams{
		ResumeFile: upload,
		ResumeText: resumeText,
	})
	if err != nil {
		return err
	}

	out := make([]suggestionOutput, 0, len(res.Suggestions))
	for _, s := range res.Suggestions {
		out = append(out, suggestionOutput{Title: s.Title, Score: s.Score, MatchedSkills: s.MatchedSkills})
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
