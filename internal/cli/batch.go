package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"skillmatch/internal/pkg/workerpool"
	"skillmatch/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type batchItem struct {
	File     string   `json:"file"`
	Score    float64  `json:"score"`
	Eligible bool     `json:"eligible"`
	Missing  []string `json:"missing_skills,omitempty"`
	Error    string   `json:"error,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every resume in a directory against one job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("job-desc", "J", "", "plain text file with the job description")
	batchCmd.Flags().String("job-desc-text", "", "job description as plain text")
	batchCmd.Flags().IntP("workers", "w", 4, "number of resumes analyzed concurrently")
}

func runBatch(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.logger.Sync() }()

	flags := cmd.Flags()
	jobPath, _ := flags.GetString("job-desc")
	jobInline, _ := flags.GetString("job-desc-text")
	workers, _ := flags.GetInt("workers")

	jobText, err := textArg(jobInline, jobPath)
	if err != nil {
		return err
	}

	files, err := resumeFiles(args[0], d.docs.Supports)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .pdf, .doc or .docx files in %s", args[0])
	}

	uc := d.matching()
	tasks := make([]workerpool.Task[usecase.AnalyzeResult], 0, len(files))
	for _, path := range files {
		tasks = append(tasks, analyzeFileTask(uc, path, jobText))
	}

	results := workerpool.Collect(cmd.Context(), workers, tasks)

	items := make([]batchItem, 0, len(results))
	for i, r := range results {
		item := batchItem{File: files[i]}
		if r.Err != nil {
			d.logger.Warn("resume analysis failed", zap.String("file", files[i]), zap.Error(r.Err))
			item.Error = r.Err.Error()
		} else {
			item.Score = r.Value.Match.Score
			item.Eligible = r.Value.Match.Eligible
			item.Missing = r.Value.Match.Missing
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	return writeJSON(cmd.OutOrStdout(), items)
}

func analyzeFileTask(uc usecase.MatchingUsecase, path, jobText string) workerpool.Task[usecase.AnalyzeResult] {
	return func(ctx context.Context) (usecase.AnalyzeResult, error) {
		upload, closeUpload, err := openUpload(path)
		if err != nil {
			return usecase.AnalyzeResult{}, err
		}
		defer closeUpload()

		return uc.Analyze(ctx, usecase.AnalyzeParams{ResumeFile: upload, JobDescriptionText: jobText})
	}
}

// resumeFiles lists the supported files directly inside dir, sorted by name.
func resumeFiles(dir string, supports func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !supports(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}
