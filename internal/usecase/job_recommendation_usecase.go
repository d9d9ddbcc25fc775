package usecase

import (
	"context"
	"fmt"
	"strings"

	"skillmatch/internal/domain/job"
	"skillmatch/internal/pkg/logger"

	"go.uber.org/zap"
)

type SuggestParams struct {
	ResumeFile *Upload
	ResumeText string
}

type SuggestResult struct {
	ResumeText  string
	Suggestions []job.Suggestion
}

type JobRecommendationUsecase interface {
	SuggestJobs(ctx context.Context, params SuggestParams) (SuggestResult, error)
	ListJobs(ctx context.Context) []job.Entry
}

type JobRecommendation struct {
	catalog *job.Catalog
	docs    TextExtractor
	logger  *zap.Logger
}

func NewJobRecommendationUsecase(catalog *job.Catalog, docs TextExtractor, logger *zap.Logger) *JobRecommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobRecommendation{catalog: catalog, docs: docs, logger: logger}
}

// SuggestJobs ranks catalog jobs against a resume. When an uploaded file yields
// no text the pasted text is used instead; with no text at all the list is empty.
func (u *JobRecommendation) SuggestJobs(ctx context.Context, params SuggestParams) (SuggestResult, error) {
	var resumeText string
	if params.ResumeFile.present() {
		text, err := readUpload(ctx, u.docs, params.ResumeFile)
		if err != nil {
			u.logger.Warn("resume upload rejected", zap.String("filename", params.ResumeFile.Filename), zap.Error(err))
			return SuggestResult{}, err
		}
		resumeText = text
	}
	if strings.TrimSpace(resumeText) == "" {
		resumeText = params.ResumeText
	}
	if strings.TrimSpace(resumeText) == "" {
		return SuggestResult{Suggestions: []job.Suggestion{}}, nil
	}
	if u.catalog == nil {
		return SuggestResult{}, fmt.Errorf("%w: job catalog not loaded", ErrExtractionFailure)
	}

	suggestions := job.Suggest(u.catalog, resumeText)
	u.logger.Debug("jobs suggested",
		zap.String("resume_preview", logger.Truncate(resumeText, resumePreviewRunes)),
		zap.Int("count", len(suggestions)),
	)

	return SuggestResult{ResumeText: resumeText, Suggestions: suggestions}, nil
}

func (u *JobRecommendation) ListJobs(_ context.Context) []job.Entry {
	return u.catalog.Entries()
}
