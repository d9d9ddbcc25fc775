package usecase

import (
	"context"
	"fmt"
	"strings"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/skill"
	"skillmatch/internal/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// resumePreviewRunes bounds how much resume text reaches debug logs.
const resumePreviewRunes = 80

type AnalyzeParams struct {
	ResumeFile         *Upload
	ResumeText         string
	JobDescriptionText string
}

type AnalyzeResult struct {
	ResumeText   string
	ResumeSkills skill.Set
	JobSkills    skill.Set
	Match        matching.Result
}

type MatchingUsecase interface {
	Analyze(ctx context.Context, params AnalyzeParams) (AnalyzeResult, error)
}

type Matching struct {
	docs   TextExtractor
	skills skill.Extractor
	logger *zap.Logger
}

func NewMatchingUsecase(docs TextExtractor, skills skill.Extractor, logger *zap.Logger) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{docs: docs, skills: skills, logger: logger}
}

// Analyze compares the skills of a resume with those of a job description. An
// uploaded file takes precedence over pasted resume text.
func (u *Matching) Analyze(ctx context.Context, params AnalyzeParams) (AnalyzeResult, error) {
	resumeText := params.ResumeText
	if params.ResumeFile.present() {
		text, err := readUpload(ctx, u.docs, params.ResumeFile)
		if err != nil {
			u.logger.Warn("resume upload rejected", zap.String("filename", params.ResumeFile.Filename), zap.Error(err))
			return AnalyzeResult{}, err
		}
		resumeText = text
	}

	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(params.JobDescriptionText) == "" {
		return AnalyzeResult{}, fmt.Errorf("%w: both resume and job description required", ErrMissingRequiredInput)
	}

	var resumeSkills, jobSkills skill.Set
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.skills.Extract(gctx, resumeText)
		if err != nil {
			return fmt.Errorf("resume skills: %w", err)
		}
		resumeSkills = s
		return nil
	})
	g.Go(func() error {
		s, err := u.skills.Extract(gctx, params.JobDescriptionText)
		if err != nil {
			return fmt.Errorf("job description skills: %w", err)
		}
		jobSkills = s
		return nil
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("skill extraction failed", zap.Error(err))
		return AnalyzeResult{}, fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}

	res := matching.Match(resumeSkills, jobSkills)
	u.logger.Debug("resume analyzed",
		zap.String("resume_preview", logger.Truncate(resumeText, resumePreviewRunes)),
		zap.Int("resume_skills", resumeSkills.Len()),
		zap.Int("job_skills", jobSkills.Len()),
		zap.Float64("score", res.Score),
		zap.Bool("eligible", res.Eligible),
	)

	return AnalyzeResult{
		ResumeText:   resumeText,
		ResumeSkills: resumeSkills,
		JobSkills:    jobSkills,
		Match:        res,
	}, nil
}

// readUpload checks the extension before touching the content so unsupported
// files never reach a parser.
func readUpload(ctx context.Context, docs TextExtractor, up *Upload) (string, error) {
	if docs == nil || !docs.Supports(up.Filename) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, up.Filename)
	}
	text, err := docs.Extract(ctx, up.Filename, up.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailure, err)
	}
	return text, nil
}
