package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"skillmatch/internal/domain/job"
	"skillmatch/internal/infrastructure/document"
	"skillmatch/internal/nlp"
	"skillmatch/internal/pkg/logger"
	"skillmatch/internal/usecase"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const maxResumeBytes = 10 << 20

type deps struct {
	logger  *zap.Logger
	catalog *job.Catalog
	docs    *document.Extractor
}

func newDeps() (*deps, error) {
	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	catalog, err := job.Load(viper.GetString("catalog"))
	if err != nil {
		return nil, err
	}
	lg.Debug("job catalog loaded", zap.Int("jobs", catalog.Len()))

	return &deps{logger: lg, catalog: catalog, docs: document.NewExtractor(maxResumeBytes)}, nil
}

func (d *deps) matching() usecase.MatchingUsecase {
	return usecase.NewMatchingUsecase(d.docs, nlp.NewChunkExtractor(nil), d.logger)
}

func (d *deps) jobRecommendation() usecase.JobRecommendationUsecase {
	return usecase.NewJobRecommendationUsecase(d.catalog, d.docs, d.logger)
}

func (d *deps) roadmap() usecase.RoadmapUsecase {
	return usecase.NewRoadmapUsecase(d.catalog, d.logger)
}

// openUpload opens a resume file. An empty path yields no upload.
func openUpload(path string) (*usecase.Upload, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return &usecase.Upload{Filename: filepath.Base(path), Content: f}, func() { _ = f.Close() }, nil
}

// textArg returns inline text, or the content of path when inline is empty.
func textArg(inline, path string) (string, error) {
	if inline != "" || path == "" {
		return inline, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
