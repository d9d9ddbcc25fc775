package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"skillmatch/internal/domain/skill"
)

type stubDocs struct {
	text  string
	err   error
	calls atomic.Int32
}

func (s *stubDocs) Supports(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

func (s *stubDocs) Extract(_ context.Context, _ string, r io.Reader) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	if s.text != "" {
		return s.text, nil
	}
	b, err := io.ReadAll(r)
	return string(b), err
}

// wordExtractor treats every whitespace separated word as a skill.
type wordExtractor struct {
	calls atomic.Int32
	fail  map[string]error
}

func (w *wordExtractor) Extract(_ context.Context, text string) (skill.Set, error) {
	w.calls.Add(1)
	if err, ok := w.fail[text]; ok {
		return nil, err
	}
	return skill.NewSet(strings.Fields(text)...), nil
}

type memoryCache struct {
	mu     sync.Mutex
	data   map[string]skill.Set
	getErr error
	setErr error
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]skill.Set{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return false, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*(out.(*skill.Set)) = v.Clone()
	return true, nil
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value.(skill.Set).Clone()
	return nil
}
