package job

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"skillmatch/internal/domain/skill"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var ErrDuplicateJob = errors.New("duplicate job in catalog")

// Entry is one job of the catalog: the skills it requires and the ordered
// learning steps towards it.
type Entry struct {
	Name    string
	Skills  skill.Set
	Roadmap []string
}

// Catalog is the immutable job table. It is built once at startup and shared
// read-only by every request.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

type catalogFile struct {
	Jobs []entryFile `yaml:"jobs" validate:"required,min=1,dive"`
}

type entryFile struct {
	Name    string   `yaml:"name" validate:"required"`
	Skills  []string `yaml:"skills"`
	Roadmap []string `yaml:"roadmap" validate:"dive,required"`
}

func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := skill.Normalize(e.Name)
		if key == "" {
			return nil, fmt.Errorf("job catalog: empty job name")
		}
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateJob, key)
		}

		skills := e.Skills.Clone()
		steps := make([]string, len(e.Roadmap))
		copy(steps, e.Roadmap)

		c.index[key] = len(c.entries)
		c.entries = append(c.entries, Entry{Name: key, Skills: skills, Roadmap: steps})
	}
	return c, nil
}

// Parse reads a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("job catalog: parse: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("job catalog: invalid: %w", err)
	}

	entries := make([]Entry, 0, len(f.Jobs))
	for _, j := range f.Jobs {
		entries = append(entries, Entry{
			Name:    j.Name,
			Skills:  skill.NewSet(j.Skills...),
			Roadmap: j.Roadmap,
		})
	}
	return NewCatalog(entries)
}

// Load reads the catalog at path, or the embedded default catalog when path is
// empty.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Parse(defaultCatalogYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the catalog in declaration order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		steps := make([]string, len(e.Roadmap))
		copy(steps, e.Roadmap)
		out = append(out, Entry{Name: e.Name, Skills: e.Skills.Clone(), Roadmap: steps})
	}
	return out
}

// Lookup finds a job by its lowercased name. The name is not trimmed.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) RequiredSkills(name string) (skill.Set, bool) {
	e, ok := c.Lookup(name)
	if !ok || e.Skills.Len() == 0 {
		return nil, false
	}
	return e.Skills.Clone(), true
}

// Roadmap returns the learning steps for a job. Jobs without steps report a
// miss so callers fall back to a synthesized roadmap.
func (c *Catalog) Roadmap(name string) ([]string, bool) {
	e, ok := c.Lookup(name)
	if !ok || len(e.Roadmap) == 0 {
		return nil, false
	}
	out := make([]string, len(e.Roadmap))
	copy(out, e.Roadmap)
	return out, true
}
