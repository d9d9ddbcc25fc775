package job

import (
	"regexp"
	"sort"
	"strings"

	"skillmatch/internal/domain/skill"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

type Suggestion struct {
	Title         string
	Score         float64
	MatchedSkills []string
}

// Tokenize lowercases text and returns its whole-word tokens as a set.
func Tokenize(text string) skill.Set {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	return skill.NewSet(words...)
}

// Suggest scores every catalog job by the fraction of its required skills that
// appear as words in resumeText. Jobs scoring zero are dropped; the rest are
// ranked by score, ties keeping catalog order.
func Suggest(c *Catalog, resumeText string) []Suggestion {
	if c == nil {
		return nil
	}
	words := Tokenize(resumeText)

	out := make([]Suggestion, 0, c.Len())
	for _, e := range c.entries {
		if e.Skills.Len() == 0 {
			continue
		}
		matched := e.Skills.Intersect(words)
		if matched.Len() == 0 {
			continue
		}
		out = append(out, Suggestion{
			Title:         Title(e.Name),
			Score:         float64(matched.Len()) / float64(e.Skills.Len()),
			MatchedSkills: matched.Sorted(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Title renders a catalog key for display, e.g. "devops engineer" becomes
// "Devops Engineer".
func Title(name string) string {
	return cases.Title(language.English).String(name)
}
