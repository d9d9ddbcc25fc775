package skill

import (
	"encoding/json"
	"sort"
	"strings"
)

// Set is a collection of normalized skill phrases. Keys are lowercase and
// trimmed; the empty phrase is never stored.
type Set map[string]struct{}

func NewSet(phrases ...string) Set {
	s := make(Set, len(phrases))
	for _, p := range phrases {
		s.Add(p)
	}
	return s
}

func Normalize(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}

// Add normalizes phrase and stores it. It reports whether the phrase was kept.
func (s Set) Add(phrase string) bool {
	p := Normalize(phrase)
	if p == "" {
		return false
	}
	s[p] = struct{}{}
	return true
}

func (s Set) Has(phrase string) bool {
	_, ok := s[Normalize(phrase)]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Intersect(other Set) Set {
	out := make(Set)
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for k := range small {
		if _, ok := large[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// Difference returns the phrases of s that are absent from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for k := range s {
		if _, ok := other[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s Set) SubsetOf(other Set) bool {
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var phrases []string
	if err := json.Unmarshal(b, &phrases); err != nil {
		return err
	}
	*s = NewSet(phrases...)
	return nil
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
