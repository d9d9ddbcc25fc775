package matching

import (
	"sort"
	"strings"

	"skillmatch/internal/domain/skill"
)

// EligibilityThreshold is the minimum score, inclusive, for a candidate to be
// considered eligible for a job description.
const EligibilityThreshold = 70.0

type Result struct {
	Matched  skill.Set
	Missing  []string
	Score    float64
	Eligible bool
}

func Match(resumeSkills, jobSkills skill.Set) Result {
	matched := resumeSkills.Intersect(jobSkills)

	missing := make([]string, 0, len(jobSkills))
	for s := range jobSkills.Difference(resumeSkills) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		missing = append(missing, s)
	}
	sort.Strings(missing)

	score := Score(len(matched), len(jobSkills))

	return Result{
		Matched:  matched,
		Missing:  missing,
		Score:    score,
		Eligible: IsEligible(score),
	}
}

// Score is the percentage of required skills that were matched. A job with no
// required skills scores 0.
func Score(matched, required int) float64 {
	if required <= 0 {
		return 0
	}
	s := 100 * float64(matched) / float64(required)
	return clampFloat(s, 0, 100)
}

func IsEligible(score float64) bool {
	return score >= EligibilityThreshold
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
