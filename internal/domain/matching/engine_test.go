package matching

import (
	"testing"

	"skillmatch/internal/domain/skill"

	"github.com/stretchr/testify/assert"
)

func TestMatch_PartialOverlap(t *testing.T) {
	resume := skill.NewSet("python", "sql", "communication")
	job := skill.NewSet("python", "sql", "docker", "kubernetes")

	res := Match(resume, job)

	assert.Equal(t, []string{"python", "sql"}, res.Matched.Sorted())
	assert.Equal(t, []string{"docker", "kubernetes"}, res.Missing)
	assert.InDelta(t, 50.0, res.Score, 1e-9)
	assert.False(t, res.Eligible)
	assert.True(t, res.Matched.SubsetOf(resume))
	assert.True(t, res.Matched.SubsetOf(job))
}

func TestMatch_FullOverlapIsEligible(t *testing.T) {
	job := skill.NewSet("go", "grpc")
	res := Match(skill.NewSet("go", "grpc", "redis"), job)

	assert.Equal(t, 100.0, res.Score)
	assert.True(t, res.Eligible)
	assert.Empty(t, res.Missing)
}

func TestMatch_EmptyJobScoresZero(t *testing.T) {
	res := Match(skill.NewSet("go"), skill.NewSet())

	assert.Equal(t, 0.0, res.Score)
	assert.False(t, res.Eligible)
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Missing)
}

func TestMatch_EmptyResume(t *testing.T) {
	res := Match(skill.NewSet(), skill.NewSet("go", "sql"))

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, []string{"go", "sql"}, res.Missing)
}

func TestScore_Bounds(t *testing.T) {
	cases := []struct {
		matched, required int
		want              float64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 4, 0},
		{7, 10, 70},
		{5, 4, 100},
	}
	for _, c := range cases {
		got := Score(c.matched, c.required)
		assert.InDelta(t, c.want, got, 1e-9, "Score(%d, %d)", c.matched, c.required)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestIsEligible_Threshold(t *testing.T) {
	assert.True(t, IsEligible(70))
	assert.True(t, IsEligible(100))
	assert.False(t, IsEligible(69.999))
	assert.False(t, IsEligible(0))
}
