package skill

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_NormalizesAndDropsEmpty(t *testing.T) {
	s := NewSet("  Go ", "go", "", "   ", "Machine Learning")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("GO"))
	assert.True(t, s.Has("machine learning"))
	assert.False(t, s.Has(""))
}

func TestSet_Algebra(t *testing.T) {
	a := NewSet("python", "sql", "docker")
	b := NewSet("python", "docker", "kubernetes")

	inter := a.Intersect(b)
	assert.Equal(t, []string{"docker", "python"}, inter.Sorted())
	assert.True(t, inter.SubsetOf(a))
	assert.True(t, inter.SubsetOf(b))

	assert.Equal(t, []string{"kubernetes"}, b.Difference(a).Sorted())
	assert.Equal(t, []string{"sql"}, a.Difference(b).Sorted())

	assert.True(t, a.Equal(NewSet("SQL", "Python", "docker")))
	assert.False(t, a.Equal(b))
}

func TestSet_CloneIsIndependent(t *testing.T) {
	a := NewSet("git")
	c := a.Clone()
	c.Add("rust")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, c.Len())
}

func TestSet_JSON(t *testing.T) {
	b, err := json.Marshal(NewSet("zig", "ada", "c"))
	require.NoError(t, err)
	assert.JSONEq(t, `["ada","c","zig"]`, string(b))

	var s Set
	require.NoError(t, json.Unmarshal([]byte(`[" Rust ","rust",""]`), &s))
	assert.Equal(t, []string{"rust"}, s.Sorted())
}
