package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	lg, err := New(true, false)
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.DebugLevel))

	lg, err = New(false, true)
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.DebugLevel))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("  abc ", 5))
	assert.Equal(t, "héll...", Truncate("héllo world", 4))
	assert.Equal(t, "", Truncate("abc", 0))
}
