package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Warn().Int("line", 3).Msg("error reading line")

	out := buf.String()
	assert.Contains(t, out, "error reading line")
	assert.Contains(t, out, "line=3")
	assert.NotContains(t, out, "\x1b[", "buffers are not terminals, no escape codes expected")
}

func TestSetup_File(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	path := filepath.Join(t.TempDir(), "logs", "rgrep.log")
	closer := Setup(Options{
		Level:      zerolog.DebugLevel,
		File:       path,
		MaxSize:    1,
		MaxBackups: 1,
	})

	Debug().Str("path", "notes.txt").Msg("scanning")
	Trace().Msg("dropped below level")
	require.NoError(t, closer.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"message":"scanning"`)
	assert.Contains(t, string(got), `"path":"notes.txt"`)
	assert.NotContains(t, string(got), "dropped below level")
}

func TestSetup_Stderr(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	closer := Setup(Options{Level: zerolog.ErrorLevel})
	assert.NoError(t, closer.Close())
	assert.Equal(t, zerolog.ErrorLevel, Logger.GetLevel())
}
