package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure the caller's environment does not leak into Load.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvConfigTOML, "")
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.False(t, cfg.LineNumbers)
	assert.False(t, cfg.IgnoreCase)
	assert.Equal(t, Highlight{Foreground: "9", Bold: true}, cfg.Highlight)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAge)
	assert.Empty(t, cfg.Report.Format)
	assert.Empty(t, cfg.Path)
}

func TestParse_MergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
line_numbers = true

[highlight]
foreground = "#ff5f5f"

[log]
level = "debug"
`))
	require.NoError(t, err)

	assert.True(t, cfg.LineNumbers)
	assert.False(t, cfg.IgnoreCase)
	assert.Equal(t, "#ff5f5f", cfg.Highlight.Foreground)
	assert.True(t, cfg.Highlight.Bold, "unset keys keep their default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSize)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("line_numbers = ["))
	assert.ErrorContains(t, err, "unable to parse config")

	_, err = Parse([]byte("[log]\nlevel = \"chatty\""))
	assert.ErrorContains(t, err, `unknown log level "chatty"`)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, FileName, "ignore_case = true")
	flagPath := writeConfig(t, dir, "flag.toml", "line_numbers = true")
	envPath := writeConfig(t, dir, "env.toml", "[highlight]\nforeground = \"12\"")

	t.Run("flag wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigPath, envPath)
		cfg, err := Load(flagPath, dir)
		require.NoError(t, err)
		assert.True(t, cfg.LineNumbers)
		assert.False(t, cfg.IgnoreCase)
		assert.Equal(t, flagPath, cfg.Path)
	})

	t.Run("env path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigPath, envPath)
		t.Setenv(EnvConfigTOML, "line_numbers = true")
		cfg, err := Load("", dir)
		require.NoError(t, err)
		assert.Equal(t, "12", cfg.Highlight.Foreground)
		assert.False(t, cfg.LineNumbers)
		assert.Equal(t, envPath, cfg.Path)
	})

	t.Run("env content", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigTOML, "line_numbers = true")
		cfg, err := Load("", dir)
		require.NoError(t, err)
		assert.True(t, cfg.LineNumbers)
		assert.False(t, cfg.IgnoreCase)
		assert.Empty(t, cfg.Path)
	})

	t.Run("local file", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load("", dir)
		require.NoError(t, err)
		assert.True(t, cfg.IgnoreCase)
		assert.Equal(t, filepath.Join(dir, FileName), cfg.Path)
	})

	t.Run("default", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load("", t.TempDir())
		require.NoError(t, err)
		assert.False(t, cfg.IgnoreCase)
		assert.Empty(t, cfg.Path)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), ".")
	assert.ErrorContains(t, err, "unable to load rgrep config")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
