package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/betterleaks/rgrep/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	EnvConfigPath = "RGREP_CONFIG"
	EnvConfigTOML = "RGREP_CONFIG_TOML"
	FileName      = ".rgrep.toml"
)

//go:embed rgrep.toml
var DefaultConfig string

type Config struct {
	LineNumbers bool `koanf:"line_numbers"`
	IgnoreCase  bool `koanf:"ignore_case"`

	Highlight Highlight `koanf:"highlight"`
	Log       Log       `koanf:"log"`
	Report    Report    `koanf:"report"`

	// Path is where the config was loaded from, empty for built-in or env content
	Path string `koanf:"-"`
}

type Highlight struct {
	Foreground string `koanf:"foreground"`
	Bold       bool   `koanf:"bold"`
}

type Log struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

type Report struct {
	Path   string `koanf:"path"`
	Format string `koanf:"format"`
}

// Load resolves the configuration. Order of precedence:
//  1. path (--config/-c)
//  2. env var RGREP_CONFIG
//  3. env var RGREP_CONFIG_TOML with the file content
//  4. (dir)/.rgrep.toml
//
// If none of these are present the default config is used. Values missing
// from a user config fall back to the defaults.
func Load(path, dir string) (Config, error) {
	if path != "" {
		logging.Debug().Msgf("using rgrep config %s from `--config`", path)
		return loadFile(path)
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		logging.Debug().Msgf("using rgrep config from %s env var: %s", EnvConfigPath, envPath)
		return loadFile(envPath)
	}
	if content := os.Getenv(EnvConfigTOML); content != "" {
		logging.Debug().Msgf("using rgrep config from %s env var content", EnvConfigTOML)
		return Parse([]byte(content))
	}

	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		logging.Debug().Msgf("using existing rgrep config %s", local)
		return loadFile(local)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("unable to stat %s: %w", local, err)
	}

	logging.Debug().Msg("no rgrep config found, using default config")
	return Parse(nil)
}

func loadFile(path string) (Config, error) {
	// #nosec G304 - the config path comes from the user or the working directory
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to load rgrep config: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse merges the TOML document b over the default config and validates the
// result.
func Parse(b []byte) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(DefaultConfig)), toml.Parser()); err != nil {
		return Config{}, fmt.Errorf("unable to load default config: %w", err)
	}
	if len(b) > 0 {
		if err := k.Load(rawbytes.Provider(b), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("unable to parse config: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
