package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/betterleaks/rgrep/config"
	"github.com/betterleaks/rgrep/logging"
	"github.com/betterleaks/rgrep/version"
	"github.com/spf13/cobra"
)

const configDescription = `config file path
order of precedence:
1. --config/-c
2. env var RGREP_CONFIG
3. env var RGREP_CONFIG_TOML with the file content
4. ./.rgrep.toml
If none of the four options are used, then rgrep will use the default config`

const (
	exitUsage       = 2
	exitUnknownFlag = 126
)

// usageError marks problems with the command line itself.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// exitError carries a requested exit status that is not a failure.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rgrep [flags] PATTERN [FILE]",
		Short: "rgrep searches for a pattern in a file or stream",
		Long: `rgrep prints every line of FILE that contains PATTERN, with the first
occurrence on each line highlighted. PATTERN is a plain string, not a regular
expression. With no FILE, or when FILE is -, standard input is read.`,
		Example: `  rgrep World notes.txt
  rgrep -n -i error app.log
  journalctl | rgrep -i timeout`,
		Version:       version.Version,
		Args:          patternArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGrep,
	}

	rootCmd.Flags().BoolP("line-number", "n", false, "prefix each matching line with its 1-based line number")
	rootCmd.Flags().BoolP("ignore-case", "i", false, "ignore case when matching")
	rootCmd.Flags().StringP("config", "c", "", configDescription)
	rootCmd.Flags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.Flags().String("log-file", "", "write logs to this file, rotated by size, instead of stderr")
	rootCmd.Flags().StringP("report-path", "r", "", "report file (use \"-\" for stdout)")
	rootCmd.Flags().StringP("report-format", "f", "", "report format (json, csv), inferred from the report path when empty")
	rootCmd.Flags().Int("exit-code", 0, "exit code when no line matched")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

func patternArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	if args[0] == "" {
		return &usageError{err: errors.New("pattern must not be empty")}
	}
	return nil
}

func Execute() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and maps its outcome to a process exit code.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var (
		ee *exitError
		ue *usageError
	)
	switch {
	case errors.As(err, &ee):
		return ee.code
	case strings.Contains(err.Error(), "unknown flag") ||
		strings.Contains(err.Error(), "unknown shorthand flag"):
		// exit code 126: Command invoked cannot execute
		logging.Error().Msg(err.Error())
		return exitUnknownFlag
	case errors.As(err, &ue):
		logging.Error().Msg(err.Error())
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return exitUsage
	default:
		logging.Error().Msg(err.Error())
		return 1
	}
}

// initLog applies the log settings. Flags that were set override the config.
func initLog(cmd *cobra.Command, cfg config.Config) (io.Closer, error) {
	ll := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		ll = mustGetStringFlag(cmd, "log-level")
	}
	level, err := config.ParseLevel(ll)
	if err != nil {
		return nil, &usageError{err: err}
	}

	logFile := cfg.Log.File
	if cmd.Flags().Changed("log-file") {
		logFile = mustGetStringFlag(cmd, "log-file")
	}

	return logging.Setup(logging.Options{
		Level:      level,
		File:       logFile,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}), nil
}

func FormatDuration(d time.Duration) string {
	scale := 100 * time.Second
	// look for the max scale that is smaller than d
	for scale > d {
		scale = scale / 10
	}
	return d.Round(scale / 100).String()
}

// boolFlag returns the flag value when it was set, otherwise fallback.
func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	return mustGetBoolFlag(cmd, name)
}

// stringFlag returns the flag value when it was set, otherwise fallback.
func stringFlag(cmd *cobra.Command, name string, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	return mustGetStringFlag(cmd, name)
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetIntFlag(cmd *cobra.Command, name string) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}
