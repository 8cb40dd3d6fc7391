package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var validReportFormats = map[string]struct{}{
	"json": {},
	"csv":  {},
}

// Validate checks the values a config file can get wrong. All problems are
// reported together.
func (c Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, errors.New("log: max_size, max_backups and max_age must not be negative"))
	}
	if strings.TrimSpace(c.Highlight.Foreground) == "" {
		errs = append(errs, errors.New("highlight: foreground is required"))
	}
	if f := c.Report.Format; f != "" {
		if _, ok := validReportFormats[strings.ToLower(f)]; !ok {
			errs = append(errs, fmt.Errorf("report: unsupported format %q", f))
		}
	}

	return errors.Join(errs...)
}

// ParseLevel maps a log level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "err", "error":
		return zerolog.ErrorLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("log: unknown log level %q", level)
	}
}
