package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/betterleaks/rgrep"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// New returns the reporter for format.
func New(format string) (rgrep.Reporter, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JsonReporter{}, nil
	case FormatCSV:
		return &CsvReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// FormatFor returns format when set, otherwise the format implied by the
// extension of path. JSON is the fallback.
func FormatFor(format, path string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}
