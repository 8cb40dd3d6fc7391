package scan

import (
	"github.com/betterleaks/rgrep"
	"github.com/betterleaks/rgrep/logging"
)

// Options are fixed for the duration of a scan.
type Options struct {
	Pattern         string
	ShowLineNumbers bool
	// IgnoreCase lowercases both the pattern and every line before searching
	IgnoreCase bool
}

type Scanner struct {
	Options

	matcher *Matcher
	printer *Printer
}

func NewScanner(opts Options, printer *Printer) (*Scanner, error) {
	matcher, err := NewMatcher(opts.Pattern, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		Options: opts,
		matcher: matcher,
		printer: printer,
	}, nil
}

// Scan prints every line of src that contains the pattern, in order. Lines
// that cannot be read are logged and skipped; they never end the scan.
func (s *Scanner) Scan(src rgrep.Source) {
	s.ScanFunc(src, nil)
}

// ScanFunc is Scan with a callback that receives each finding after it has
// been printed.
func (s *Scanner) ScanFunc(src rgrep.Source, fn func(rgrep.Finding)) {
	var source, path string
	if r, ok := src.(rgrep.Resource); ok {
		source, path = r.ResourceContext()
	}
	logger := logging.With().Str("path", path).Logger()

	err := src.Lines(func(line rgrep.Line, err error) error {
		if err != nil {
			// line.Index is the raw 0-based position, unlike printed line numbers
			logger.Error().Err(err).Int("line", line.Index).Msg("skipping line")
			return nil
		}

		m, ok := s.matcher.Find(line.Text)
		if !ok {
			return nil
		}

		finding := rgrep.NewFinding(source, path, line, m)
		rgrep.AddFingerprintToFinding(&finding)

		if err := s.printer.PrintFinding(finding, s.ShowLineNumbers); err != nil {
			logger.Debug().Err(err).Int("line", finding.LineNumber).Msg("could not write finding")
		}
		if fn != nil {
			fn(finding)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("scan stopped early")
	}
}
