package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/betterleaks/rgrep"
	"github.com/betterleaks/rgrep/config"
	"github.com/betterleaks/rgrep/logging"
	"github.com/betterleaks/rgrep/report"
	"github.com/betterleaks/rgrep/scan"
	"github.com/betterleaks/rgrep/sources"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func runGrep(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load(mustGetStringFlag(cmd, "config"), ".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closer, err := initLog(cmd, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := scan.Options{
		Pattern:         args[0],
		ShowLineNumbers: boolFlag(cmd, "line-number", cfg.LineNumbers),
		IgnoreCase:      boolFlag(cmd, "ignore-case", cfg.IgnoreCase),
	}

	var path string
	if len(args) > 1 {
		path = args[1]
	}
	src, err := sources.Open(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	printer := &scan.Printer{
		Out: out,
		Highlighter: scan.NewStyleHighlighter(
			lipgloss.NewRenderer(out),
			cfg.Highlight.Foreground,
			cfg.Highlight.Bold,
		),
	}
	scanner, err := scan.NewScanner(opts, printer)
	if err != nil {
		return &usageError{err: err}
	}

	var findings []rgrep.Finding
	scanner.ScanFunc(src, func(f rgrep.Finding) {
		findings = append(findings, f)
	})

	reportPath := stringFlag(cmd, "report-path", cfg.Report.Path)
	if reportPath != "" {
		format := report.FormatFor(stringFlag(cmd, "report-format", cfg.Report.Format), reportPath)
		if err := writeReport(out, reportPath, format, findings); err != nil {
			return err
		}
	}

	logging.Debug().
		Str("path", src.Path).
		Int("findings", len(findings)).
		Msgf("scan completed in %s", FormatDuration(time.Since(start)))

	if code := mustGetIntFlag(cmd, "exit-code"); len(findings) == 0 && code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// writeReport writes findings to reportPath, or to stdout when it is "-".
func writeReport(stdout io.Writer, reportPath, format string, findings []rgrep.Finding) error {
	reporter, err := report.New(format)
	if err != nil {
		return &usageError{err: err}
	}

	if reportPath == sources.StdinPath {
		return reporter.Write(stdout, findings)
	}

	// #nosec G304 - the path is the user's explicit argument
	f, err := os.Create(filepath.Clean(reportPath))
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}
	defer f.Close()

	if err := reporter.Write(f, findings); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	logging.Debug().Str("path", reportPath).Str("format", format).Msg("report written")
	return nil
}
