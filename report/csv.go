package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/betterleaks/rgrep"
)

type CsvReporter struct {
}

var _ rgrep.Reporter = (*CsvReporter)(nil)

func (r *CsvReporter) Write(w io.Writer, findings []rgrep.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	var (
		cw  = csv.NewWriter(w)
		err error
	)
	columns := []string{"Source",
		"Path",
		"Line",
		"StartColumn",
		"EndColumn",
		"Match",
		"Text",
		"Fingerprint",
	}

	if err = cw.Write(columns); err != nil {
		return err
	}
	for _, f := range findings {
		row := []string{f.Source,
			f.Path,
			strconv.Itoa(f.LineNumber),
			strconv.Itoa(f.Column),
			strconv.Itoa(f.EndColumn()),
			f.Matched,
			f.Line(),
			f.Fingerprint,
		}

		if err = cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
