package report

import (
	"encoding/json"
	"io"

	"github.com/betterleaks/rgrep"
)

type JsonReporter struct {
}

var _ rgrep.Reporter = (*JsonReporter)(nil)

func (t *JsonReporter) Write(w io.Writer, findings []rgrep.Finding) error {
	if findings == nil {
		findings = []rgrep.Finding{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")
	return encoder.Encode(findings)
}
