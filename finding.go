package rgrep

import (
	"encoding/json"
)

// Source types recorded on findings.
const (
	SourceFile  = "file"
	SourceStdin = "stdin"
)

type Finding struct {
	// Source is the source type, "file" or "stdin"
	Source string
	// Path of the file, "stdin" when reading standard input
	Path string

	// Location Information
	// LineNumber is 1-based, Column is the 1-based byte column where the
	// match starts
	LineNumber int
	Column     int

	// The line split around the first match. Before+Matched+After is the
	// original line text.
	Before  string
	Matched string
	After   string

	// unique identifier
	Fingerprint string
}

// NewFinding splits the text of line around m.
func NewFinding(source, path string, line Line, m Match) Finding {
	return Finding{
		Source:     source,
		Path:       path,
		LineNumber: line.Number(),
		Column:     m.Start + 1,
		Before:     line.Text[:m.Start],
		Matched:    line.Text[m.Start:m.End],
		After:      line.Text[m.End:],
	}
}

// Line returns the full, undecorated line the finding was taken from.
func (f Finding) Line() string {
	return f.Before + f.Matched + f.After
}

// EndColumn returns the 1-based byte column of the last matched byte.
func (f Finding) EndColumn() int {
	return f.Column + len(f.Matched) - 1
}

// findingJSON is the JSON representation of a Finding.
type findingJSON struct {
	Source      string `json:"Source"`
	Path        string `json:"Path"`
	Line        int    `json:"Line"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
	Match       string `json:"Match"`
	Text        string `json:"Text"`
	Fingerprint string `json:"Fingerprint"`
}

func (f Finding) MarshalJSON() ([]byte, error) {
	j := findingJSON{
		Source:      f.Source,
		Path:        f.Path,
		Line:        f.LineNumber,
		StartColumn: f.Column,
		EndColumn:   f.EndColumn(),
		Match:       f.Matched,
		Text:        f.Line(),
		Fingerprint: f.Fingerprint,
	}
	return json.Marshal(j)
}
