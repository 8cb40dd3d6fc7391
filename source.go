package rgrep

import "io"

// LinesFunc is called by a Source for every line outcome, in order. A non-nil
// err means the line at line.Index could not be read; line.Text is empty in
// that case. Returning an error stops the iteration.
type LinesFunc func(line Line, err error) error

// Source is a forward-only, non-restartable sequence of lines.
type Source interface {
	Lines(yield LinesFunc) error
}

// Reporter writes findings in a specific report format.
type Reporter interface {
	Write(w io.Writer, findings []Finding) error
}

// Resource is implemented by sources that know where their lines come from.
type Resource interface {
	// ResourceContext returns the source type and path.
	ResourceContext() (source string, path string)
}
