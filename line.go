package rgrep

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is reported for lines that cannot be decoded as text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Line represents a single line of a source with its position
type Line struct {
	// Index is the 0-based position of the line within the source
	Index int

	// Text is the content of the line without its terminator
	Text string
}

// Number returns the 1-based line number used for display.
func (l Line) Number() int {
	return l.Index + 1
}

// LineReadError is yielded by a source when the line at Index could not be
// read or decoded. It never stops a scan.
type LineReadError struct {
	Index int
	Err   error
}

func (e *LineReadError) Error() string {
	return fmt.Sprintf("error reading line %d: %v", e.Index, e.Err)
}

func (e *LineReadError) Unwrap() error {
	return e.Err
}
