package file

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/betterleaks/rgrep"
)

// File is a source that yields the lines of a file or stream
type File struct {
	// Content provides a reader to the file's content
	Content io.Reader
	// Path is the resource path, "stdin" for standard input
	Path string
	// Source is the source type, rgrep.SourceFile or rgrep.SourceStdin
	Source string
}

// Lines yields the lines of the content in order. A line that is not valid
// UTF-8 is yielded as a *rgrep.LineReadError and iteration moves on to the
// next line. A read error from Content cannot be skipped past, so it is
// yielded for the current position and iteration ends.
func (s *File) Lines(yield rgrep.LinesFunc) error {
	r := bufio.NewReader(s.Content)
	for i := 0; ; i++ {
		text, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return yield(rgrep.Line{Index: i}, &rgrep.LineReadError{Index: i, Err: err})
		}
		if text == "" {
			// EOF right after a terminator, or empty content
			return nil
		}

		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")

		var yieldErr error
		if utf8.ValidString(text) {
			yieldErr = yield(rgrep.Line{Index: i, Text: text}, nil)
		} else {
			yieldErr = yield(rgrep.Line{Index: i}, &rgrep.LineReadError{Index: i, Err: rgrep.ErrInvalidUTF8})
		}
		if yieldErr != nil {
			return yieldErr
		}

		if err != nil {
			// last line had no terminator
			return nil
		}
	}
}

// Close closes the underlying file. Standard input is left open.
func (s *File) Close() error {
	if s.Source != rgrep.SourceFile {
		return nil
	}
	if c, ok := s.Content.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ResourceContext returns the source type and path of the lines.
func (s *File) ResourceContext() (string, string) {
	return s.Source, s.Path
}
