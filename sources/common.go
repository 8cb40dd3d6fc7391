package sources

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/betterleaks/rgrep"
	"github.com/betterleaks/rgrep/logging"
	"github.com/betterleaks/rgrep/sources/file"
)

// StdinPath selects standard input when passed as the file argument.
const StdinPath = "-"

var errIsDirectory = errors.New("is a directory")

// SourceAcquisitionError is returned when the named file cannot be used as a
// source. Scanning never starts after it.
type SourceAcquisitionError struct {
	Path string
	Err  error
}

func (e *SourceAcquisitionError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("file '%s' does not exist", e.Path)
	}
	return fmt.Sprintf("error opening file '%s': %v", e.Path, e.Err)
}

func (e *SourceAcquisitionError) Unwrap() error {
	return e.Err
}

// Open acquires the source for path. An empty path or "-" reads from stdin.
// The caller owns the returned source and must Close it.
func Open(path string, stdin io.Reader) (*file.File, error) {
	if path == "" || path == StdinPath {
		logging.Debug().Msg("reading from stdin")
		return &file.File{
			Content: stdin,
			Path:    "stdin",
			Source:  rgrep.SourceStdin,
		}, nil
	}

	logger := logging.With().Str("path", path).Logger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, &SourceAcquisitionError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceAcquisitionError{Path: path, Err: errIsDirectory}
	}

	// #nosec G304 - the path is the user's explicit argument
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceAcquisitionError{Path: path, Err: err}
	}

	logger.Debug().Int64("size", info.Size()).Msg("opened file")
	return &file.File{
		Content: f,
		Path:    path,
		Source:  rgrep.SourceFile,
	}, nil
}
