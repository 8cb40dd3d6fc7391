package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process wide logger. Diagnostics never go to stdout, which
// carries the matched lines.
var Logger zerolog.Logger

func init() {
	Logger = New(os.Stderr).Level(zerolog.InfoLevel)
}

// New returns a console logger writing to w. Colors are only enabled when w
// is a terminal.
func New(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// Options configures where logs are written.
type Options struct {
	Level zerolog.Level

	// File, when set, receives JSON logs instead of stderr. The file is
	// rotated once it reaches MaxSize megabytes.
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Setup replaces Logger according to opts. The returned closer releases the
// log file, if any.
func Setup(opts Options) io.Closer {
	if opts.File == "" {
		Logger = New(os.Stderr).Level(opts.Level)
		return nopCloser{}
	}

	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}
	Logger = zerolog.New(lj).With().Timestamp().Logger().Level(opts.Level)
	return lj
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func With() zerolog.Context {
	return Logger.With()
}

func Trace() *zerolog.Event {
	return Logger.Trace()
}

func Debug() *zerolog.Event {
	return Logger.Debug()
}

func Info() *zerolog.Event {
	return Logger.Info()
}

func Warn() *zerolog.Event {
	return Logger.Warn()
}

func Error() *zerolog.Event {
	return Logger.Error()
}

func Fatal() *zerolog.Event {
	return Logger.Fatal()
}
