package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename: filename,
	}
}

var (
	logger Logger
	once   sync.Once
)

// Options represents options for logger.
type Options struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
}

// New returns a process wide instance of logger.
func New(opts Options) *Logger {
	once.Do(func() {
		// By default create console writer
		writers := []io.Writer{os.Stdout}

		if opts.PrettyLogOutput {
			writers[0] = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Stamp}
		}

		if opts.LogFile != "" {
			writers = append(writers, newFileWriter(opts.LogFile))
		}

		if opts.LogLevel != "" {
			level, err := zerolog.ParseLevel(opts.LogLevel)
			if err != nil {
				panic(err)
			}

			zerolog.SetGlobalLevel(level)
		}

		logger = *NewWithWriter(io.MultiWriter(writers...))
	})

	return &logger
}

// NewWithWriter returns a logger that writes JSON lines into w.
// It does not touch the process wide instance, so it fits tests and embedded usage.
func NewWithWriter(w io.Writer) *Logger {
	zeroLogger := zerolog.New(w).With().Caller().Timestamp().Logger()

	return &Logger{&zeroLogger}
}

// Named returns a child logger with the component name attached.
func (l *Logger) Named(name string) *Logger {
	child := l.With().Str("name", name).Logger()

	return &Logger{&child}
}
