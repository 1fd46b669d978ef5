package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Debug   bool
	LogFile string
	NoColor bool
	// Console defaults to os.Stderr.
	Console io.Writer
}

// Logger writes structured entries to the console and, when configured, to a
// rotating log file.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// newLogger creates a logger writing JSON lines to w.
func newLogger(w io.Writer, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// NewFromConfig creates a logger with console output and, if cfg.LogFile is
// set, a rotated file that always records debug entries. A log file that
// cannot be created is reported as a warning and the logger continues on the
// console only.
func NewFromConfig(cfg Config) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	consoleLevel := zerolog.InfoLevel
	if cfg.Debug {
		consoleLevel = zerolog.DebugLevel
	}

	out := cfg.Console
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
	}
	writers := []io.Writer{levelFilter{w: console, min: consoleLevel}}

	l := &Logger{}
	var fileErr error
	if cfg.LogFile != "" {
		if fileErr = checkWritable(cfg.LogFile); fileErr == nil {
			file := &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
			writers = append(writers, file)
			l.closer = file
		}
	}

	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	if fileErr != nil {
		l.zl.Warn().Err(fileErr).Str("file", cfg.LogFile).Msg("Log file unavailable, logging to console only")
	}
	return l
}

func checkWritable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

func (l *Logger) Info(msg string, data any) {
	withData(l.zl.Info(), data).Msg(msg)
}

func (l *Logger) Error(msg string, data any) {
	withData(l.zl.Error(), data).Msg(msg)
}

func (l *Logger) Debug(msg string, data any) {
	withData(l.zl.Debug(), data).Msg(msg)
}

// Trace records an installer step diagnostic line.
func (l *Logger) Trace(msg string) {
	l.zl.Debug().Msg(msg)
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func withData(e *zerolog.Event, data any) *zerolog.Event {
	switch v := data.(type) {
	case nil:
		return e
	case error:
		return e.Stack().Err(v)
	case map[string]string:
		for k, s := range v {
			e = e.Str(k, s)
		}
		return e
	default:
		return e.Interface("data", v)
	}
}

// levelFilter drops entries below min before they reach w.
type levelFilter struct {
	w   io.Writer
	min zerolog.Level
}

func (f levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f levelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < f.min {
		return len(p), nil
	}
	return f.w.Write(p)
}
