package logs

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *Logger
	once          sync.Once
)

// Logger wraps slog so call sites stay decoupled from handler setup.
type Logger struct {
	slogger *slog.Logger
}

// LogOption defines functional options for configuring the logger.
type LogOption func(*logConfig)

type logConfig struct {
	level      slog.Level
	output     io.Writer
	jsonFormat bool
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) LogOption {
	return func(c *logConfig) {
		c.level = level
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) LogOption {
	return func(c *logConfig) {
		c.output = w
	}
}

// WithTextFormat switches from the default JSON handler to the text handler.
func WithTextFormat() LogOption {
	return func(c *logConfig) {
		c.jsonFormat = false
	}
}

// New creates a configured logger. Defaults: info level, JSON to stdout.
func New(opts ...LogOption) *Logger {
	config := &logConfig{
		level:      slog.LevelInfo,
		output:     os.Stdout,
		jsonFormat: true,
	}

	for _, opt := range opts {
		opt(config)
	}

	handlerOptions := &slog.HandlerOptions{Level: config.level}

	var handler slog.Handler
	if config.jsonFormat {
		handler = slog.NewJSONHandler(config.output, handlerOptions)
	} else {
		handler = slog.NewTextHandler(config.output, handlerOptions)
	}

	return &Logger{slogger: slog.New(handler)}
}

// Default returns the default singleton logger.
func Default() *Logger {
	once.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// With returns a logger carrying the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slogger: l.slogger.With(args...)}
}

// Package-level shortcuts that use the default logger.

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

// With returns the default logger with the given attributes.
func With(args ...any) *Logger {
	return Default().With(args...)
}
