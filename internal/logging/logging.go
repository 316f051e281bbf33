// Package logging provides structured logging for the fba-cost CLI.
// Core packages never log; commands log through the helpers here.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fba-cost/core/engine"
)

// Logger is the process logger. It is a no-op until Initialize runs.
var Logger = zap.NewNop()

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level
	Level string `json:"level"`

	// Format is console or json
	Format string `json:"format"`

	// Output is stdout, stderr or a file path (appended)
	Output string `json:"output"`

	// Development adds stack traces to warnings and above
	Development bool `json:"development"`
}

// DefaultConfig logs info and above to stderr
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Initialize replaces the process logger
func Initialize(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}
	Sync()
	Logger = logger
	return nil
}

// InitializeDefault installs the default stderr logger
func InitializeDefault() {
	_ = Initialize(DefaultConfig())
}

// New builds a logger without installing it
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	sink, tty, err := openSink(cfg.Output)
	if err != nil {
		return nil, err
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(enc)
	} else {
		// Colors only when a person is reading
		if tty {
			enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			enc.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(enc)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}
	return zap.New(zapcore.NewCore(encoder, sink, level), opts...), nil
}

func openSink(output string) (zapcore.WriteSyncer, bool, error) {
	switch output {
	case "stdout":
		return zapcore.Lock(os.Stdout), isatty.IsTerminal(os.Stdout.Fd()), nil
	case "", "stderr":
		return zapcore.Lock(os.Stderr), isatty.IsTerminal(os.Stderr.Fd()), nil
	default:
		sink, _, err := zap.Open(output)
		if err != nil {
			return nil, false, err
		}
		return sink, false, nil
	}
}

// Sync flushes the logger
func Sync() {
	_ = Logger.Sync()
}

// QuoteFields identify a quote in log lines
func QuoteFields(q *engine.Quote) []zap.Field {
	return []zap.Field{
		zap.String("product", q.Name),
		zap.String("tier", q.SizeTier.Tier.String()),
		zap.String("tables", q.TableVersion),
	}
}

// ForQuote returns a logger carrying QuoteFields
func ForQuote(q *engine.Quote) *zap.Logger {
	return Logger.With(QuoteFields(q)...)
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}
