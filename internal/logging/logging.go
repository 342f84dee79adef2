// Package logging builds the zap loggers used by pipeplan.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatLogfmt  = "logfmt"
	FormatJSON    = "json"
)

const (
	defaultLevel  = "info"
	defaultFormat = FormatConsole
)

// Config selects the level, the encoding and the destination of log
// entries. Zero values mean info, console and stderr.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// New returns a logger configured by c.
func New(c Config) (*zap.Logger, error) {
	level := c.Level
	if level == "" {
		level = defaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}

	enc, err := newEncoder(c.Format)
	if err != nil {
		return nil, err
	}

	var ws zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if c.Writer != nil {
		ws = zapcore.AddSync(c.Writer)
	}

	return zap.New(
		zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(lvl)),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "" {
		format = defaultFormat
	}
	switch strings.ToLower(format) {
	case FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case FormatLogfmt:
		return zaplogfmt.NewEncoder(encoderConfig), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q (want console, logfmt or json)", format)
	}
}
