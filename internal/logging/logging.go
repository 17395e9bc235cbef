// Package logging builds the zap loggers used by tempoctl and the examples.
// The library packages never log.
package logging

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names. Use these instead of raw strings so log lines stay
// greppable across commands.
const (
	FieldCommand   = "command"
	FieldComponent = "component"
	FieldUnit      = "unit"
	FieldRate      = "rate"
	FieldInput     = "input"
	FieldResult    = "result"
	FieldSpans     = "spans"
	FieldFrames    = "frames"
	FieldTracks    = "tracks"
	FieldSegments  = "segments"
	FieldError     = "error"
)

// Options selects the logger shape.
type Options struct {
	Level string // debug, info, warn or error
	JSON  bool   // JSON lines instead of console text
}

// New returns a sugared logger writing to stderr, so that command output on
// stdout stays machine readable.
func New(opts Options) (*zap.SugaredLogger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)

	return zap.New(core).Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// ParseLevel maps a level name to a zap level. An empty name is info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return 0, errors.Wrapf(err, "log level %q", name)
	}

	return level, nil
}

// Component returns a named child of parent for one subsystem.
func Component(parent *zap.SugaredLogger, name string) *zap.SugaredLogger {
	return parent.Named(name).With(FieldComponent, name)
}
