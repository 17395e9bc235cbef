package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.in)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		log, err := New(Options{Level: "warn", JSON: json})
		require.NoError(t, err)
		require.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
		require.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
	}

	_, err := New(Options{Level: "nope"})
	require.Error(t, err)
}

func TestComponent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Component(zap.New(core).Sugar(), "range")

	log.Infow("normalized", FieldSpans, 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "range", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	require.Equal(t, "range", ctx[FieldComponent])
	require.EqualValues(t, 2, ctx[FieldSpans])
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() { Nop().Infow("dropped", FieldUnit, "Frame") })
}
