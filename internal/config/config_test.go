package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)

	unit, err := c.AxisUnit()
	require.NoError(t, err)
	require.Equal(t, format.UnitFrame, unit)

	rate, err := c.FrameRate()
	require.NoError(t, err)
	require.InDelta(t, 30.0, rate.FPS(), 1e-9)
	require.Equal(t, "warn", c.Log.Level)
	require.False(t, c.Log.JSON)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TEMPO_UNIT", "time")
	t.Setenv("TEMPO_RATE_FRAMES", "30000")
	t.Setenv("TEMPO_RATE_SECONDS", "1001")
	t.Setenv("TEMPO_LOG_LEVEL", "debug")

	v, err := New("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	unit, err := c.AxisUnit()
	require.NoError(t, err)
	require.Equal(t, format.UnitTime, unit)

	rate, err := c.FrameRate()
	require.NoError(t, err)
	require.True(t, rate.IsRational())
	require.InDelta(t, 29.97, rate.FPS(), 0.001)
	require.Equal(t, "debug", c.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.toml")
	content := "unit = \"frame\"\n\n[rate]\nframes = 25\nseconds = 1\n\n[log]\njson = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v, err := New(path)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, int64(25), c.Rate.Frames)
	require.True(t, c.Log.JSON)

	_, err = New(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoad_Flags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("unit", "frame", "")
	flags.Int64("rate-frames", 30, "")
	require.NoError(t, flags.Parse([]string{"--rate-frames=24"}))

	v, err := New("")
	require.NoError(t, err)
	require.NoError(t, BindFlags(v, flags))

	c, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, int64(24), c.Rate.Frames)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  error
	}{
		{"unit", KeyUnit, "seconds", errs.ErrInvalidOption},
		{"zero rate", KeyRateNum, 0, errs.ErrInvalidFrameRate},
		{"negative seconds", KeyRateDen, -1, errs.ErrInvalidFrameRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New("")
			require.NoError(t, err)
			v.Set(tt.key, tt.value)

			_, err = Load(v)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
