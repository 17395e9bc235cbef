package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnit_String(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{UnitNone, "None"},
		{UnitFrame, "Frame"},
		{UnitTime, "Time"},
		{Unit(0x7), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.unit.String())
		})
	}
}

func TestUnit_IsValid(t *testing.T) {
	require.False(t, UnitNone.IsValid())
	require.True(t, UnitFrame.IsValid())
	require.True(t, UnitTime.IsValid())
	require.False(t, Unit(0x9).IsValid())
}

func TestNotation_String(t *testing.T) {
	require.Equal(t, "HalfOpen", NotationHalfOpen.String())
	require.Equal(t, "Inclusive", NotationInclusive.String())
	require.Equal(t, "Unknown", Notation(0).String())
}
