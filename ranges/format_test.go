package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
)

func TestParseFrameRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"inclusive tokens", "12:19 24 30:100", "[12,20) [24,25) [30,101)"},
		{"comma separated", "1:9, 30:31", "[1,10) [30,32)"},
		{"semicolons and tabs", "1:2;\t5:6", "[1,3) [5,7)"},
		{"half-open pairs", "[12,20) [24,25)", "[12,20) [24,25)"},
		{"half-open merge", "[1,5) [5,9)", "[1,9)"},
		{"overlapping tokens", "1:5 3:9", "[1,10)"},
		{"empty", "", ""},
		{"blank", "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseFrameRange(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, r.String())
			require.Equal(t, format.UnitFrame, r.Unit())
		})
	}
}

func TestParseFrameRange_Errors(t *testing.T) {
	tests := []struct {
		in    string
		token string
	}{
		{"1:9, x:31", `"x"`},
		{"1:9 5:2", `"5:2"`},
		{"[1,5) [7", `"7"`},
		{"[1,5) [9,7)", "[9,7)"},
		{"[1,q)", `"q"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseFrameRange(tt.in)
			require.ErrorIs(t, err, errs.ErrInvalidRange)
			require.Contains(t, err.Error(), tt.token)
		})
	}
}

func TestRange_RoundTrip(t *testing.T) {
	inputs := []string{
		"1:9, 30:31",
		"12:19 24 30:100",
		"[0,1) [3,4) [100,2000)",
		"-50:-1, 0:0",
		"",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			r := mustParse(t, in)

			half, err := ParseFrameRange(r.String())
			require.NoError(t, err)
			require.True(t, r.Equal(half), "%q -> %q", in, r.String())

			incl, err := ParseFrameRange(r.Format(format.NotationInclusive))
			require.NoError(t, err)
			require.True(t, r.Equal(incl), "%q -> %q", in, r.Format(format.NotationInclusive))
		})
	}
}

func TestRange_FormatInclusive(t *testing.T) {
	r := mustParse(t, "[1,10) [30,32) [40,41)")
	require.Equal(t, "1:9, 30:31, 40:40", r.Format(format.NotationInclusive))
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("0:999999 2000000:2999999")
	require.NoError(t, err)
	require.Equal(t, format.UnitTime, r.Unit())
	require.Equal(t, "[0,1000000) [2000000,3000000)", r.String())

	r, err = ParseTimeRange("[0,1000000)")
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
}

func TestRange_Splice(t *testing.T) {
	rate, err := instant.NewFrameRate(25)
	require.NoError(t, err)

	r := mustParse(t, "[1,26) [51,76)")
	sp, err := r.Splice(rate)
	require.NoError(t, err)
	require.Len(t, sp, 2)
	require.InDelta(t, 0.0, sp[0][0], 1e-9)
	require.InDelta(t, 1.0, sp[0][1], 1e-9)
	require.InDelta(t, 2.0, sp[1][0], 1e-9)
	require.InDelta(t, 3.0, sp[1][1], 1e-9)

	_, err = r.Splice(instant.FrameRate{})
	require.ErrorIs(t, err, errs.ErrInvalidFrameRate)
}
