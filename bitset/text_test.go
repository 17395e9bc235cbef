package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1:5, 9, 12:20", "1:5, 9:9, 12:20"},
		{"1:5 6:9", "1:9"},
		{"12:20, 1:5", "1:5, 12:20"},
		{"NULL", "NULL"},
		{"", "NULL"},
		{"0:0", "0:0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, r.String())
			requireCropped(t, r)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"1:x", errs.ErrInvalidRange},
		{"5:1", errs.ErrInvalidRange},
		{"1:5, :3", errs.ErrInvalidRange},
		{"-4:3", errs.ErrNegativeIndex},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, in := range []string{"1:5, 9:9, 12:20", "0:31, 32:32", "31:32, 95:96, 1000:1000", "NULL"} {
		r := mustParse(t, in)
		back := mustParse(t, r.String())
		require.True(t, r.Equal(back), in)
	}
}

func TestRuns_StopEarly(t *testing.T) {
	r := mustParse(t, "1:5, 9, 12:20")

	var got [][2]int32
	for lo, hi := range r.Runs() {
		got = append(got, [2]int32{lo, hi})
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, [][2]int32{{1, 5}, {9, 9}}, got)
}
