package instant

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
)

func TestNewSpan_Validation(t *testing.T) {
	tests := []struct {
		name       string
		start, end Instant
	}{
		{"start after end", Frame(5), Frame(4)},
		{"mixed units", Frame(1), Time(4)},
		{"absent start", Instant{}, Frame(4)},
		{"absent end", Time(1), Instant{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpan(tt.start, tt.end)
			require.ErrorIs(t, err, errs.ErrInvalidRange)
		})
	}

	s, err := NewSpan(Frame(3), Frame(3))
	require.NoError(t, err)
	require.True(t, s.IsEmpty())
}

func TestSpan_Accessors(t *testing.T) {
	s := Must(NewFrameSpan(10, 20))

	require.Equal(t, Frame(10), s.Start())
	require.Equal(t, Frame(20), s.End())
	require.Equal(t, Frame(19), s.Last())
	require.Equal(t, format.UnitFrame, s.Unit())
	require.Equal(t, int64(10), s.Width())
	require.False(t, s.IsEmpty())
	require.False(t, s.IsZero())
	require.True(t, Span{}.IsZero())
}

func TestSpan_Contains(t *testing.T) {
	s := Must(NewFrameSpan(10, 20))

	require.True(t, s.Contains(Frame(10)))
	require.True(t, s.Contains(Frame(19)))
	require.False(t, s.Contains(Frame(20)))
	require.False(t, s.Contains(Frame(9)))
	require.False(t, s.Contains(Time(15)))

	require.True(t, s.ContainsSpan(Must(NewFrameSpan(12, 20))))
	require.False(t, s.ContainsSpan(Must(NewFrameSpan(12, 21))))
	require.False(t, s.ContainsSpan(Must(NewTimeSpan(12, 13))))
}

func TestSpan_Intersects(t *testing.T) {
	s := Must(NewFrameSpan(10, 20))

	require.True(t, s.Intersects(Must(NewFrameSpan(19, 25))))
	require.False(t, s.Intersects(Must(NewFrameSpan(20, 25))), "half-open spans that touch do not intersect")
	require.False(t, s.Intersects(Must(NewTimeSpan(10, 20))))

	got, ok := s.Intersection(Must(NewFrameSpan(15, 40)))
	require.True(t, ok)
	require.Equal(t, Must(NewFrameSpan(15, 20)), got)

	_, ok = s.Intersection(Must(NewFrameSpan(0, 10)))
	require.False(t, ok)
}

func TestSpan_Change(t *testing.T) {
	s := Must(NewFrameSpan(10, 20))

	c, err := s.Change(Frame(1), Frame(2))
	require.NoError(t, err)
	require.Equal(t, Must(NewFrameSpan(1, 2)), c)
	require.Equal(t, Must(NewFrameSpan(10, 20)), s, "Change must not alter the receiver")

	_, err = s.Change(Frame(3), Frame(2))
	require.ErrorIs(t, err, errs.ErrInvalidRange)
}

func TestSpan_Instants(t *testing.T) {
	s := Must(NewFrameSpan(3, 6))

	got := slices.Collect(s.Instants())
	require.Equal(t, []Instant{Frame(3), Frame(4), Frame(5)}, got)

	// restartable
	require.Len(t, slices.Collect(s.Instants()), 3)

	for i := range s.Instants() {
		require.Equal(t, Frame(3), i)
		break
	}

	require.Empty(t, slices.Collect(Must(NewFrameSpan(3, 3)).Instants()))
}

func TestSpan_Format(t *testing.T) {
	s := Must(NewFrameSpan(1, 6))

	require.Equal(t, "1:5", s.String())
	require.Equal(t, "[1,6)", s.HalfOpen())
	require.Equal(t, "1:5", s.Format(format.NotationInclusive))
}

func TestParseFrameSpan(t *testing.T) {
	s, err := ParseFrameSpan("11:20")
	require.NoError(t, err)
	require.Equal(t, Frame(11), s.Start())
	require.Equal(t, Frame(21), s.End())
	require.Equal(t, "11:20", s.String())

	s, err = ParseFrameSpan("24")
	require.NoError(t, err)
	require.Equal(t, Must(NewFrameSpan(24, 25)), s)

	s, err = ParseFrameSpan(" 7:7 ")
	require.NoError(t, err)
	require.Equal(t, Must(NewFrameSpan(7, 8)), s)
}

func TestParseFrameSpan_Errors(t *testing.T) {
	for _, in := range []string{"", "a:b", "3:", ":4", "9:3", "1:2:3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFrameSpan(in)
			require.ErrorIs(t, err, errs.ErrInvalidRange)
		})
	}
}

func TestParseTimeSpan(t *testing.T) {
	s, err := ParseTimeSpan("1000000:1999999")
	require.NoError(t, err)
	require.Equal(t, Must(NewTimeSpan(1_000_000, 2_000_000)), s)
}

func TestSpan_RoundTrip(t *testing.T) {
	for _, in := range []string{"0:0", "1:5", "11:20", "-4:3"} {
		s, err := ParseFrameSpan(in)
		require.NoError(t, err)
		back, err := ParseFrameSpan(s.String())
		require.NoError(t, err)
		require.Equal(t, s, back)
	}
}
