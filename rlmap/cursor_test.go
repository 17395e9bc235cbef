package rlmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/instant"
)

func span(start, end int32) instant.Span {
	return instant.Must(instant.NewFrameSpan(start, end))
}

func collect(c *Cursor[string]) []Entry[string] {
	var out []Entry[string]
	for e, ok := c.Next(); ok; e, ok = c.Next() {
		out = append(out, e)
	}

	return out
}

func TestCursor_Clipping(t *testing.T) {
	m := build(t, write{1, 5, "a"}, write{5, 10, "b"}, write{20, 30, "c"})

	tests := []struct {
		name  string
		bound instant.Span
		want  []Entry[string]
	}{
		{"clips both ends", span(3, 25), []Entry[string]{
			{span(3, 5), "a"}, {span(5, 10), "b"}, {span(20, 25), "c"},
		}},
		{"synthetic first only", span(22, 23), []Entry[string]{{span(22, 23), "c"}}},
		{"starts on boundary", span(5, 40), []Entry[string]{{span(5, 10), "b"}, {span(20, 30), "c"}}},
		{"gap", span(12, 15), nil},
		{"empty bound", span(3, 3), nil},
		{"before everything", span(-10, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, collect(m.Cursor(tt.bound)))
		})
	}
}

func TestCursor_SinglePass(t *testing.T) {
	m := build(t, write{1, 5, "a"})
	c := m.Cursor(span(0, 10))

	_, ok := c.Next()
	require.True(t, ok)
	_, ok = c.Next()
	require.False(t, ok)
	_, ok = c.Next()
	require.False(t, ok)
}

func TestCursor_OtherUnit(t *testing.T) {
	m := build(t, write{1, 5, "a"})
	require.Empty(t, collect(m.Cursor(instant.Must(instant.NewTimeSpan(0, 10)))))
}

func TestMap_AllWithin(t *testing.T) {
	m := build(t, write{1, 5, "a"}, write{5, 10, "b"}, write{20, 30, "c"})

	all := slices.Collect(m.All())
	require.Len(t, all, 3)
	require.Equal(t, Entry[string]{span(20, 30), "c"}, all[2])

	within := slices.Collect(m.Within(span(4, 6)))
	require.Equal(t, []Entry[string]{{span(4, 5), "a"}, {span(5, 6), "b"}}, within)

	for e := range m.All() {
		require.Equal(t, "a", e.Value)
		break
	}
}

func TestMap_Scan(t *testing.T) {
	m := build(t, write{-5, 5, "a"}, write{20, 30, "c"})

	got := collect(m.Scan())
	require.Equal(t, []Entry[string]{{span(-5, 5), "a"}, {span(20, 30), "c"}}, got)

	empty, err := New[string]()
	require.NoError(t, err)
	require.Empty(t, collect(empty.Scan()))
}
