package multitrack

import (
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/ranges"
	"github.com/arloliu/tempo/rlmap"
)

// Track is a read-only view of one piecewise-constant track: a sequence of
// disjoint runs, each holding a value.
type Track interface {
	Unit() format.Unit
	IsEmpty() bool
	Extrema() (instant.Span, error)
	Get(p instant.Instant) (any, bool)
	Cursor() Cursor
}

// Cursor walks the runs of a Track once, in ascending order.
type Cursor interface {
	Next() (instant.Span, any, bool)
}

// FromMap views m as a track. The map is borrowed, not copied.
func FromMap[V any](m *rlmap.Map[V]) Track {
	return mapTrack[V]{m: m}
}

// FromRange views r as a track whose value is true wherever r holds an instant.
func FromRange(r *ranges.Range) Track {
	return rangeTrack{r: r}
}

type mapTrack[V any] struct {
	m *rlmap.Map[V]
}

func (t mapTrack[V]) Unit() format.Unit              { return t.m.Unit() }
func (t mapTrack[V]) IsEmpty() bool                  { return t.m.IsEmpty() }
func (t mapTrack[V]) Extrema() (instant.Span, error) { return t.m.Extrema() }

func (t mapTrack[V]) Get(p instant.Instant) (any, bool) {
	v, ok := t.m.Get(p)
	if !ok {
		return nil, false
	}

	return v, true
}

func (t mapTrack[V]) Cursor() Cursor {
	return mapCursor[V]{c: t.m.Scan()}
}

type mapCursor[V any] struct {
	c *rlmap.Cursor[V]
}

func (c mapCursor[V]) Next() (instant.Span, any, bool) {
	e, ok := c.c.Next()
	if !ok {
		return instant.Span{}, nil, false
	}

	return e.Span, e.Value, true
}

type rangeTrack struct {
	r *ranges.Range
}

func (t rangeTrack) Unit() format.Unit              { return t.r.Unit() }
func (t rangeTrack) IsEmpty() bool                  { return t.r.IsEmpty() }
func (t rangeTrack) Extrema() (instant.Span, error) { return t.r.Extrema() }

func (t rangeTrack) Get(p instant.Instant) (any, bool) {
	if !t.r.Contains(p) {
		return nil, false
	}

	return true, true
}

func (t rangeTrack) Cursor() Cursor {
	return rangeCursor{c: t.r.Cursor()}
}

type rangeCursor struct {
	c *ranges.Cursor
}

func (c rangeCursor) Next() (instant.Span, any, bool) {
	s, ok := c.c.Next()
	if !ok {
		return instant.Span{}, nil, false
	}

	return s, true, true
}
