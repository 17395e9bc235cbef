package rlmap

import (
	"iter"
	"math"

	"github.com/arloliu/tempo/instant"
)

// Cursor walks the runs of a Map that intersect a bound, clipping the first
// and last run to it. A cursor is a finite single-pass sequence; it cannot be
// rewound.
//
// Writing to the map while a cursor is live is undefined.
type Cursor[V any] struct {
	m       *Map[V]
	lo, hi  int64
	pos     int64
	started bool
	done    bool
}

// Cursor returns a cursor over the runs of m clipped to bound. A bound of
// another unit, or an empty bound, yields nothing.
func (m *Map[V]) Cursor(bound instant.Span) *Cursor[V] {
	c := &Cursor[V]{m: m}
	if bound.Unit() != m.unit || bound.IsEmpty() {
		c.done = true
		return c
	}
	c.lo, c.hi = bound.Start().Value(), bound.End().Value()
	c.pos = c.lo

	return c
}

// Scan returns a cursor over every run of m.
func (m *Map[V]) Scan() *Cursor[V] {
	return &Cursor[V]{m: m, lo: math.MinInt64, hi: math.MaxInt64, pos: math.MinInt64}
}

// Next returns the next clipped run, or false once the bound is exhausted.
func (c *Cursor[V]) Next() (Entry[V], bool) {
	if c.done {
		return Entry[V]{}, false
	}

	var n node[V]
	ok := false
	if !c.started {
		c.started = true
		// a run starting before the bound and reaching into it comes first
		if prev, found := c.m.before(c.lo); found && prev.end > c.lo {
			n, ok = prev, true
		}
	}
	if !ok {
		n, ok = c.m.atOrAfter(c.pos)
	}
	if !ok || n.start >= c.hi {
		c.done = true
		return Entry[V]{}, false
	}
	c.pos = n.end

	return Entry[V]{
		Span:  c.m.span(max(n.start, c.lo), min(n.end, c.hi)),
		Value: n.value,
	}, true
}

// All yields every run of m in ascending order.
func (m *Map[V]) All() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		c := m.Scan()
		for e, ok := c.Next(); ok; e, ok = c.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Within yields the runs of m clipped to bound.
func (m *Map[V]) Within(bound instant.Span) iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		c := m.Cursor(bound)
		for e, ok := c.Next(); ok; e, ok = c.Next() {
			if !yield(e) {
				return
			}
		}
	}
}
