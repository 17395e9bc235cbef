package multitrack

import (
	"iter"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/ranges"
)

// Segment is one interval of a merge over which every track holds a single
// value. Values[i] is the value of track i, or nil where track i has none.
type Segment struct {
	Span   instant.Span
	Values []any
}

// Merge zips several tracks of one unit into a single sequence of segments.
//
// A Merge borrows its tracks: it copies no run data and holds no state beyond
// the cursors of a live iteration. Writing to a track while one of its merge
// iterators is live is undefined.
type Merge struct {
	tracks []Track
	unit   format.Unit
}

// New returns a merge over tracks, in order. Non-empty tracks must share a
// unit; empty tracks never contribute a value.
func New(tracks ...Track) (*Merge, error) {
	m := &Merge{tracks: tracks}
	for _, t := range tracks {
		if t.IsEmpty() {
			continue
		}
		switch {
		case m.unit == format.UnitNone:
			m.unit = t.Unit()
		case t.Unit() != m.unit:
			return nil, errs.UnitMismatch(m.unit, t.Unit())
		}
	}

	return m, nil
}

// Unit returns the shared unit of the tracks, or format.UnitNone when all are empty.
func (m *Merge) Unit() format.Unit {
	return m.unit
}

// Tracks returns the number of tracks.
func (m *Merge) Tracks() int {
	return len(m.tracks)
}

// IsEmpty reports whether every track is empty.
func (m *Merge) IsEmpty() bool {
	for _, t := range m.tracks {
		if !t.IsEmpty() {
			return false
		}
	}

	return true
}

// Extrema returns the smallest span covering the extrema of every track.
func (m *Merge) Extrema() (instant.Span, error) {
	var lo, hi int64
	found := false
	for _, t := range m.tracks {
		if t.IsEmpty() {
			continue
		}
		ext, err := t.Extrema()
		if err != nil {
			return instant.Span{}, err
		}
		s, e := ext.Start().Value(), ext.End().Value()
		if !found {
			lo, hi, found = s, e, true
			continue
		}
		lo, hi = min(lo, s), max(hi, e)
	}
	if !found {
		return instant.Span{}, errs.ErrEmptyExtrema
	}

	return instant.NewSpan(instant.Of(m.unit, lo), instant.Of(m.unit, hi))
}

// Get returns the value of every track at p, nil where a track has none.
func (m *Merge) Get(p instant.Instant) []any {
	out := make([]any, len(m.tracks))
	for i, t := range m.tracks {
		if v, ok := t.Get(p); ok {
			out[i] = v
		}
	}

	return out
}

// Contains reports whether any track has a value at p.
func (m *Merge) Contains(p instant.Instant) bool {
	for _, t := range m.tracks {
		if _, ok := t.Get(p); ok {
			return true
		}
	}

	return false
}

// Intersects reports whether any track has a value somewhere in r.
func (m *Merge) Intersects(r *ranges.Range) (bool, error) {
	if r.IsEmpty() || m.IsEmpty() {
		return false, nil
	}
	if r.Unit() != m.unit {
		return false, errs.UnitMismatch(m.unit, r.Unit())
	}

	for _, t := range m.tracks {
		c := t.Cursor()
		for span, _, ok := c.Next(); ok; span, _, ok = c.Next() {
			hit, err := r.IntersectsSpan(span)
			if err != nil {
				return false, err
			}
			if hit {
				return true, nil
			}
		}
	}

	return false, nil
}

// Len returns the number of segments the merge yields.
func (m *Merge) Len() int {
	n := 0
	it := m.Iterator()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}

	return n
}

// All yields the segments of the merge in ascending order.
func (m *Merge) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		it := m.Iterator()
		for seg, ok := it.Next(); ok; seg, ok = it.Next() {
			if !yield(seg) {
				return
			}
		}
	}
}

// Within yields the segments of the merge clipped to bound.
func (m *Merge) Within(bound instant.Span) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if bound.Unit() != m.unit || bound.IsEmpty() {
			return
		}
		it := m.Iterator()
		for seg, ok := it.Next(); ok; seg, ok = it.Next() {
			clipped, hit := seg.Span.Intersection(bound)
			if !hit {
				if seg.Span.Start().Value() >= bound.End().Value() {
					return
				}
				continue
			}
			if !yield(Segment{Span: clipped, Values: seg.Values}) {
				return
			}
		}
	}
}
