package multitrack

import (
	"github.com/arloliu/tempo/instant"
)

// Navigation on a Merge works on segment boundaries: a segment start is any
// covered instant where some track starts or ends a run. Each query walks the
// segments from the start of the merge and stops as soon as it has an answer.

// SegmentAt returns the segment containing p.
func (m *Merge) SegmentAt(p instant.Instant) (Segment, bool) {
	if p.Unit() != m.unit {
		return Segment{}, false
	}
	it := m.Iterator()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		if seg.Span.Start().Value() > p.Value() {
			break
		}
		if seg.Span.Contains(p) {
			return seg, true
		}
	}

	return Segment{}, false
}

// FirstBefore returns the start of the last segment starting strictly before p.
func (m *Merge) FirstBefore(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}

	var last instant.Instant
	found := false
	it := m.Iterator()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		if seg.Span.Start().Value() >= p.Value() {
			break
		}
		last, found = seg.Span.Start(), true
	}

	return last, found
}

// FirstAfterOrAt returns the start of the first segment starting at or after p.
func (m *Merge) FirstAfterOrAt(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}
	it := m.Iterator()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		if seg.Span.Start().Value() >= p.Value() {
			return seg.Span.Start(), true
		}
	}

	return instant.Instant{}, false
}

// EndOf returns the end of the segment that covers p or ends exactly at p.
// A segment covering p takes precedence over one ending there.
func (m *Merge) EndOf(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}

	var end instant.Instant
	found := false
	it := m.Iterator()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		lo, hi := seg.Span.Start().Value(), seg.Span.End().Value()
		if lo > p.Value() {
			break
		}
		if p.Value() < hi {
			return seg.Span.End(), true
		}
		if hi == p.Value() {
			end, found = seg.Span.End(), true
		}
	}

	return end, found
}
