package multitrack

import (
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
)

// run is the current run of one track, in native values.
type run struct {
	lo, hi int64
	value  any
}

// Iterator produces the segments of a Merge. It is a finite single-pass
// sequence and cannot be rewound.
type Iterator struct {
	unit    format.Unit
	cursors []Cursor
	current []run
	live    []bool
	s       int64
	limit   int64
	done    bool
}

// Iterator returns an iterator positioned at the start of the merged extrema.
func (m *Merge) Iterator() *Iterator {
	it := &Iterator{
		unit:    m.unit,
		cursors: make([]Cursor, len(m.tracks)),
		current: make([]run, len(m.tracks)),
		live:    make([]bool, len(m.tracks)),
	}

	ext, err := m.Extrema()
	if err != nil {
		it.done = true
		return it
	}
	it.s, it.limit = ext.Start().Value(), ext.End().Value()

	for i, t := range m.tracks {
		if t.IsEmpty() {
			continue
		}
		it.cursors[i] = t.Cursor()
		it.advance(i)
	}

	return it
}

// Next returns the next segment, or false once the merge is exhausted.
//
// Starting from the previous boundary s, the segment end e is the smallest
// of the ends of the runs covering s and the starts of the runs after s.
// Tracks whose run ends at e move to their next run on the following call.
// Stretches where no track has a value are skipped.
func (it *Iterator) Next() (Segment, bool) {
	for !it.done {
		if it.s >= it.limit {
			it.done = true
			break
		}

		s, e := it.s, it.limit
		var values []any
		for i := range it.current {
			for it.live[i] && it.current[i].hi <= s {
				it.advance(i)
			}
			if !it.live[i] {
				continue
			}

			cur := it.current[i]
			if cur.lo <= s {
				if values == nil {
					values = make([]any, len(it.current))
				}
				values[i] = cur.value
				e = min(e, cur.hi)
			} else {
				e = min(e, cur.lo)
			}
		}

		it.s = e
		if values == nil {
			continue
		}

		return Segment{
			Span:   instant.Must(instant.NewSpan(instant.Of(it.unit, s), instant.Of(it.unit, e))),
			Values: values,
		}, true
	}

	return Segment{}, false
}

func (it *Iterator) advance(i int) {
	span, value, ok := it.cursors[i].Next()
	if !ok {
		it.live[i] = false
		return
	}
	it.current[i] = run{lo: span.Start().Value(), hi: span.End().Value(), value: value}
	it.live[i] = true
}
