package rlmap

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/ranges"
)

// IntVector is a run-length encoded count per instant. Instants without a
// run count zero, and runs whose count falls to zero are removed.
type IntVector struct {
	m *Map[int]
}

// NewIntVector returns an all-zero vector.
func NewIntVector(opts ...Option) (*IntVector, error) {
	m, err := New[int](opts...)
	if err != nil {
		return nil, err
	}

	return &IntVector{m: m}, nil
}

// Get returns the count at p.
func (v *IntVector) Get(p instant.Instant) int {
	n, _ := v.m.Get(p)
	return n
}

// Map exposes the non-zero runs of the vector. Writes through it bypass the
// zero-removal rule.
func (v *IntVector) Map() *Map[int] {
	return v.m
}

// Plus adds delta to the count of every instant in span.
func (v *IntVector) Plus(span instant.Span, delta int) error {
	if span.IsZero() {
		return errors.Wrap(errs.ErrInvalidRange, "absent span")
	}
	if v.m.unit != format.UnitNone && span.Unit() != v.m.unit {
		return errs.UnitMismatch(v.m.unit, span.Unit())
	}
	if delta == 0 || span.IsEmpty() {
		return nil
	}
	v.m.bind(span.Unit())
	v.plus(span.Start().Value(), span.End().Value(), delta)

	return nil
}

// PlusRange adds one to the count of every instant in r.
func (v *IntVector) PlusRange(r *ranges.Range) error {
	if r.IsEmpty() {
		return nil
	}
	if v.m.unit != format.UnitNone && r.Unit() != v.m.unit {
		return errs.UnitMismatch(v.m.unit, r.Unit())
	}
	v.m.bind(r.Unit())
	for span := range r.All() {
		v.plus(span.Start().Value(), span.End().Value(), 1)
	}

	return nil
}

// PlusMap adds the counts of o to v.
func (v *IntVector) PlusMap(o *Map[int]) error {
	if o.IsEmpty() {
		return nil
	}
	if v.m.unit != format.UnitNone && o.unit != v.m.unit {
		return errs.UnitMismatch(v.m.unit, o.unit)
	}
	v.m.bind(o.unit)
	for _, n := range o.nodes() {
		v.plus(n.start, n.end, n.value)
	}

	return nil
}

// plus splits [s, e) at the existing run boundaries and rewrites each piece.
func (v *IntVector) plus(s, e int64, delta int) {
	type piece struct {
		start, end int64
		count      int
	}

	var pieces []piece
	pos := s
	c := v.m.Cursor(v.m.span(s, e))
	for ent, ok := c.Next(); ok; ent, ok = c.Next() {
		lo, hi := ent.Span.Start().Value(), ent.Span.End().Value()
		if pos < lo {
			pieces = append(pieces, piece{pos, lo, delta})
		}
		pieces = append(pieces, piece{lo, hi, ent.Value + delta})
		pos = hi
	}
	if pos < e {
		pieces = append(pieces, piece{pos, e, delta})
	}

	for _, p := range pieces {
		if p.count == 0 {
			v.m.remove(p.start, p.end)
		} else {
			v.m.set(p.start, p.end, p.count)
		}
	}
}
