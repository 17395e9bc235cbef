package instant

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
)

// Span is an immutable half-open interval [start, end) over one unit.
//
// A Span has no mutating methods; operations that "change" a span return a
// new value. The zero Span is absent and has format.UnitNone.
type Span struct {
	start Instant
	end   Instant
}

// NewSpan returns the span [start, end).
//
// It fails with errs.ErrInvalidRange when either endpoint is absent, the
// endpoints have different units, or start is after end.
func NewSpan(start, end Instant) (Span, error) {
	if start.IsZero() || end.IsZero() {
		return Span{}, errors.Wrapf(errs.ErrInvalidRange, "span endpoint is absent: %s to %s", start, end)
	}
	if start.unit != end.unit {
		return Span{}, errors.Wrapf(errs.ErrInvalidRange, "span mixes %s and %s: %s to %s",
			start.unit, end.unit, start, end)
	}
	if start.v > end.v {
		return Span{}, errors.Wrapf(errs.ErrInvalidRange, "span start after end: %s to %s", start, end)
	}

	return Span{start: start, end: end}, nil
}

// NewFrameSpan returns the frame span [start, end).
func NewFrameSpan(start, end int32) (Span, error) {
	return NewSpan(Frame(start), Frame(end))
}

// NewTimeSpan returns the time span [start, end) in microseconds.
func NewTimeSpan(start, end int64) (Span, error) {
	return NewSpan(Time(start), Time(end))
}

// Must returns s or panics when err is non-nil. It is meant for literals
// whose validity is known at the call site.
func Must(s Span, err error) Span {
	if err != nil {
		panic(err)
	}

	return s
}

// Start returns the first instant of the span.
func (s Span) Start() Instant {
	return s.start
}

// End returns the first instant after the span.
func (s Span) End() Instant {
	return s.end
}

// Last returns the last instant contained in the span.
func (s Span) Last() Instant {
	return s.end.Previous()
}

// Unit returns the unit of both endpoints.
func (s Span) Unit() format.Unit {
	return s.start.unit
}

// IsZero reports whether s is the absent span.
func (s Span) IsZero() bool {
	return s.start.IsZero()
}

// IsEmpty reports whether s contains no instants.
func (s Span) IsEmpty() bool {
	return s.start.v >= s.end.v
}

// Width returns the number of instants in s.
func (s Span) Width() int64 {
	return s.end.v - s.start.v
}

// Contains reports whether start <= x < end. Instants of another unit are never contained.
func (s Span) Contains(x Instant) bool {
	return x.unit == s.start.unit && s.start.v <= x.v && x.v < s.end.v
}

// ContainsSpan reports whether every instant of o lies in s.
func (s Span) ContainsSpan(o Span) bool {
	if o.start.unit != s.start.unit {
		return false
	}

	return s.start.v <= o.start.v && o.end.v <= s.end.v
}

// Intersects reports whether s and o share at least one instant.
func (s Span) Intersects(o Span) bool {
	if o.start.unit != s.start.unit {
		return false
	}

	return s.start.v < o.end.v && o.start.v < s.end.v
}

// Intersection returns the overlap of s and o. The second result is false
// when they share no instant.
func (s Span) Intersection(o Span) (Span, bool) {
	if !s.Intersects(o) {
		return Span{}, false
	}

	return Span{
		start: Instant{unit: s.start.unit, v: max(s.start.v, o.start.v)},
		end:   Instant{unit: s.start.unit, v: min(s.end.v, o.end.v)},
	}, true
}

// Change returns a new span with the given endpoints.
func (s Span) Change(start, end Instant) (Span, error) {
	return NewSpan(start, end)
}

// Instants yields every instant from start to the last contained instant.
//
// The sequence is lazy, finite and restartable, but it visits one value per
// frame or microsecond: iterating a long time span is expensive.
func (s Span) Instants() iter.Seq[Instant] {
	return func(yield func(Instant) bool) {
		for v := s.start.v; v < s.end.v; v++ {
			if !yield(Instant{unit: s.start.unit, v: v}) {
				return
			}
		}
	}
}

// Equal reports whether s and o have identical endpoints.
func (s Span) Equal(o Span) bool {
	return s == o
}

// String renders s in inclusive notation, "start:last".
func (s Span) String() string {
	return s.Format(format.NotationInclusive)
}

// HalfOpen renders s as "[start,end)".
func (s Span) HalfOpen() string {
	return s.Format(format.NotationHalfOpen)
}

// Format renders s in the requested notation.
func (s Span) Format(n format.Notation) string {
	if n == format.NotationHalfOpen {
		return "[" + s.start.String() + "," + s.end.String() + ")"
	}

	return s.start.String() + ":" + s.Last().String()
}
