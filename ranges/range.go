package ranges

import (
	"iter"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/internal/hash"
)

// ival is a half-open [lo, hi) run in the range's native unit.
type ival struct {
	lo, hi int64
}

// Range is an ordered set of disjoint, non-adjacent spans over one unit.
//
// The zero Range is empty and unbound: it adopts the unit of the first span
// added to it. A Range is not safe for concurrent mutation.
type Range struct {
	unit  format.Unit
	spans []ival
}

// New returns a range holding the union of spans. All spans must share one unit.
func New(spans ...instant.Span) (*Range, error) {
	r := &Range{}
	for _, s := range spans {
		if _, err := r.Add(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Empty returns an empty range bound to unit.
func Empty(unit format.Unit) *Range {
	return &Range{unit: unit}
}

// Unit returns the unit of the range, or format.UnitNone for an unbound empty range.
func (r *Range) Unit() format.Unit {
	return r.unit
}

// Len returns the number of maximal contiguous spans.
func (r *Range) Len() int {
	return len(r.spans)
}

// IsEmpty reports whether the range contains no instants.
func (r *Range) IsEmpty() bool {
	return len(r.spans) == 0
}

// Clear removes every span, keeping the unit binding.
func (r *Range) Clear() {
	r.spans = r.spans[:0]
}

// Clone returns a deep copy of r.
func (r *Range) Clone() *Range {
	return &Range{unit: r.unit, spans: slices.Clone(r.spans)}
}

// Equal reports whether r and o contain the same instants in the same unit.
// Two empty ranges are equal regardless of unit.
func (r *Range) Equal(o *Range) bool {
	if r.IsEmpty() && o.IsEmpty() {
		return true
	}

	return r.unit == o.unit && slices.Equal(r.spans, o.spans)
}

// Extrema returns the span from the first start to the last end.
func (r *Range) Extrema() (instant.Span, error) {
	if r.IsEmpty() {
		return instant.Span{}, errs.ErrEmptyExtrema
	}

	return r.span(ival{r.spans[0].lo, r.spans[len(r.spans)-1].hi}), nil
}

// Spans returns a copy of the maximal spans in ascending order.
func (r *Range) Spans() []instant.Span {
	out := make([]instant.Span, len(r.spans))
	for i, iv := range r.spans {
		out[i] = r.span(iv)
	}

	return out
}

// All yields the maximal spans in ascending order.
func (r *Range) All() iter.Seq[instant.Span] {
	return func(yield func(instant.Span) bool) {
		for _, iv := range r.spans {
			if !yield(r.span(iv)) {
				return
			}
		}
	}
}

// Within yields the spans of r clipped to bound. A bound in another unit
// yields nothing.
func (r *Range) Within(bound instant.Span) iter.Seq[instant.Span] {
	return func(yield func(instant.Span) bool) {
		if bound.Unit() != r.unit || bound.IsEmpty() {
			return
		}
		lo, hi := bound.Start().Value(), bound.End().Value()
		for i := r.search(lo); i < len(r.spans) && r.spans[i].lo < hi; i++ {
			iv := ival{max(r.spans[i].lo, lo), min(r.spans[i].hi, hi)}
			if !yield(r.span(iv)) {
				return
			}
		}
	}
}

// Add inserts s, merging it with overlapping and adjacent spans. It reports
// whether the range changed.
func (r *Range) Add(s instant.Span) (bool, error) {
	if s.IsEmpty() {
		return false, r.check(s)
	}
	if err := r.bind(s); err != nil {
		return false, err
	}

	return r.add(s.Start().Value(), s.End().Value()), nil
}

// AddInstant inserts the single instant i.
func (r *Range) AddInstant(i instant.Instant) (bool, error) {
	s, err := instant.NewSpan(i, i.Next())
	if err != nil {
		return false, err
	}

	return r.Add(s)
}

// Remove deletes every instant of s, splitting spans that straddle it. It
// reports whether the range changed.
func (r *Range) Remove(s instant.Span) (bool, error) {
	if err := r.check(s); err != nil {
		return false, err
	}
	if s.IsEmpty() {
		return false, nil
	}

	return r.remove(s.Start().Value(), s.End().Value()), nil
}

// RemoveInstant deletes the single instant i.
func (r *Range) RemoveInstant(i instant.Instant) (bool, error) {
	s, err := instant.NewSpan(i, i.Next())
	if err != nil {
		return false, err
	}

	return r.Remove(s)
}

// Contains reports whether i is in the range. Instants of another unit are never contained.
func (r *Range) Contains(i instant.Instant) bool {
	if i.Unit() != r.unit {
		return false
	}
	k := r.search(i.Value())

	return k < len(r.spans) && r.spans[k].lo <= i.Value()
}

// WithinRange reports whether every instant of s lies inside a single member
// span. Empty spans are never within a range.
func (r *Range) WithinRange(s instant.Span) bool {
	if s.Unit() != r.unit || s.IsEmpty() {
		return false
	}
	k := r.search(s.Start().Value())

	return k < len(r.spans) && r.spans[k].lo <= s.Start().Value() && s.End().Value() <= r.spans[k].hi
}

// FirstBefore returns the start of the last span starting strictly before i.
func (r *Range) FirstBefore(i instant.Instant) (instant.Instant, bool) {
	if i.Unit() != r.unit {
		return instant.Instant{}, false
	}
	k := sort.Search(len(r.spans), func(k int) bool { return r.spans[k].lo >= i.Value() })
	if k == 0 {
		return instant.Instant{}, false
	}

	return instant.Of(r.unit, r.spans[k-1].lo), true
}

// FirstAfterOrAt returns the start of the first span starting at or after i.
func (r *Range) FirstAfterOrAt(i instant.Instant) (instant.Instant, bool) {
	if i.Unit() != r.unit {
		return instant.Instant{}, false
	}
	k := sort.Search(len(r.spans), func(k int) bool { return r.spans[k].lo >= i.Value() })
	if k == len(r.spans) {
		return instant.Instant{}, false
	}

	return instant.Of(r.unit, r.spans[k].lo), true
}

// EndOf returns the end of the span that contains i or ends exactly at i.
func (r *Range) EndOf(i instant.Instant) (instant.Instant, bool) {
	if i.Unit() != r.unit {
		return instant.Instant{}, false
	}
	k := sort.Search(len(r.spans), func(k int) bool { return r.spans[k].hi >= i.Value() })
	if k == len(r.spans) || r.spans[k].lo > i.Value() {
		return instant.Instant{}, false
	}

	return instant.Of(r.unit, r.spans[k].hi), true
}

// Shift translates every span by delta, which must be in the range's unit.
// Frame ranges that would leave the 32-bit frame axis are rejected unchanged.
func (r *Range) Shift(delta instant.Instant) error {
	if delta.IsZero() {
		return errors.Wrap(errs.ErrInvalidRange, "absent shift amount")
	}
	if r.unit != format.UnitNone && delta.Unit() != r.unit {
		return errs.UnitMismatch(r.unit, delta.Unit())
	}
	d := delta.Value()
	if d == 0 || r.IsEmpty() {
		return nil
	}

	lo, hi := r.spans[0].lo, r.spans[len(r.spans)-1].hi
	alpha, omega := instant.Alpha(r.unit).Value(), instant.Omega(r.unit).Value()
	if (d < 0 && lo < alpha-d) || (d > 0 && hi > omega-d) {
		return errors.Wrapf(errs.ErrInvalidRange, "shifting [%d,%d) by %d leaves the %s axis", lo, hi, d, r.unit)
	}

	// far end first, so a shifted span never lands on an unshifted one
	if d > 0 {
		for i := len(r.spans) - 1; i >= 0; i-- {
			r.spans[i].lo += d
			r.spans[i].hi += d
		}
	} else {
		for i := range r.spans {
			r.spans[i].lo += d
			r.spans[i].hi += d
		}
	}

	return nil
}

// Crop removes every instant outside bound.
func (r *Range) Crop(bound instant.Span) error {
	if err := r.check(bound); err != nil {
		return err
	}
	if bound.IsEmpty() {
		r.Clear()
		return nil
	}

	lo, hi := bound.Start().Value(), bound.End().Value()
	out := r.spans[:0]
	for _, iv := range r.spans {
		iv.lo, iv.hi = max(iv.lo, lo), min(iv.hi, hi)
		if iv.lo < iv.hi {
			out = append(out, iv)
		}
	}
	clear(r.spans[len(out):])
	r.spans = out

	return nil
}

// Hash returns a fingerprint of the unit and spans. Equal ranges of the same
// unit hash equally.
func (r *Range) Hash() uint64 {
	f := hash.New(byte(r.unit))
	for _, iv := range r.spans {
		f.Int64(iv.lo)
		f.Int64(iv.hi)
	}

	return f.Sum64()
}

// search returns the index of the first span ending after v.
func (r *Range) search(v int64) int {
	return sort.Search(len(r.spans), func(k int) bool { return r.spans[k].hi > v })
}

func (r *Range) add(lo, hi int64) bool {
	s := r.spans
	// spans in [i, j) overlap or touch [lo, hi)
	i := sort.Search(len(s), func(k int) bool { return s[k].hi >= lo })
	j := sort.Search(len(s), func(k int) bool { return s[k].lo > hi })
	if i < j {
		if j-i == 1 && s[i].lo <= lo && hi <= s[i].hi {
			return false
		}
		lo, hi = min(lo, s[i].lo), max(hi, s[j-1].hi)
	}
	r.spans = slices.Replace(s, i, j, ival{lo, hi})

	return true
}

func (r *Range) remove(lo, hi int64) bool {
	s := r.spans
	// spans in [i, j) overlap [lo, hi)
	i := sort.Search(len(s), func(k int) bool { return s[k].hi > lo })
	j := sort.Search(len(s), func(k int) bool { return s[k].lo >= hi })
	if i >= j {
		return false
	}

	var keep [2]ival
	n := 0
	if s[i].lo < lo {
		keep[n] = ival{s[i].lo, lo}
		n++
	}
	if s[j-1].hi > hi {
		keep[n] = ival{hi, s[j-1].hi}
		n++
	}
	r.spans = slices.Replace(s, i, j, keep[:n]...)

	return true
}

// bind checks s against the range unit, adopting it if the range is unbound.
func (r *Range) bind(s instant.Span) error {
	if err := r.check(s); err != nil {
		return err
	}
	if r.unit == format.UnitNone {
		r.unit = s.Unit()
	}

	return nil
}

func (r *Range) check(s instant.Span) error {
	if s.IsZero() {
		return errors.Wrap(errs.ErrInvalidRange, "absent span")
	}
	if r.unit != format.UnitNone && s.Unit() != r.unit {
		return errs.UnitMismatch(r.unit, s.Unit())
	}

	return nil
}

func (r *Range) checkRange(o *Range) error {
	if r.unit != format.UnitNone && o.unit != format.UnitNone && r.unit != o.unit {
		return errs.UnitMismatch(r.unit, o.unit)
	}

	return nil
}

func (r *Range) span(iv ival) instant.Span {
	return instant.Must(instant.NewSpan(instant.Of(r.unit, iv.lo), instant.Of(r.unit, iv.hi)))
}
