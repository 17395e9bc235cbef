package rlmap

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/btree"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/internal/hash"
	"github.com/arloliu/tempo/internal/options"
	"github.com/arloliu/tempo/ranges"
)

// node is one run: the half-open interval [start, end) holding value.
type node[V any] struct {
	start, end int64
	value      V
}

func byStart[V any](a, b node[V]) bool {
	return a.start < b.start
}

// Entry is one maximal run of a Map.
type Entry[V any] struct {
	Span  instant.Span
	Value V
}

// Map is a run-length encoded map from intervals of one unit to values.
//
// Runs are kept sorted, disjoint and coalesced: no two touching runs hold
// equal values. An instant covered by no run has no value. Point lookups and
// interval writes cost O(log n) plus the number of runs the write replaces.
//
// A Map is not safe for concurrent mutation.
type Map[V any] struct {
	unit      format.Unit
	equal     func(a, b V) bool
	hashValue func(V) uint64
	tree      *btree.BTreeG[node[V]]
}

// New returns an empty map comparing values with ==.
func New[V comparable](opts ...Option) (*Map[V], error) {
	return NewFunc(func(a, b V) bool { return a == b }, opts...)
}

// NewFunc returns an empty map that coalesces runs whose values are equal
// under equal. Use it for value types that are not comparable. When equal is
// coarser than ==, pass WithValueHash so Hash agrees with Equal.
func NewFunc[V any](equal func(a, b V) bool, opts ...Option) (*Map[V], error) {
	if equal == nil {
		return nil, errors.Wrap(errs.ErrInvalidOption, "nil equality function")
	}
	cfg := &config{degree: DefaultDegree}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	hashValue := formatHash[V]
	if cfg.valueHash != nil {
		fn, ok := cfg.valueHash.(func(V) uint64)
		if !ok {
			return nil, errors.Wrapf(errs.ErrInvalidOption, "value hash takes %T, map holds %T", cfg.valueHash, *new(V))
		}
		hashValue = fn
	}

	return &Map[V]{
		unit:      cfg.unit,
		equal:     equal,
		hashValue: hashValue,
		tree:      btree.NewG(cfg.degree, byStart[V]),
	}, nil
}

// Unit returns the unit of the map, or format.UnitNone while it is unbound.
func (m *Map[V]) Unit() format.Unit {
	return m.unit
}

// Len returns the number of runs, which is the number of contiguous
// intervals holding a single value.
func (m *Map[V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether no instant has a value.
func (m *Map[V]) IsEmpty() bool {
	return m.tree.Len() == 0
}

// Clear removes every run, keeping the unit binding.
func (m *Map[V]) Clear() {
	m.tree.Clear(false)
}

// Clone returns a copy of m. The copy shares tree nodes with m lazily, so
// cloning is cheap until either side is written.
func (m *Map[V]) Clone() *Map[V] {
	return &Map[V]{unit: m.unit, equal: m.equal, hashValue: m.hashValue, tree: m.tree.Clone()}
}

// Get returns the value at p, or false when p has no value.
func (m *Map[V]) Get(p instant.Instant) (V, bool) {
	var zero V
	if p.Unit() != m.unit {
		return zero, false
	}
	n, ok := m.atOrBefore(p.Value())
	if !ok || p.Value() >= n.end {
		return zero, false
	}

	return n.value, true
}

// Contains reports whether p has a value.
func (m *Map[V]) Contains(p instant.Instant) bool {
	_, ok := m.Get(p)
	return ok
}

// Extrema returns the span from the start of the first run to the end of the last.
func (m *Map[V]) Extrema() (instant.Span, error) {
	first, ok := m.tree.Min()
	if !ok {
		return instant.Span{}, errs.ErrEmptyExtrema
	}
	last, _ := m.tree.Max()

	return m.span(first.start, last.end), nil
}

// Set assigns v to every instant of [start, stop), merging with touching
// runs of an equal value. It fails with errs.ErrInvalidRange unless start < stop.
func (m *Map[V]) Set(start, stop instant.Instant, v V) error {
	s, e, err := m.bounds(start, stop)
	if err != nil {
		return err
	}
	m.bind(start.Unit())
	m.set(s, e, v)

	return nil
}

// SetSpan is Set over the endpoints of span.
func (m *Map[V]) SetSpan(span instant.Span, v V) error {
	return m.Set(span.Start(), span.End(), v)
}

// SetRange assigns v over every span of r.
func (m *Map[V]) SetRange(r *ranges.Range, v V) error {
	if r.IsEmpty() {
		return nil
	}
	if m.unit != format.UnitNone && r.Unit() != m.unit {
		return errs.UnitMismatch(m.unit, r.Unit())
	}
	m.bind(r.Unit())
	for span := range r.All() {
		m.set(span.Start().Value(), span.End().Value(), v)
	}

	return nil
}

// Assign is Set when v is non-nil and Remove when v is nil.
func (m *Map[V]) Assign(start, stop instant.Instant, v *V) error {
	if v == nil {
		_, err := m.Remove(start, stop)
		return err
	}

	return m.Set(start, stop, *v)
}

// Remove clears every value in [start, stop), splitting runs that straddle
// the bounds. It reports whether any value was cleared.
func (m *Map[V]) Remove(start, stop instant.Instant) (bool, error) {
	s, e, err := m.bounds(start, stop)
	if err != nil {
		return false, err
	}

	return m.remove(s, e), nil
}

// RemoveSpan is Remove over the endpoints of span.
func (m *Map[V]) RemoveSpan(span instant.Span) (bool, error) {
	return m.Remove(span.Start(), span.End())
}

// Domain returns the instants that have a value, as a range.
func (m *Map[V]) Domain() *ranges.Range {
	r := ranges.Empty(m.unit)
	m.tree.Ascend(func(n node[V]) bool {
		_, _ = r.Add(m.span(n.start, n.end))
		return true
	})

	return r
}

// Shift translates every run by delta, which must be in the map's unit.
func (m *Map[V]) Shift(delta instant.Instant) error {
	if delta.IsZero() {
		return errors.Wrap(errs.ErrInvalidRange, "absent shift amount")
	}
	if m.unit != format.UnitNone && delta.Unit() != m.unit {
		return errs.UnitMismatch(m.unit, delta.Unit())
	}
	d := delta.Value()
	if d == 0 || m.IsEmpty() {
		return nil
	}

	first, _ := m.tree.Min()
	last, _ := m.tree.Max()
	alpha, omega := instant.Alpha(m.unit).Value(), instant.Omega(m.unit).Value()
	if (d < 0 && first.start < alpha-d) || (d > 0 && last.end > omega-d) {
		return errors.Wrapf(errs.ErrInvalidRange, "shifting [%d,%d) by %d leaves the %s axis", first.start, last.end, d, m.unit)
	}

	nodes := m.nodes()
	m.tree.Clear(false)
	for _, n := range nodes {
		n.start += d
		n.end += d
		m.tree.ReplaceOrInsert(n)
	}

	return nil
}

// Crop clears every value outside bound.
func (m *Map[V]) Crop(bound instant.Span) error {
	if bound.IsZero() {
		return errors.Wrap(errs.ErrInvalidRange, "absent bound")
	}
	if m.unit != format.UnitNone && bound.Unit() != m.unit {
		return errs.UnitMismatch(m.unit, bound.Unit())
	}

	lo, hi := bound.Start().Value(), bound.End().Value()
	nodes := m.nodes()
	m.tree.Clear(false)
	for _, n := range nodes {
		n.start, n.end = max(n.start, lo), min(n.end, hi)
		if n.start < n.end {
			m.tree.ReplaceOrInsert(n)
		}
	}

	return nil
}

// Equal reports whether m and o hold equal values over the same runs.
func (m *Map[V]) Equal(o *Map[V]) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m.IsEmpty() {
		return true
	}
	if m.unit != o.unit {
		return false
	}

	a, b := m.nodes(), o.nodes()
	for i := range a {
		if a[i].start != b[i].start || a[i].end != b[i].end || !m.equal(a[i].value, b[i].value) {
			return false
		}
	}

	return true
}

// Hash returns a fingerprint of the runs. Values are hashed with the
// function given to WithValueHash, or through their default fmt formatting.
func (m *Map[V]) Hash() uint64 {
	f := hash.New(byte(m.unit))
	m.tree.Ascend(func(n node[V]) bool {
		f.Int64(n.start)
		f.Int64(n.end)
		f.Int64(int64(m.hashValue(n.value))) //nolint:gosec
		return true
	})

	return f.Sum64()
}

func formatHash[V any](v V) uint64 {
	return hash.ID(fmt.Sprint(v))
}

// String renders the runs as space separated "[start,end)=value" items.
func (m *Map[V]) String() string {
	var sb strings.Builder
	m.tree.Ascend(func(n node[V]) bool {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "[%d,%d)=%v", n.start, n.end, n.value)
		return true
	})

	return sb.String()
}

func (m *Map[V]) set(s, e int64, v V) {
	// a run starting before s either merges with the new run or is truncated
	if prev, ok := m.before(s); ok {
		switch {
		case m.equal(prev.value, v) && prev.end >= s:
			s = prev.start
			e = max(e, prev.end)
		case prev.end > s:
			m.tree.ReplaceOrInsert(node[V]{prev.start, s, prev.value})
			if prev.end > e {
				m.tree.ReplaceOrInsert(node[V]{e, prev.end, prev.value})
				m.tree.ReplaceOrInsert(node[V]{s, e, v})
				return
			}
		}
	}

	inside := m.startingIn(s, e)

	// only the last run inside can reach past e
	var tail *node[V]
	if n := len(inside); n > 0 && inside[n-1].end > e {
		last := inside[n-1]
		if m.equal(last.value, v) {
			e = last.end
		} else {
			tail = &node[V]{e, last.end, last.value}
		}
	}
	for _, n := range inside {
		m.tree.Delete(n)
	}

	if tail != nil {
		m.tree.ReplaceOrInsert(*tail)
	} else if next, ok := m.tree.Get(node[V]{start: e}); ok && m.equal(next.value, v) {
		m.tree.Delete(next)
		e = next.end
	}
	m.tree.ReplaceOrInsert(node[V]{s, e, v})
}

func (m *Map[V]) remove(s, e int64) bool {
	changed := false
	if prev, ok := m.before(s); ok && prev.end > s {
		m.tree.ReplaceOrInsert(node[V]{prev.start, s, prev.value})
		if prev.end > e {
			m.tree.ReplaceOrInsert(node[V]{e, prev.end, prev.value})
		}
		changed = true
	}

	for _, n := range m.startingIn(s, e) {
		m.tree.Delete(n)
		if n.end > e {
			m.tree.ReplaceOrInsert(node[V]{e, n.end, n.value})
		}
		changed = true
	}

	return changed
}

// before returns the last run starting strictly before k.
func (m *Map[V]) before(k int64) (node[V], bool) {
	var out node[V]
	found := false
	m.tree.DescendLessOrEqual(node[V]{start: k}, func(n node[V]) bool {
		if n.start == k {
			return true
		}
		out, found = n, true

		return false
	})

	return out, found
}

// atOrBefore returns the last run starting at or before k.
func (m *Map[V]) atOrBefore(k int64) (node[V], bool) {
	var out node[V]
	found := false
	m.tree.DescendLessOrEqual(node[V]{start: k}, func(n node[V]) bool {
		out, found = n, true
		return false
	})

	return out, found
}

// atOrAfter returns the first run starting at or after k.
func (m *Map[V]) atOrAfter(k int64) (node[V], bool) {
	var out node[V]
	found := false
	m.tree.AscendGreaterOrEqual(node[V]{start: k}, func(n node[V]) bool {
		out, found = n, true
		return false
	})

	return out, found
}

func (m *Map[V]) startingIn(s, e int64) []node[V] {
	var out []node[V]
	m.tree.AscendRange(node[V]{start: s}, node[V]{start: e}, func(n node[V]) bool {
		out = append(out, n)
		return true
	})

	return out
}

func (m *Map[V]) nodes() []node[V] {
	out := make([]node[V], 0, m.tree.Len())
	m.tree.Ascend(func(n node[V]) bool {
		out = append(out, n)
		return true
	})

	return out
}

func (m *Map[V]) bounds(start, stop instant.Instant) (int64, int64, error) {
	if start.IsZero() || stop.IsZero() {
		return 0, 0, errors.Wrap(errs.ErrInvalidRange, "absent interval bound")
	}
	if start.Unit() != stop.Unit() {
		return 0, 0, errs.UnitMismatch(start.Unit(), stop.Unit())
	}
	if m.unit != format.UnitNone && start.Unit() != m.unit {
		return 0, 0, errs.UnitMismatch(m.unit, start.Unit())
	}
	if start.Value() >= stop.Value() {
		return 0, 0, errors.Wrapf(errs.ErrInvalidRange, "interval [%s,%s) is empty", start, stop)
	}

	return start.Value(), stop.Value(), nil
}

func (m *Map[V]) bind(unit format.Unit) {
	if m.unit == format.UnitNone {
		m.unit = unit
	}
}

func (m *Map[V]) span(s, e int64) instant.Span {
	return instant.Must(instant.NewSpan(instant.Of(m.unit, s), instant.Of(m.unit, e)))
}
