package rlmap

import (
	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
)

// FirstBefore returns the start of the last run starting strictly before p.
func (m *Map[V]) FirstBefore(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}

	return m.startOf(m.before(p.Value()))
}

// FirstBeforeOrAt returns the start of the last run starting at or before p.
func (m *Map[V]) FirstBeforeOrAt(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}

	return m.startOf(m.atOrBefore(p.Value()))
}

// FirstAfterOrAt returns the start of the first run starting at or after p.
func (m *Map[V]) FirstAfterOrAt(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}

	return m.startOf(m.atOrAfter(p.Value()))
}

// FirstAfter returns the start of the first run starting strictly after p.
func (m *Map[V]) FirstAfter(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit || p.Equal(instant.Omega(m.unit)) {
		return instant.Instant{}, false
	}

	return m.startOf(m.atOrAfter(p.Value() + 1))
}

// EndOf returns the end of the run that covers p or ends exactly at p.
func (m *Map[V]) EndOf(p instant.Instant) (instant.Instant, bool) {
	if p.Unit() != m.unit {
		return instant.Instant{}, false
	}
	n, ok := m.atOrBefore(p.Value())
	if !ok || n.end < p.Value() {
		return instant.Instant{}, false
	}
	if n.end == p.Value() {
		// a run starting at p takes precedence over one ending there
		if next, found := m.tree.Get(node[V]{start: p.Value()}); found {
			n = next
		}
	}

	return instant.Of(m.unit, n.end), true
}

// Transform replaces every value v with fn(v), coalescing runs that become
// equal to their neighbor.
func (m *Map[V]) Transform(fn func(V) V) {
	nodes := m.nodes()
	m.tree.Clear(false)

	var cur node[V]
	for i, n := range nodes {
		n.value = fn(n.value)
		if i > 0 && cur.end == n.start && m.equal(cur.value, n.value) {
			cur.end = n.end
			continue
		}
		if i > 0 {
			m.tree.ReplaceOrInsert(cur)
		}
		cur = n
	}
	if len(nodes) > 0 {
		m.tree.ReplaceOrInsert(cur)
	}
}

// AddAll writes every run of o into m and reports whether any instant of m
// changed value. Writing a run that m already holds with an equal value is
// not a change.
func (m *Map[V]) AddAll(o *Map[V]) (bool, error) {
	if o.IsEmpty() {
		return false, nil
	}
	if m.unit != format.UnitNone && o.unit != m.unit {
		return false, errs.UnitMismatch(m.unit, o.unit)
	}
	m.bind(o.unit)

	changed := false
	for _, n := range o.nodes() {
		// m is coalesced, so an unchanged write lies inside a single run
		if cur, ok := m.atOrBefore(n.start); ok && cur.end >= n.end && m.equal(cur.value, n.value) {
			continue
		}
		m.set(n.start, n.end, n.value)
		changed = true
	}

	return changed, nil
}

func (m *Map[V]) startOf(n node[V], ok bool) (instant.Instant, bool) {
	if !ok {
		return instant.Instant{}, false
	}

	return instant.Of(m.unit, n.start), true
}
