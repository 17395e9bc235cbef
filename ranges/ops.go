package ranges

import (
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
)

// AddAll inserts every span of o and reports whether r changed.
func (r *Range) AddAll(o *Range) (bool, error) {
	if err := r.checkRange(o); err != nil {
		return false, err
	}
	if o.IsEmpty() {
		return false, nil
	}
	r.unit = o.unit

	changed := false
	for _, iv := range o.spans {
		changed = r.add(iv.lo, iv.hi) || changed
	}

	return changed, nil
}

// RemoveAll deletes every span of o and reports whether r changed.
func (r *Range) RemoveAll(o *Range) (bool, error) {
	if err := r.checkRange(o); err != nil {
		return false, err
	}

	changed := false
	for _, iv := range o.spans {
		if len(r.spans) == 0 {
			break
		}
		changed = r.remove(iv.lo, iv.hi) || changed
	}

	return changed, nil
}

// Union returns a new range holding the instants of r or o.
func (r *Range) Union(o *Range) (*Range, error) {
	u := r.Clone()
	if _, err := u.AddAll(o); err != nil {
		return nil, err
	}

	return u, nil
}

// Minus returns a new range holding the instants of r that are not in o.
func (r *Range) Minus(o *Range) (*Range, error) {
	m := r.Clone()
	if _, err := m.RemoveAll(o); err != nil {
		return nil, err
	}

	return m, nil
}

// Intersect returns a new range holding the instants in both r and o.
func (r *Range) Intersect(o *Range) (*Range, error) {
	if err := r.checkRange(o); err != nil {
		return nil, err
	}

	out := &Range{unit: r.unit}
	if out.unit == format.UnitNone {
		out.unit = o.unit
	}
	a, b := r.spans, o.spans
	for i, j := 0, 0; i < len(a) && j < len(b); {
		lo, hi := max(a[i].lo, b[j].lo), min(a[i].hi, b[j].hi)
		if lo < hi {
			// inputs are disjoint and non-adjacent, so clipped pieces are too
			out.spans = append(out.spans, ival{lo, hi})
		}
		if a[i].hi < b[j].hi {
			i++
		} else {
			j++
		}
	}

	return out, nil
}

// Intersects reports whether r and o share at least one instant. It walks
// both span lists once, advancing whichever current span ends first.
func (r *Range) Intersects(o *Range) (bool, error) {
	if err := r.checkRange(o); err != nil {
		return false, err
	}
	if r.IsEmpty() || o.IsEmpty() {
		return false, nil
	}
	// disjoint extrema
	if r.spans[len(r.spans)-1].hi <= o.spans[0].lo || o.spans[len(o.spans)-1].hi <= r.spans[0].lo {
		return false, nil
	}

	a, b := r.spans, o.spans
	for i, j := 0, 0; i < len(a) && j < len(b); {
		if a[i].lo < b[j].hi && b[j].lo < a[i].hi {
			return true, nil
		}
		if a[i].hi <= b[j].hi {
			i++
		} else {
			j++
		}
	}

	return false, nil
}

// IntersectsSpan reports whether s shares at least one instant with r.
func (r *Range) IntersectsSpan(s instant.Span) (bool, error) {
	if err := r.check(s); err != nil {
		return false, err
	}
	if s.IsEmpty() {
		return false, nil
	}
	lo, hi := s.Start().Value(), s.End().Value()
	k := r.search(lo)

	return k < len(r.spans) && r.spans[k].lo < hi, nil
}
