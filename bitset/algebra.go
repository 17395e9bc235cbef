package bitset

// Union returns the frames set in r or o.
func (r *Range) Union(o *Range) *Range {
	switch {
	case o.IsEmpty():
		return r.Clone()
	case r.IsEmpty():
		return o.Clone()
	}

	begin, end := min(r.begin, o.begin), max(r.end, o.end)
	base := begin >> wordShift
	words := make([]uint32, end>>wordShift-base+1)
	orInto(words, base, r)
	orInto(words, base, o)

	out := &Range{begin: begin, end: end, words: words}
	out.helpCrop()

	return out
}

// Intersect returns the frames set in both r and o.
func (r *Range) Intersect(o *Range) *Range {
	if r.IsEmpty() || o.IsEmpty() || r.end < o.begin || o.end < r.begin {
		return Empty()
	}

	lo := max(r.base(), o.base())
	hi := min(r.end>>wordShift, o.end>>wordShift)
	words := make([]uint32, hi-lo+1)
	for i := range words {
		abs := lo + int32(i) //nolint:gosec
		words[i] = r.word(abs) & o.word(abs)
	}

	out := &Range{begin: lo << wordShift, words: words}
	out.helpCrop()

	return out
}

// Minus returns the frames set in r and not in o.
func (r *Range) Minus(o *Range) *Range {
	out := r.Clone()
	if out.IsEmpty() || o.IsEmpty() || r.end < o.begin || o.end < r.begin {
		return out
	}

	base := out.base()
	for i := range out.words {
		out.words[i] &^= o.word(base + int32(i)) //nolint:gosec
	}
	out.helpCrop()

	return out
}

// IntersectWith keeps only the frames of r that are also set in o.
func (r *Range) IntersectWith(o *Range) {
	r.assign(r.Intersect(o))
}

// Intersects reports whether r and o share a set frame.
func (r *Range) Intersects(o *Range) bool {
	if r.IsEmpty() || o.IsEmpty() || r.end < o.begin || o.end < r.begin {
		return false
	}
	if r.contiguous && o.contiguous {
		return true
	}

	lo := max(r.base(), o.base())
	hi := min(r.end>>wordShift, o.end>>wordShift)
	for abs := lo; abs <= hi; abs++ {
		if r.word(abs)&o.word(abs) != 0 {
			return true
		}
	}

	return false
}

// orInto ORs the words of src into dst, whose first word has absolute index base.
func orInto(dst []uint32, base int32, src *Range) {
	off := src.base() - base
	for i, w := range src.words {
		dst[off+int32(i)] |= w //nolint:gosec
	}
}
