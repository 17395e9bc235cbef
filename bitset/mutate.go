package bitset

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
)

// Set adds frame to the range, growing it as needed.
func (r *Range) Set(frame int32) error {
	if frame < 0 {
		return errors.Wrapf(errs.ErrNegativeIndex, "frame %d", frame)
	}
	if r.Contains(frame) {
		return nil
	}
	single := &Range{begin: frame, end: frame, words: genMask(frame, frame), contiguous: true}
	r.assign(r.Union(single))

	return nil
}

// Clear removes frame from the range.
func (r *Range) Clear(frame int32) error {
	if frame < 0 {
		return errors.Wrapf(errs.ErrNegativeIndex, "frame %d", frame)
	}
	if !r.Contains(frame) {
		return nil
	}
	r.words[frame>>wordShift-r.base()] &^= 1 << (frame & wordMask)
	r.helpCrop()

	return nil
}

// ClearRange removes the frames start through stop, inclusive.
func (r *Range) ClearRange(start, stop int32) error {
	if start < 0 {
		return errors.Wrapf(errs.ErrNegativeIndex, "frame %d", start)
	}
	if stop < start {
		return errors.Wrapf(errs.ErrInvalidRange, "cannot clear %d:%d", start, stop)
	}
	start, stop = max(start, r.begin), min(stop, r.end)
	if r.IsEmpty() || start > stop {
		return nil
	}

	mask := genMask(start, stop)
	off := start>>wordShift - r.base()
	for i, m := range mask {
		r.words[off+int32(i)] &^= m //nolint:gosec
	}
	r.helpCrop()

	return nil
}

// Shift moves every frame by delta. It fails with errs.ErrNegativeIndex when
// the first frame would fall below zero, leaving r unchanged.
func (r *Range) Shift(delta int32) error {
	if delta == 0 || r.IsEmpty() {
		return nil
	}
	if int64(r.begin)+int64(delta) < 0 {
		return errors.Wrapf(errs.ErrNegativeIndex, "shifting %d:%d by %d", r.begin, r.end, delta)
	}
	if int64(r.end)+int64(delta) > math.MaxInt32 {
		return errors.Wrapf(errs.ErrInvalidRange, "shifting %d:%d by %d overflows the frame axis", r.begin, r.end, delta)
	}

	begin, end := r.begin+delta, r.end+delta
	if r.contiguous {
		r.begin, r.end, r.words = begin, end, genMask(begin, end)
		r.helpCrop()

		return nil
	}

	// bit j of old word i lands at bit i*32+j+k of the new vector
	k := begin&wordMask - r.begin&wordMask
	n := int(end>>wordShift - begin>>wordShift + 1)
	words := make([]uint32, n)
	for i, w := range r.words {
		if k >= 0 {
			if i < n {
				words[i] |= w << k
			}
			if k > 0 && i+1 < n {
				words[i+1] |= w >> (wordBits - k)
			}
		} else {
			if i < n {
				words[i] |= w >> -k
			}
			if i > 0 {
				words[i-1] |= w << (wordBits + k)
			}
		}
	}
	r.begin, r.end, r.words = begin, end, words
	r.helpCrop()

	return nil
}
