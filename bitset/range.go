package bitset

import (
	"math/bits"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/internal/hash"
)

const (
	wordBits  = 32
	wordShift = 5
	wordMask  = wordBits - 1
	allOnes   = ^uint32(0)
)

// nibbleCount[n] is the number of set bits in the 4-bit value n.
var nibbleCount = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

// Range is a set of non-negative frame numbers stored as a bit vector.
//
// Bit i of words[w] marks frame (begin>>5 + w)*32 + i. The first and last
// words are never zero, begin and end are the first and last set frames
// (inclusive), and contiguous records whether every frame in between is set.
// An empty Range has begin 0 and end -1.
//
// The zero Range is empty and ready to use. A Range is not safe for
// concurrent mutation.
type Range struct {
	begin, end int32
	words      []uint32
	contiguous bool
}

// New returns the contiguous range of frames begin through end, inclusive.
// It returns an empty range when begin > end.
func New(begin, end int32) (*Range, error) {
	if begin < 0 {
		return nil, errors.Wrapf(errs.ErrNegativeIndex, "frame %d", begin)
	}
	if begin > end {
		return Empty(), nil
	}

	return &Range{begin: begin, end: end, words: genMask(begin, end), contiguous: true}, nil
}

// Empty returns a range without frames.
func Empty() *Range {
	return &Range{begin: 0, end: -1, contiguous: true}
}

// Begin returns the first set frame, or 0 when empty.
func (r *Range) Begin() int32 {
	return r.begin
}

// End returns the last set frame, or -1 when empty.
func (r *Range) End() int32 {
	if len(r.words) == 0 {
		return -1
	}

	return r.end
}

// IsEmpty reports whether no frame is set.
func (r *Range) IsEmpty() bool {
	return len(r.words) == 0
}

// IsContiguous reports whether every frame from Begin to End is set. Empty
// ranges are contiguous.
func (r *Range) IsContiguous() bool {
	return r.IsEmpty() || r.contiguous
}

// Size returns the number of frames from Begin to End, set or not.
func (r *Range) Size() int64 {
	if r.IsEmpty() {
		return 0
	}

	return int64(r.end) - int64(r.begin) + 1
}

// NumFrames returns the number of set frames.
func (r *Range) NumFrames() int64 {
	if r.IsEmpty() {
		return 0
	}
	if r.contiguous {
		return r.Size()
	}

	var n int64
	for _, w := range r.words {
		if w == allOnes {
			n += wordBits
			continue
		}
		for ; w != 0; w >>= 4 {
			n += int64(nibbleCount[w&0xF])
		}
	}

	return n
}

// Contains reports whether frame is set.
func (r *Range) Contains(frame int32) bool {
	if frame < r.begin || frame > r.end || r.IsEmpty() {
		return false
	}

	return r.word(frame>>wordShift)&(1<<(frame&wordMask)) != 0
}

// Equal reports whether r and o hold the same frames.
func (r *Range) Equal(o *Range) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return r.IsEmpty() == o.IsEmpty()
	}
	if r.begin != o.begin || r.end != o.end || len(r.words) != len(o.words) {
		return false
	}
	for i, w := range r.words {
		if o.words[i] != w {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of r.
func (r *Range) Clone() *Range {
	c := *r
	if r.words != nil {
		c.words = make([]uint32, len(r.words))
		copy(c.words, r.words)
	}

	return &c
}

// Hash returns a fingerprint of the set frames.
func (r *Range) Hash() uint64 {
	f := hash.New('b')
	if r.IsEmpty() {
		return f.Sum64()
	}
	f.Int64(int64(r.begin >> wordShift))
	for _, w := range r.words {
		f.Uint32(w)
	}

	return f.Sum64()
}

// base is the absolute index of words[0].
func (r *Range) base() int32 {
	return r.begin >> wordShift
}

// word returns the word at absolute index abs, or zero outside the vector.
func (r *Range) word(abs int32) uint32 {
	i := abs - r.base()
	if i < 0 || int(i) >= len(r.words) {
		return 0
	}

	return r.words[i]
}

func (r *Range) reset() {
	r.begin, r.end = 0, -1
	r.words = nil
	r.contiguous = true
}

// assign moves the state of o into r.
func (r *Range) assign(o *Range) {
	r.begin, r.end, r.words, r.contiguous = o.begin, o.end, o.words, o.contiguous
}

// helpCrop trims zero words from both ends, recomputes begin and end from the
// first and last set bits, and recomputes contiguous. Every mutator ends with it.
func (r *Range) helpCrop() {
	lo, hi := 0, len(r.words)
	for lo < hi && r.words[lo] == 0 {
		lo++
	}
	for hi > lo && r.words[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		r.reset()
		return
	}

	base := r.base() + int32(lo) //nolint:gosec
	r.words = r.words[lo:hi]
	last := int32(len(r.words) - 1) //nolint:gosec
	r.begin = base<<wordShift + int32(bits.TrailingZeros32(r.words[0]))
	r.end = (base+last)<<wordShift + int32(wordMask-bits.LeadingZeros32(r.words[last]))
	r.contiguous = isFull(r.words, r.begin, r.end)
}

// genMask returns the words covering begin through end, inclusive, with every
// frame in between set. begin must not exceed end.
func genMask(begin, end int32) []uint32 {
	n := end>>wordShift - begin>>wordShift + 1
	words := make([]uint32, n)
	for i := range words {
		words[i] = allOnes
	}
	words[0] &= allOnes << (begin & wordMask)
	words[n-1] &= allOnes >> (wordMask - end&wordMask)

	return words
}

// isFull reports whether words, based at begin>>5, equal genMask(begin, end).
func isFull(words []uint32, begin, end int32) bool {
	n := len(words)
	if int32(n) != end>>wordShift-begin>>wordShift+1 { //nolint:gosec
		return false
	}
	for i, w := range words {
		want := allOnes
		if i == 0 {
			want &= allOnes << (begin & wordMask)
		}
		if i == n-1 {
			want &= allOnes >> (wordMask - end&wordMask)
		}
		if w != want {
			return false
		}
	}

	return true
}
