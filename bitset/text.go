package bitset

import (
	"iter"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/ranges"
)

// Runs yields the first and last frame of every maximal run of set frames,
// in ascending order.
func (r *Range) Runs() iter.Seq2[int32, int32] {
	return func(yield func(int32, int32) bool) {
		if r.IsEmpty() {
			return
		}
		if r.contiguous {
			yield(r.begin, r.end)
			return
		}

		inRun := false
		var start int32
		for i, w := range r.words {
			off := (r.base() + int32(i)) << wordShift //nolint:gosec
			for pos := 0; pos < wordBits; {
				if !inRun {
					rest := w >> pos
					if rest == 0 {
						break
					}
					pos += bits.TrailingZeros32(rest)
					start, inRun = off+int32(pos), true //nolint:gosec
					continue
				}
				rest := ^w >> pos
				if rest == 0 {
					break
				}
				pos += bits.TrailingZeros32(rest)
				inRun = false
				if !yield(start, off+int32(pos)-1) { //nolint:gosec
					return
				}
			}
		}
		if inRun {
			yield(start, r.end)
		}
	}
}

// Split returns the maximal contiguous pieces of r in ascending order.
func (r *Range) Split() []*Range {
	var out []*Range
	for lo, hi := range r.Runs() {
		out = append(out, &Range{begin: lo, end: hi, words: genMask(lo, hi), contiguous: true})
	}

	return out
}

// String renders the runs as "1:5, 9:9, 12:20", or "NULL" when empty.
func (r *Range) String() string {
	if r.IsEmpty() {
		return "NULL"
	}

	var sb strings.Builder
	for lo, hi := range r.Runs() {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(lo), 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(int64(hi), 10))
	}

	return sb.String()
}

// Parse reads the String form back. Tokens are "a:b" inclusive runs or bare
// frames, separated by commas or spaces; "NULL" and the empty string are the
// empty range.
func Parse(s string) (*Range, error) {
	text := strings.TrimSpace(s)
	out := Empty()
	if text == "" || text == "NULL" {
		return out, nil
	}

	tokens := strings.FieldsFunc(text, func(c rune) bool {
		return c == ',' || c == ' ' || c == '\t'
	})
	for _, tok := range tokens {
		first, last, found := strings.Cut(tok, ":")
		if !found {
			last = first
		}
		lo, err := strconv.ParseInt(first, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrInvalidRange, "malformed frame span %q", tok)
		}
		hi, err := strconv.ParseInt(last, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrInvalidRange, "malformed frame span %q", tok)
		}
		if hi < lo {
			return nil, errors.Wrapf(errs.ErrInvalidRange, "inverted frame span %q", tok)
		}
		run, err := New(int32(lo), int32(hi))
		if err != nil {
			return nil, errors.Wrapf(err, "in frame span %q", tok)
		}
		out = out.Union(run)
	}

	return out, nil
}

// FromRange converts a frame range. Ranges reaching below frame zero fail
// with errs.ErrNegativeIndex.
func FromRange(src *ranges.Range) (*Range, error) {
	out := Empty()
	if src.IsEmpty() {
		return out, nil
	}
	if src.Unit() != format.UnitFrame {
		return nil, errs.UnitMismatch(format.UnitFrame, src.Unit())
	}

	for span := range src.All() {
		run, err := New(int32(span.Start().Value()), int32(span.Last().Value())) //nolint:gosec
		if err != nil {
			return nil, err
		}
		out = out.Union(run)
	}

	return out, nil
}

// ToRange converts r to a frame range of half-open spans. A run ending on
// the last frame of the axis has no half-open end and fails with
// errs.ErrInvalidRange.
func (r *Range) ToRange() (*ranges.Range, error) {
	out := ranges.Empty(format.UnitFrame)
	for lo, hi := range r.Runs() {
		if hi == math.MaxInt32 {
			return nil, errors.Wrapf(errs.ErrInvalidRange, "run %d:%d has no half-open end", lo, hi)
		}
		span, err := instant.NewFrameSpan(lo, hi+1)
		if err != nil {
			return nil, err
		}
		if _, err := out.Add(span); err != nil {
			return nil, err
		}
	}

	return out, nil
}
