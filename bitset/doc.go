// Package bitset implements Range, a discontiguous set of non-negative frame
// numbers stored as a word-aligned bit vector.
//
// Set algebra (Union, Intersect, Minus) works a 32-bit word at a time over
// the words both operands cover. After every mutation the vector is cropped:
// leading and trailing zero words are dropped, Begin and End are moved to the
// first and last set frame, and the contiguity flag is recomputed.
//
// Frames are inclusive in this package, as in the annotation text form:
//
//	r, _ := bitset.Parse("1:5, 9, 12:20")
//	r.String()     // "1:5, 9:9, 12:20"
//	r.NumFrames()  // 15
//
// Frame numbers are never negative. Constructors, Set and Shift fail with
// errs.ErrNegativeIndex rather than produce a negative frame.
//
// Memory grows with End-Begin, not with the number of set frames; use
// ranges.Range for sparse data spread over a wide axis.
package bitset
