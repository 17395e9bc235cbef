// Package ranges implements Range, an ordered set of disjoint spans over a
// single instant unit.
//
// A Range keeps its spans sorted, pairwise disjoint and non-adjacent: adding
// [5,10) to a range holding [1,5) yields the single span [1,10). Adds and
// removes locate their neighbors by binary search.
//
// Ranges read and write the annotation text forms:
//
//	r, _ := ranges.ParseFrameRange("1:9, 30:31")
//	r.String()                              // "[1,10) [30,32)"
//	r.Format(format.NotationInclusive)      // "1:9, 30:31"
//
// Operations that combine a range with spans, instants or other ranges of a
// different unit fail with errs.ErrUnitMismatch and leave the range unchanged.
//
// A Range is not safe for concurrent mutation.
package ranges
