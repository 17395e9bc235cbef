// Package instant provides the discrete points and half-open intervals of the
// tempo axis, and the frame rate that converts between its two units.
//
// # Units
//
// An Instant lives on exactly one of two incompatible axes:
//
//   - format.UnitFrame: 32-bit frame numbers, as used by annotation tracks
//   - format.UnitTime: 64-bit microseconds
//
// Arithmetic and comparison across units fail with errs.ErrUnitMismatch. Mixed
// unit data must be converted with a FrameRate first:
//
//	rate, _ := instant.NewRationalFrameRate(30000, 1001) // 29.97 fps
//	t, _ := rate.AsTime(instant.Frame(301))               // 10.01s
//
// # Spans
//
// A Span is the immutable half-open interval [start, end). Its textual form is
// inclusive, matching the annotation file format:
//
//	s, _ := instant.ParseFrameSpan("11:20") // [11,21)
//	s.String()                              // "11:20"
//	s.HalfOpen()                            // "[11,21)"
//
// # Thread Safety
//
// Instant, Span and FrameRate are immutable values and safe for concurrent use.
package instant
