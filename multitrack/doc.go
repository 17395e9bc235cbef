// Package multitrack merges several piecewise-constant tracks into one
// synchronized sequence of segments.
//
// Each track is a run-length map or a range viewed through the Track
// interface. A merge walks all tracks at once and cuts the axis wherever any
// track changes value, so that every segment carries exactly one value per
// track:
//
//	a: [1,10)=1
//	b:       [6,10)=1
//
//	merge: [1,6)=(1, nil)  [6,10)=(1, 1)
//
// Stretches where no track holds a value produce no segment.
//
// # Borrowing
//
// A Merge borrows its tracks and copies nothing. Mutating a track while an
// Iterator over it, or an All or Within sequence, is live leaves the
// iteration undefined. Start a fresh iteration after the write.
package multitrack
