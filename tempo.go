// Package tempo provides an interval algebra over a discrete time axis that is
// either frame indexed or microsecond indexed.
//
// Tempo is built for video annotation data: which frames an object is visible
// on, what label it carries over which stretch of frames, and how several such
// tracks line up against each other.
//
// # Core Types
//
//   - instant.Instant and instant.Span: unit-safe points and half-open spans
//   - instant.FrameRate: exact or decimal conversion between frames and time
//   - ranges.Range: an ordered set of disjoint spans
//   - rlmap.Map: a run-length encoded map from spans to values, B-tree backed
//   - bitset.Range: a non-negative frame set held as a bit vector
//   - multitrack.Merge: a synchronized walk over several tracks
//
// # Basic Usage
//
// Parsing annotation ranges and combining them:
//
//	import "github.com/arloliu/tempo"
//
//	visible, _ := tempo.ParseFrameRange("1:9, 30:31")
//	occluded, _ := tempo.ParseFrameRange("5:7")
//	seen, _ := visible.Minus(occluded)
//	fmt.Println(seen) // [1,5) [8,10) [30,32)
//
// Labelling stretches of frames and merging tracks:
//
//	pose, _ := tempo.NewRunLengthMap[string]()
//	pose.Set(instant.Frame(1), instant.Frame(10), "standing")
//
//	merged, _ := tempo.MergeMaps(pose, other)
//	for seg := range merged.All() {
//	    fmt.Println(seg.Span, seg.Values)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the sub-packages
// for the most common use cases. For fine-grained control, use the
// sub-packages directly.
package tempo

import (
	"github.com/arloliu/tempo/bitset"
	"github.com/arloliu/tempo/instant"
	"github.com/arloliu/tempo/internal/hash"
	"github.com/arloliu/tempo/multitrack"
	"github.com/arloliu/tempo/ranges"
	"github.com/arloliu/tempo/rlmap"
)

// ParseFrameRange parses a frame range such as "12:19 24 30:100", "1:9, 30:31"
// or "[12,20) [24,25)".
func ParseFrameRange(s string) (*ranges.Range, error) {
	return ranges.ParseFrameRange(s)
}

// ParseTimeRange parses a microsecond range in the same notations as ParseFrameRange.
func ParseTimeRange(s string) (*ranges.Range, error) {
	return ranges.ParseTimeRange(s)
}

// NewRunLengthMap creates an empty run-length map for comparable values.
//
// Available options:
//   - rlmap.WithDegree(n): B-tree degree, at least 2
//   - rlmap.WithUnit(unit): bind the map to a unit before the first write
func NewRunLengthMap[V comparable](opts ...rlmap.Option) (*rlmap.Map[V], error) {
	return rlmap.New[V](opts...)
}

// NewFrameSet creates the bit-vector frame set holding begin through end, inclusive.
func NewFrameSet(begin, end int32) (*bitset.Range, error) {
	return bitset.New(begin, end)
}

// NTSC returns the exact 30000/1001 frame rate.
func NTSC() instant.FrameRate {
	rate, _ := instant.NewRationalFrameRate(30000, 1001)

	return rate
}

// Merge creates a merge over arbitrary tracks. Use multitrack.FromMap and
// multitrack.FromRange to adapt maps and ranges.
func Merge(tracks ...multitrack.Track) (*multitrack.Merge, error) {
	return multitrack.New(tracks...)
}

// MergeMaps creates a merge over run-length maps of one value type.
//
// The maps are borrowed; writing to any of them while iterating the merge is
// undefined.
func MergeMaps[V any](maps ...*rlmap.Map[V]) (*multitrack.Merge, error) {
	tracks := make([]multitrack.Track, len(maps))
	for i, m := range maps {
		tracks[i] = multitrack.FromMap(m)
	}

	return multitrack.New(tracks...)
}

// TrackID returns a stable 64-bit identifier for a track name, such as an
// object or attribute label.
//
// Example:
//
//	tracks := map[uint64]*rlmap.Map[string]{}
//	tracks[tempo.TrackID("person.1")] = pose
func TrackID(name string) uint64 {
	return hash.ID(name)
}
