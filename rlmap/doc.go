// Package rlmap implements Map, a run-length encoded ordered map from
// intervals of the tempo axis to values.
//
// A Map stores one entry per maximal run of equal values. Writing a value
// over an interval truncates or splits the runs it overlaps and merges with
// touching runs of an equal value, so the map is always fully coalesced:
//
//	m, _ := rlmap.New[string]()
//	_ = m.Set(instant.Frame(1), instant.Frame(5), "walk")
//	_ = m.Set(instant.Frame(5), instant.Frame(9), "walk")
//	m.Len() // 1, the run [1,9)
//
// Runs are kept in a B-tree keyed by start instant, giving O(log n) point
// lookups and interval writes.
//
// # Absence
//
// An instant covered by no run has no value. Get reports absence with its
// boolean result, and Assign with a nil value removes.
//
// # Iteration
//
// Cursor, All and Within produce finite, single-pass sequences of runs clipped
// to a bound. IntVector layers counting on top of Map for coverage overlays.
//
// Maps are not safe for concurrent mutation, and writing to a map while one of
// its cursors is live is undefined.
package rlmap
