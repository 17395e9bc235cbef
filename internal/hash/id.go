package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint accumulates an xxHash64 over a sequence of integers.
//
// Integers are written little-endian at their natural width, so a frame
// sequence and a time sequence with the same values hash differently only
// through the tag given to New.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

// New starts a fingerprint seeded with tag, which separates the hash spaces
// of different value kinds.
func New(tag byte) *Fingerprint {
	f := &Fingerprint{d: xxhash.New()}
	f.buf[0] = tag
	_, _ = f.d.Write(f.buf[:1])

	return f
}

// Int64 mixes v into the fingerprint.
func (f *Fingerprint) Int64(v int64) {
	binary.LittleEndian.PutUint64(f.buf[:], uint64(v)) //nolint:gosec
	_, _ = f.d.Write(f.buf[:8])
}

// Uint32 mixes v into the fingerprint.
func (f *Fingerprint) Uint32(v uint32) {
	binary.LittleEndian.PutUint32(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:4])
}

// Sum64 returns the fingerprint of everything mixed in so far.
func (f *Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
