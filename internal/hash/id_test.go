package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestFingerprint(t *testing.T) {
	sum := func(tag byte, vals ...int64) uint64 {
		f := New(tag)
		for _, v := range vals {
			f.Int64(v)
		}

		return f.Sum64()
	}

	require.Equal(t, sum(1, 10, 20), sum(1, 10, 20))
	require.NotEqual(t, sum(1, 10, 20), sum(2, 10, 20), "tag separates hash spaces")
	require.NotEqual(t, sum(1, 10, 20), sum(1, 20, 10), "order matters")
	require.NotEqual(t, sum(1), sum(1, 0))
}

func TestFingerprint_Words(t *testing.T) {
	a := New(3)
	a.Uint32(0xdeadbeef)
	a.Uint32(1)

	b := New(3)
	b.Uint32(0xdeadbeef)
	b.Uint32(1)

	require.Equal(t, a.Sum64(), b.Sum64())

	b.Uint32(0)
	require.NotEqual(t, a.Sum64(), b.Sum64())
}

func BenchmarkFingerprint(b *testing.B) {
	for b.Loop() {
		f := New(1)
		for i := range int64(64) {
			f.Int64(i)
		}
		f.Sum64()
	}
}
