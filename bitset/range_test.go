package bitset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/ranges"
)

func mustNew(t *testing.T, begin, end int32) *Range {
	t.Helper()

	r, err := New(begin, end)
	require.NoError(t, err)

	return r
}

func mustParse(t *testing.T, s string) *Range {
	t.Helper()

	r, err := Parse(s)
	require.NoError(t, err)

	return r
}

// randomRange returns a range over [0, limit) and the frames it holds.
func randomRange(t *testing.T, rng *rand.Rand, limit int32) (*Range, map[int32]bool) {
	t.Helper()

	r := Empty()
	set := map[int32]bool{}
	for range rng.Intn(6) {
		lo := rng.Int31n(limit)
		hi := min(lo+rng.Int31n(70), limit-1)
		r = r.Union(mustNew(t, lo, hi))
		for x := lo; x <= hi; x++ {
			set[x] = true
		}
	}

	return r, set
}

// requireCropped checks the representation invariants every mutator restores.
func requireCropped(t *testing.T, r *Range) {
	t.Helper()

	if r.IsEmpty() {
		require.Equal(t, int32(0), r.Begin())
		require.Equal(t, int32(-1), r.End())
		require.True(t, r.IsContiguous())
		return
	}
	require.NotZero(t, r.words[0])
	require.NotZero(t, r.words[len(r.words)-1])
	require.True(t, r.Contains(r.Begin()))
	require.True(t, r.Contains(r.End()))
	require.False(t, r.Contains(r.Begin()-1))
	require.False(t, r.Contains(r.End()+1))
	require.Equal(t, r.NumFrames() == r.Size(), r.IsContiguous())
}

func TestNew(t *testing.T) {
	r := mustNew(t, 30, 70)
	require.Equal(t, int32(30), r.Begin())
	require.Equal(t, int32(70), r.End())
	require.True(t, r.IsContiguous())
	require.Equal(t, int64(41), r.NumFrames())
	require.Equal(t, int64(41), r.Size())
	require.Len(t, r.words, 3)
	requireCropped(t, r)

	require.True(t, mustNew(t, 5, 4).IsEmpty())

	_, err := New(-1, 4)
	require.ErrorIs(t, err, errs.ErrNegativeIndex)
}

func TestGenMask(t *testing.T) {
	tests := []struct {
		begin, end int32
		want       []uint32
	}{
		{0, 0, []uint32{0x1}},
		{0, 31, []uint32{0xFFFFFFFF}},
		{4, 7, []uint32{0xF0}},
		{31, 32, []uint32{0x80000000, 0x1}},
		{33, 95, []uint32{0xFFFFFFFE, 0xFFFFFFFF}},
		{64, 64, []uint32{0x1}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, genMask(tt.begin, tt.end), "%d:%d", tt.begin, tt.end)
	}
}

func TestZeroValue(t *testing.T) {
	var r Range
	require.True(t, r.IsEmpty())
	require.False(t, r.Contains(0))
	require.Equal(t, "NULL", r.String())
	require.Equal(t, int64(0), r.NumFrames())

	require.NoError(t, r.Set(3))
	require.Equal(t, "3:3", r.String())
}

func TestSetAlgebraLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range 300 {
		a, as := randomRange(t, rng, 200)
		b, bs := randomRange(t, rng, 200)

		u, i, m := a.Union(b), a.Intersect(b), a.Minus(b)
		requireCropped(t, u)
		requireCropped(t, i)
		requireCropped(t, m)

		shared := false
		for x := int32(-2); x < 210; x++ {
			require.Equal(t, as[x] || bs[x], u.Contains(x), "union at %d", x)
			require.Equal(t, as[x] && bs[x], i.Contains(x), "intersection at %d", x)
			require.Equal(t, as[x] && !bs[x], m.Contains(x), "difference at %d", x)
			shared = shared || (as[x] && bs[x])
		}
		require.Equal(t, shared, a.Intersects(b))
		require.Equal(t, int64(len(as)), a.NumFrames())
	}
}

func TestIntersectWith(t *testing.T) {
	r := mustParse(t, "1:40, 60:100")
	r.IntersectWith(mustParse(t, "30:70"))
	require.Equal(t, "30:40, 60:70", r.String())
	requireCropped(t, r)

	r.IntersectWith(mustParse(t, "200:300"))
	require.True(t, r.IsEmpty())
}

func TestSetClear(t *testing.T) {
	r := mustNew(t, 10, 20)

	require.NoError(t, r.Set(40))
	require.Equal(t, "10:20, 40:40", r.String())
	require.False(t, r.IsContiguous())

	require.NoError(t, r.Clear(40))
	require.Equal(t, "10:20", r.String())
	require.True(t, r.IsContiguous())
	require.Len(t, r.words, 1)

	require.NoError(t, r.Clear(15))
	require.Equal(t, "10:14, 16:20", r.String())

	require.NoError(t, r.Clear(10))
	require.Equal(t, int32(11), r.Begin())

	require.ErrorIs(t, r.Set(-1), errs.ErrNegativeIndex)
	require.ErrorIs(t, r.Clear(-1), errs.ErrNegativeIndex)
	requireCropped(t, r)
}

func TestClearRange(t *testing.T) {
	r := mustNew(t, 0, 100)

	require.NoError(t, r.ClearRange(20, 79))
	require.Equal(t, "0:19, 80:100", r.String())

	require.NoError(t, r.ClearRange(0, 19))
	require.Equal(t, "80:100", r.String())
	require.True(t, r.IsContiguous())
	requireCropped(t, r)

	require.NoError(t, r.ClearRange(500, 600))
	require.Equal(t, "80:100", r.String())

	require.ErrorIs(t, r.ClearRange(-5, 3), errs.ErrNegativeIndex)
	require.ErrorIs(t, r.ClearRange(9, 3), errs.ErrInvalidRange)

	require.NoError(t, r.ClearRange(0, 1000))
	require.True(t, r.IsEmpty())
}

func TestShift(t *testing.T) {
	r := mustNew(t, 100, 150)

	require.NoError(t, r.Shift(-75))
	require.Equal(t, int32(25), r.Begin())
	require.Equal(t, int32(75), r.End())
	require.Equal(t, "25:75", r.String())

	r = mustNew(t, 100, 150)
	err := r.Shift(-200)
	require.ErrorIs(t, err, errs.ErrNegativeIndex)
	require.Equal(t, "100:150", r.String(), "a rejected shift leaves the range unchanged")

	require.NoError(t, r.Shift(0))
	require.Equal(t, "100:150", r.String())
}

func TestShift_Discontiguous(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for range 300 {
		r, set := randomRange(t, rng, 300)
		if r.IsEmpty() {
			continue
		}
		delta := rng.Int31n(200) - r.Begin()
		if rng.Intn(2) == 0 {
			delta = rng.Int31n(200)
		}

		shifted := r.Clone()
		require.NoError(t, shifted.Shift(delta))
		requireCropped(t, shifted)
		require.Equal(t, r.NumFrames(), shifted.NumFrames())
		require.Equal(t, r.IsContiguous(), shifted.IsContiguous())
		for x := range set {
			require.True(t, shifted.Contains(x+delta), "frame %d shifted by %d", x, delta)
		}

		back := shifted.Clone()
		require.NoError(t, back.Shift(-delta))
		require.True(t, r.Equal(back), "%s -> %s -> %s", r, shifted, back)
	}
}

func TestSplit(t *testing.T) {
	r := mustParse(t, "1:5, 9, 12:20, 31:33, 64:64")

	parts := r.Split()
	require.Len(t, parts, 5)
	got := make([]string, len(parts))
	for i, p := range parts {
		require.True(t, p.IsContiguous())
		got[i] = p.String()
	}
	require.Equal(t, []string{"1:5", "9:9", "12:20", "31:33", "64:64"}, got)

	require.Empty(t, Empty().Split())
	require.Len(t, mustNew(t, 3, 90).Split(), 1)
}

func TestNumFrames(t *testing.T) {
	r := mustParse(t, "1:5, 9, 12:20")
	require.Equal(t, int64(15), r.NumFrames())
	require.Equal(t, int64(20), r.Size())

	r = mustParse(t, "0:31, 33, 64:200")
	require.Equal(t, int64(32+1+137), r.NumFrames())
}

func TestEqualCloneHash(t *testing.T) {
	a := mustParse(t, "1:5, 40:50")
	b := mustNew(t, 40, 50).Union(mustNew(t, 1, 5))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := a.Clone()
	require.NoError(t, c.Set(6))
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Equal(t, "1:5, 40:50", a.String())

	assert.True(t, Empty().Equal(&Range{}))
}

func TestRangeConversion(t *testing.T) {
	src, err := ranges.ParseFrameRange("1:9, 30:31, 33:100")
	require.NoError(t, err)

	b, err := FromRange(src)
	require.NoError(t, err)
	require.Equal(t, "1:9, 30:31, 33:100", b.String())

	back, err := b.ToRange()
	require.NoError(t, err)
	require.True(t, src.Equal(back))

	neg, err := ranges.ParseFrameRange("-3:4")
	require.NoError(t, err)
	_, err = FromRange(neg)
	require.ErrorIs(t, err, errs.ErrNegativeIndex)

	tr, err := ranges.ParseTimeRange("1:9")
	require.NoError(t, err)
	_, err = FromRange(tr)
	require.ErrorIs(t, err, errs.ErrUnitMismatch)
}

func BenchmarkUnion(b *testing.B) {
	x, _ := Parse("0:100, 200:4000, 5000:5001, 9000:20000")
	y, _ := Parse("50:300, 3000:6000, 19000:30000")

	for b.Loop() {
		x.Union(y)
	}
}

func BenchmarkShift(b *testing.B) {
	x, _ := Parse("0:100, 200:4000, 5000:5001, 9000:20000")

	for b.Loop() {
		c := x.Clone()
		_ = c.Shift(13)
	}
}
