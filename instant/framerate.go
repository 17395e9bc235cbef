package instant

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
)

const microsPerSecond = 1_000_000

// roundingSlack absorbs IEEE error in the decimal conversion path, so that an
// exact frame boundary such as 40000us at 25fps does not round up a frame.
const roundingSlack = 1e-9

// FrameRate converts between frame-indexed and time-indexed instants.
//
// Frame f starts at microsecond ceil((f-1)/rate), where rate is frames per
// microsecond, and microsecond t maps to frame 1+ceil(t*rate), the first
// frame starting at or after t. Frame 1 therefore starts at time 0, and a time
// strictly inside frame f maps to f+1.
//
// A rate built from a frames/seconds ratio converts with exact integer
// arithmetic; a rate built from a decimal frames-per-second value uses float64.
// The zero FrameRate is invalid.
type FrameRate struct {
	rational bool
	num, den int64 // frames per seconds as given
	frames   int64 // frames per micros, reduced
	micros   int64
	fps      float64
}

// NewFrameRate returns a decimal frame rate of fps frames per second.
func NewFrameRate(fps float64) (FrameRate, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return FrameRate{}, errors.Wrapf(errs.ErrInvalidFrameRate, "fps %v", fps)
	}

	return FrameRate{fps: fps}, nil
}

// NewRationalFrameRate returns the exact rate of frames per seconds, such as 30000/1001.
func NewRationalFrameRate(frames, seconds int64) (FrameRate, error) {
	if frames <= 0 || seconds <= 0 {
		return FrameRate{}, errors.Wrapf(errs.ErrInvalidFrameRate, "%d frames per %d seconds", frames, seconds)
	}
	if seconds > math.MaxInt64/microsPerSecond {
		return FrameRate{}, errors.Wrapf(errs.ErrInvalidFrameRate, "%d seconds overflows microseconds", seconds)
	}
	g := gcd(frames, seconds*microsPerSecond)

	return FrameRate{
		rational: true,
		num:      frames,
		den:      seconds,
		frames:   frames / g,
		micros:   seconds * microsPerSecond / g,
		fps:      float64(frames) / float64(seconds),
	}, nil
}

// IsValid reports whether r was built by one of the constructors.
func (r FrameRate) IsValid() bool {
	return r.fps > 0
}

// IsRational reports whether r converts with exact arithmetic.
func (r FrameRate) IsRational() bool {
	return r.rational
}

// FPS returns the rate in frames per second.
func (r FrameRate) FPS() float64 {
	return r.fps
}

// AsTime converts i to a time instant. Time instants are returned unchanged
// and the unit sentinels map onto each other.
func (r FrameRate) AsTime(i Instant) (Instant, error) {
	if err := r.check(i); err != nil {
		return Instant{}, err
	}
	if i.unit == format.UnitTime {
		return i, nil
	}
	switch i {
	case Alpha(format.UnitFrame):
		return Alpha(format.UnitTime), nil
	case Omega(format.UnitFrame):
		return Omega(format.UnitTime), nil
	}

	f := i.v - 1
	if r.rational {
		// ceil(f * micros / frames)
		n := new(big.Int).Mul(big.NewInt(f), big.NewInt(r.micros))
		return Time(ceilDiv(n, big.NewInt(r.frames))), nil
	}

	return Time(int64(math.Ceil(float64(f)*microsPerSecond/r.fps - roundingSlack))), nil
}

// AsFrame converts i to a frame instant, saturating at the int32 bounds.
// Frame instants are returned unchanged and the unit sentinels map onto each other.
func (r FrameRate) AsFrame(i Instant) (Instant, error) {
	if err := r.check(i); err != nil {
		return Instant{}, err
	}
	if i.unit == format.UnitFrame {
		return i, nil
	}
	switch i {
	case Alpha(format.UnitTime):
		return Alpha(format.UnitFrame), nil
	case Omega(format.UnitTime):
		return Omega(format.UnitFrame), nil
	}

	var f int64
	if r.rational {
		// ceil(t * frames / micros)
		n := new(big.Int).Mul(big.NewInt(i.v), big.NewInt(r.frames))
		f = ceilDiv(n, big.NewInt(r.micros))
	} else {
		x := math.Ceil(float64(i.v)*r.fps/microsPerSecond - roundingSlack)
		f = int64(max(min(x, math.MaxInt32), math.MinInt32))
	}

	f = max(min(f, math.MaxInt32-1), math.MinInt32-1) + 1

	return Frame(int32(f)), nil //nolint:gosec
}

// SpanAsTime converts both endpoints of s to time, keeping the half-open meaning.
func (r FrameRate) SpanAsTime(s Span) (Span, error) {
	if s.Unit() == format.UnitTime {
		return s, nil
	}

	return r.convertSpan(s, r.AsTime)
}

// SpanAsFrame converts both endpoints of s to frames, keeping the half-open meaning.
func (r FrameRate) SpanAsFrame(s Span) (Span, error) {
	if s.Unit() == format.UnitFrame {
		return s, nil
	}

	return r.convertSpan(s, r.AsFrame)
}

func (r FrameRate) convertSpan(s Span, conv func(Instant) (Instant, error)) (Span, error) {
	start, err := conv(s.start)
	if err != nil {
		return Span{}, err
	}
	end, err := conv(s.end)
	if err != nil {
		return Span{}, err
	}

	return NewSpan(start, end)
}

// Compare orders a and b, which may have different units. Two frames compare
// directly; any other pair is compared after conversion to time.
func (r FrameRate) Compare(a, b Instant) (int, error) {
	if a.unit == format.UnitFrame && b.unit == format.UnitFrame {
		return cmpInt(a.v, b.v), nil
	}
	ta, err := r.AsTime(a)
	if err != nil {
		return 0, err
	}
	tb, err := r.AsTime(b)
	if err != nil {
		return 0, err
	}

	return cmpInt(ta.v, tb.v), nil
}

// CompareSpans orders a and b by start and then by end, converting mixed units to time.
func (r FrameRate) CompareSpans(a, b Span) (int, error) {
	c, err := r.Compare(a.start, b.start)
	if err != nil || c != 0 {
		return c, err
	}

	return r.Compare(a.end, b.end)
}

func (r FrameRate) String() string {
	if r.rational {
		return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10) + " fps"
	}

	return strconv.FormatFloat(r.fps, 'g', -1, 64) + " fps"
}

func (r FrameRate) check(i Instant) error {
	if !r.IsValid() {
		return errors.Wrap(errs.ErrInvalidFrameRate, "zero frame rate")
	}
	if i.IsZero() {
		return errors.Wrap(errs.ErrInvalidRange, "cannot convert an absent instant")
	}

	return nil
}

func ceilDiv(n, d *big.Int) int64 {
	q, m := new(big.Int).DivMod(n, d, new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}

	return clampInt64(q)
}

func clampInt64(q *big.Int) int64 {
	if q.IsInt64() {
		return q.Int64()
	}
	if q.Sign() < 0 {
		return math.MinInt64
	}

	return math.MaxInt64
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
