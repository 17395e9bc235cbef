package instant

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
)

// Instant is a discrete point on either the frame axis or the microsecond axis.
//
// Frame instants hold 32-bit frame numbers; arithmetic on them wraps at the
// int32 boundary. Time instants hold 64-bit microseconds. The zero Instant is
// absent: it has format.UnitNone and is rejected by every constructor that
// needs an endpoint.
//
// Instants are plain values and safe to copy.
type Instant struct {
	unit format.Unit
	v    int64
}

// Frame returns the frame instant f.
func Frame(f int32) Instant {
	return Instant{unit: format.UnitFrame, v: int64(f)}
}

// Time returns the time instant at us microseconds.
func Time(us int64) Instant {
	return Instant{unit: format.UnitTime, v: us}
}

// Of returns the instant of the given unit at v. Frame values are truncated to int32.
func Of(unit format.Unit, v int64) Instant {
	switch unit {
	case format.UnitFrame:
		return Frame(int32(v)) //nolint:gosec
	case format.UnitTime:
		return Time(v)
	default:
		return Instant{}
	}
}

// Alpha returns the minimum instant of unit.
func Alpha(unit format.Unit) Instant {
	switch unit {
	case format.UnitFrame:
		return Frame(math.MinInt32)
	case format.UnitTime:
		return Time(math.MinInt64)
	default:
		return Instant{}
	}
}

// Omega returns the maximum instant of unit.
func Omega(unit format.Unit) Instant {
	switch unit {
	case format.UnitFrame:
		return Frame(math.MaxInt32)
	case format.UnitTime:
		return Time(math.MaxInt64)
	default:
		return Instant{}
	}
}

// ParseFrame parses a decimal frame number.
func ParseFrame(s string) (Instant, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Instant{}, errors.Wrapf(errs.ErrInvalidRange, "invalid frame number %q", s)
	}

	return Frame(int32(v)), nil
}

// ParseTime parses a decimal microsecond timestamp.
func ParseTime(s string) (Instant, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Instant{}, errors.Wrapf(errs.ErrInvalidRange, "invalid time %q", s)
	}

	return Time(v), nil
}

// Unit returns the axis of i.
func (i Instant) Unit() format.Unit {
	return i.unit
}

// Value returns the raw frame number or microsecond count.
func (i Instant) Value() int64 {
	return i.v
}

// IsZero reports whether i is the absent instant.
func (i Instant) IsZero() bool {
	return i.unit == format.UnitNone
}

// IsFrame reports whether i is frame based.
func (i Instant) IsFrame() bool {
	return i.unit == format.UnitFrame
}

// IsTime reports whether i is time based.
func (i Instant) IsTime() bool {
	return i.unit == format.UnitTime
}

// Next returns the instant one unit after i.
func (i Instant) Next() Instant {
	return i.Go(1)
}

// Previous returns the instant one unit before i.
func (i Instant) Previous() Instant {
	return i.Go(-1)
}

// Go returns the instant delta units away from i.
func (i Instant) Go(delta int64) Instant {
	if i.unit == format.UnitFrame {
		return Frame(int32(i.v + delta)) //nolint:gosec
	}

	return Instant{unit: i.unit, v: i.v + delta}
}

// Minus returns i - o in native units.
func (i Instant) Minus(o Instant) (int64, error) {
	if i.unit != o.unit {
		return 0, errs.UnitMismatch(i.unit, o.unit)
	}

	return i.v - o.v, nil
}

// Compare returns -1, 0 or +1 as i is before, equal to or after o.
// Comparing instants of different units fails with errs.ErrUnitMismatch;
// use FrameRate.Compare for mixed-unit ordering.
func (i Instant) Compare(o Instant) (int, error) {
	if i.unit != o.unit {
		return 0, errs.UnitMismatch(i.unit, o.unit)
	}

	return cmpInt(i.v, o.v), nil
}

// Equal reports whether i and o share unit and value.
func (i Instant) Equal(o Instant) bool {
	return i == o
}

func (i Instant) String() string {
	if i.unit == format.UnitNone {
		return "<none>"
	}

	return strconv.FormatInt(i.v, 10)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
