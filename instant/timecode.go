package instant

import (
	"math"
	"strconv"
	"strings"

	"github.com/cbsinteractive/pkg/timecode"
	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
)

// ParseTimecode reads an SMPTE style "HH:MM:SS:FF", "HH:MM:SS;FF" or
// "HH:MM:SS" timecode into a time instant, using rate to place the FF frames.
func ParseTimecode(tc string, rate FrameRate) (Instant, error) {
	if !rate.IsValid() {
		return Instant{}, errors.Wrap(errs.ErrInvalidFrameRate, "zero frame rate")
	}

	text := strings.ReplaceAll(strings.TrimSpace(tc), ";", ":")
	fields := strings.Split(text, ":")
	if len(fields) < 3 || len(fields) > 4 {
		return Instant{}, errors.Wrapf(errs.ErrInvalidRange, "invalid timecode %q", tc)
	}
	for _, f := range fields {
		if _, err := strconv.ParseUint(f, 10, 32); err != nil {
			return Instant{}, errors.Wrapf(errs.ErrInvalidRange, "invalid timecode field %q in %q", f, tc)
		}
	}

	r, err := timecode.Parse(text, rate.FPS())
	if err != nil && len(fields) == 4 {
		// a bare HH:MM:SS reports EOF for the missing frame field, so only
		// a four-field timecode can fail here
		return Instant{}, errors.Wrapf(errs.ErrInvalidRange, "invalid timecode %q", tc)
	}
	if r[1] < 0 || math.IsNaN(r[1]) {
		return Instant{}, errors.Wrapf(errs.ErrInvalidRange, "invalid timecode %q", tc)
	}

	return Time(int64(math.Round(r[1] * microsPerSecond))), nil
}

// SpanSeconds returns the start and end of s in seconds, converting frame
// spans through rate. It is the inverse of the timecode package's Range.
func SpanSeconds(s Span, rate FrameRate) (timecode.Range, error) {
	ts, err := rate.SpanAsTime(s)
	if err != nil {
		return timecode.Range{}, err
	}

	return timecode.Range{
		float64(ts.start.v) / microsPerSecond,
		float64(ts.end.v) / microsPerSecond,
	}, nil
}
