package instant

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseFrameSpan parses the inclusive span notation used by annotation files.
//
// "a:b" yields [a, b+1) and a bare "a" yields [a, a+1).
func ParseFrameSpan(s string) (Span, error) {
	return parseSpan(s, ParseFrame)
}

// ParseTimeSpan is ParseFrameSpan for microsecond timestamps.
func ParseTimeSpan(s string) (Span, error) {
	return parseSpan(s, ParseTime)
}

func parseSpan(s string, parse func(string) (Instant, error)) (Span, error) {
	text := strings.TrimSpace(s)
	first, last, found := strings.Cut(text, ":")

	start, err := parse(first)
	if err != nil {
		return Span{}, errors.Wrapf(err, "in span %q", s)
	}
	if !found {
		return NewSpan(start, start.Next())
	}

	end, err := parse(last)
	if err != nil {
		return Span{}, errors.Wrapf(err, "in span %q", s)
	}

	span, err := NewSpan(start, end.Next())
	if err != nil {
		return Span{}, errors.Wrapf(err, "in span %q", s)
	}

	return span, nil
}
