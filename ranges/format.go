package ranges

import (
	"strings"

	"github.com/cbsinteractive/pkg/timecode"
	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/format"
	"github.com/arloliu/tempo/instant"
)

// ParseFrameRange parses a frame range in either textual form:
//
//	"12:19 24 30:100"     inclusive span tokens separated by space, comma, semicolon or tab
//	"[12,20) [24,25)"     explicit half-open pairs
//
// Overlapping or adjacent tokens are merged. Errors name the offending token.
func ParseFrameRange(s string) (*Range, error) {
	return parse(s, format.UnitFrame, instant.ParseFrameSpan, instant.ParseFrame)
}

// ParseTimeRange is ParseFrameRange for microsecond timestamps.
func ParseTimeRange(s string) (*Range, error) {
	return parse(s, format.UnitTime, instant.ParseTimeSpan, instant.ParseTime)
}

func parse(
	s string,
	unit format.Unit,
	parseSpan func(string) (instant.Span, error),
	parseInstant func(string) (instant.Instant, error),
) (*Range, error) {
	r := Empty(unit)
	text := strings.TrimSpace(s)

	if strings.HasPrefix(text, "[") {
		tokens := strings.FieldsFunc(text, func(c rune) bool {
			return strings.ContainsRune(" ,;\t\n[]()", c)
		})
		if len(tokens)%2 != 0 {
			return nil, errors.Wrapf(errs.ErrInvalidRange, "unpaired bound %q", tokens[len(tokens)-1])
		}
		for k := 0; k < len(tokens); k += 2 {
			start, err := parseInstant(tokens[k])
			if err != nil {
				return nil, err
			}
			end, err := parseInstant(tokens[k+1])
			if err != nil {
				return nil, err
			}
			span, err := instant.NewSpan(start, end)
			if err != nil {
				return nil, errors.Wrapf(err, "in pair [%s,%s)", tokens[k], tokens[k+1])
			}
			if _, err := r.Add(span); err != nil {
				return nil, err
			}
		}

		return r, nil
	}

	tokens := strings.FieldsFunc(text, func(c rune) bool {
		return strings.ContainsRune(" ,;\t\n", c)
	})
	for _, tok := range tokens {
		span, err := parseSpan(tok)
		if err != nil {
			return nil, err
		}
		if _, err := r.Add(span); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// String renders the range as space separated half-open pairs, such as "[1,10) [30,32)".
func (r *Range) String() string {
	return r.Format(format.NotationHalfOpen)
}

// Format renders the range in notation n. The inclusive form is the comma
// separated span list "1:9, 30:31". Both forms parse back to an equal range.
func (r *Range) Format(n format.Notation) string {
	var sb strings.Builder
	for i, iv := range r.spans {
		s := r.span(iv)
		if n == format.NotationInclusive {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(s.String())
		} else {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.HalfOpen())
		}
	}

	return sb.String()
}

// Splice converts the range to media seconds, frame ranges going through rate.
func (r *Range) Splice(rate instant.FrameRate) (timecode.Splice, error) {
	out := make(timecode.Splice, 0, len(r.spans))
	for _, iv := range r.spans {
		sec, err := instant.SpanSeconds(r.span(iv), rate)
		if err != nil {
			return nil, err
		}
		out = append(out, sec)
	}

	return out, nil
}
