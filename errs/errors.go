// Package errs defines the sentinel errors returned by tempo packages.
//
// Every error returned by a tempo operation wraps exactly one of the sentinels
// below, so callers classify failures with errors.Is:
//
//	if _, err := r.Add(span); errors.Is(err, errs.ErrUnitMismatch) {
//	    // convert through an instant.FrameRate first
//	}
//
// The wrapping adds the offending value (or parse token) and a stack trace
// through github.com/cockroachdb/errors. None of these errors is retried
// internally and no operation leaves a partially applied mutation behind.
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/tempo/format"
)

var (
	// ErrUnitMismatch is returned when an operation mixes Frame and Time instants.
	ErrUnitMismatch = errors.New("unit mismatch")

	// ErrInvalidRange is returned for malformed interval text and for start > stop.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNegativeIndex is returned when an operation would produce or reference a negative frame.
	ErrNegativeIndex = errors.New("negative frame index")

	// ErrEmptyExtrema is returned when extrema are requested from an empty container.
	ErrEmptyExtrema = errors.New("empty extrema")

	// ErrInvalidFrameRate is returned for non-positive or non-finite frame rates.
	ErrInvalidFrameRate = errors.New("invalid frame rate")

	// ErrInvalidOption is returned by option constructors given out-of-range settings.
	ErrInvalidOption = errors.New("invalid option")
)

// UnitMismatchError is the typed form of ErrUnitMismatch.
type UnitMismatchError struct {
	Want format.Unit
	Got  format.Unit
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("unit mismatch: want %s, got %s", e.Want, e.Got)
}

// Is makes errors.Is(err, ErrUnitMismatch) hold for every UnitMismatchError.
func (e *UnitMismatchError) Is(target error) bool {
	return target == ErrUnitMismatch
}

// UnitMismatch returns a UnitMismatchError carrying a stack trace.
func UnitMismatch(want, got format.Unit) error {
	return errors.WithStack(&UnitMismatchError{Want: want, Got: got})
}
