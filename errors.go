package relptr

import (
	"errors"
	"fmt"
)

var (
	// ErrConversionOverflow reports a difference that fits the native
	// signed range but not the chosen delta width.
	ErrConversionOverflow = errors.New("relptr: offset does not fit delta width")

	// ErrSubtractionOverflow reports two addresses whose difference
	// overflows the native signed range itself.
	ErrSubtractionOverflow = errors.New("relptr: address difference overflows native signed range")

	// ErrInvalidNonZero reports a computed difference of zero while the
	// delta width reserves zero for the unset state.
	ErrInvalidNonZero = errors.New("relptr: zero offset with non-zero delta width")
)

// DeltaError is returned by a failed Set. Del holds the attempted
// difference for ErrConversionOverflow; A and B hold the raw addresses
// for ErrSubtractionOverflow.
type DeltaError struct {
	kind error
	Del  int
	A, B uintptr
}

func (e *DeltaError) Error() string {
	switch e.kind {
	case ErrConversionOverflow:
		return fmt.Sprintf("relptr: offset of %d is too large for the delta width", e.Del)
	case ErrSubtractionOverflow:
		return fmt.Sprintf("relptr: difference between %#x and %#x overflows the native signed range", e.A, e.B)
	default:
		return e.kind.Error()
	}
}

func (e *DeltaError) Unwrap() error { return e.kind }

func conversionError(del int) error {
	return &DeltaError{kind: ErrConversionOverflow, Del: del}
}

func subtractionError(a, b uintptr) error {
	return &DeltaError{kind: ErrSubtractionOverflow, A: a, B: b}
}

func nonZeroError() error {
	return &DeltaError{kind: ErrInvalidNonZero}
}
