package relptr

import (
	"unsafe"

	"github.com/rawbytedev/relptr/internal/common"
)

// Delta is the constraint for offset widths. An implementation stores
// the signed byte displacement between two addresses; narrower widths
// shrink the pointer at the cost of a smaller reachable neighborhood.
//
// Implementations must hold, for every pair of addresses a, b:
//
//	Sub(a, a) == 0
//	Add(Sub(a, b), b) == a  whenever Sub succeeds
//	Add(0, a) == a
//
// The zero value is the null sentinel: a Ptr whose delta is zero is
// unset. See the N* widths for the variant that rejects a computed
// zero difference outright.
type Delta[D any] interface {
	comparable
	// Sub computes target-self, checking first that the difference fits
	// the native signed range and then that it fits D.
	Sub(target, self common.Address) (D, error)
	// SubUnchecked computes target-self with no range checks. The
	// result is garbage if the true difference is not representable.
	SubUnchecked(target, self common.Address) D
	// Add applies the stored displacement to p. p must point into the
	// same allocation as the result.
	Add(p unsafe.Pointer) unsafe.Pointer
}

// checkedSub is the single narrowing routine shared by every width.
// The round-trip comparison catches both ends of D's range.
func checkedSub[D ~int8 | ~int16 | ~int32 | ~int64 | ~int](target, self common.Address) (D, error) {
	del, ok := target.Diff(self)
	if !ok {
		return 0, subtractionError(uintptr(target), uintptr(self))
	}
	if d := D(del); int64(d) == int64(del) {
		return d, nil
	}
	return 0, conversionError(del)
}

// I8 is a one-byte delta. Reaches at most 127 bytes in either
// direction, enough for most self-referential structs.
type I8 int8

func (I8) Sub(target, self common.Address) (I8, error) { return checkedSub[I8](target, self) }
func (I8) SubUnchecked(target, self common.Address) I8 { return I8(target - self) }
func (d I8) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// I16 is a two-byte delta.
type I16 int16

func (I16) Sub(target, self common.Address) (I16, error) { return checkedSub[I16](target, self) }
func (I16) SubUnchecked(target, self common.Address) I16 { return I16(target - self) }
func (d I16) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// I32 is a four-byte delta.
type I32 int32

func (I32) Sub(target, self common.Address) (I32, error) { return checkedSub[I32](target, self) }
func (I32) SubUnchecked(target, self common.Address) I32 { return I32(target - self) }
func (d I32) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// I64 is an eight-byte delta. Never fails the narrowing check on
// 64-bit platforms.
type I64 int64

func (I64) Sub(target, self common.Address) (I64, error) { return checkedSub[I64](target, self) }
func (I64) SubUnchecked(target, self common.Address) I64 { return I64(target - self) }
func (d I64) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// Native is a delta of the platform word size, the default choice when
// pointer footprint does not matter.
type Native int

func (Native) Sub(target, self common.Address) (Native, error) {
	return checkedSub[Native](target, self)
}
func (Native) SubUnchecked(target, self common.Address) Native { return Native(target - self) }
func (d Native) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }
