package relptr

import (
	"unsafe"

	"github.com/rawbytedev/relptr/internal/common"
)

// The N* widths carry the same arithmetic as their I* counterparts but
// reserve zero exclusively for the unset state: a Set whose target
// address coincides with the pointer's own storage fails with
// ErrInvalidNonZero instead of producing an offset that would read
// back as null. Use these when "points to itself" must be impossible.

// N8 is a one-byte delta that rejects a computed zero difference.
type N8 int8

func (N8) Sub(target, self common.Address) (N8, error) { return nonZeroSub[N8](target, self) }
func (N8) SubUnchecked(target, self common.Address) N8 { return N8(target - self) }
func (d N8) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// N16 is a two-byte delta that rejects a computed zero difference.
type N16 int16

func (N16) Sub(target, self common.Address) (N16, error) { return nonZeroSub[N16](target, self) }
func (N16) SubUnchecked(target, self common.Address) N16 { return N16(target - self) }
func (d N16) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// N32 is a four-byte delta that rejects a computed zero difference.
type N32 int32

func (N32) Sub(target, self common.Address) (N32, error) { return nonZeroSub[N32](target, self) }
func (N32) SubUnchecked(target, self common.Address) N32 { return N32(target - self) }
func (d N32) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// N64 is an eight-byte delta that rejects a computed zero difference.
type N64 int64

func (N64) Sub(target, self common.Address) (N64, error) { return nonZeroSub[N64](target, self) }
func (N64) SubUnchecked(target, self common.Address) N64 { return N64(target - self) }
func (d N64) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

// NNative is a word-sized delta that rejects a computed zero difference.
type NNative int

func (NNative) Sub(target, self common.Address) (NNative, error) {
	return nonZeroSub[NNative](target, self)
}
func (NNative) SubUnchecked(target, self common.Address) NNative { return NNative(target - self) }
func (d NNative) Add(p unsafe.Pointer) unsafe.Pointer { return unsafe.Add(p, int(d)) }

func nonZeroSub[D ~int8 | ~int16 | ~int32 | ~int64 | ~int](target, self common.Address) (D, error) {
	d, err := checkedSub[D](target, self)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, nonZeroError()
	}
	return d, nil
}
