// Package relptr implements relative pointers: references stored as a
// signed byte offset from their own storage location instead of an
// absolute address. The target address is recomputed at access time
// (self address + offset), so a pointer and its target that are moved
// or copied together, preserving their relative displacement, stay
// valid with no fix-up pass. This makes moveable self-referential
// aggregates possible without heap indirection or index tables.
//
// A Ptr and its target must live in the same allocation (the
// co-location rule); relocating one without the other silently
// invalidates the pointer. A Ptr holds no Go reference to its target,
// so the enclosing allocation must be kept reachable by other means.
// These are caller obligations, not runtime-checked properties.
package relptr

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/relptr/internal/common"
)

// Ptr is a relative pointer to a pointee of shape S, storing its
// displacement in a delta of width D. It occupies exactly
// sizeof(D)+sizeof(M) bytes; the null state is encoded by the zero
// delta, not by a tag, so the zero value of Ptr is null and ready to
// use.
//
// Ptr is plain data: freely copyable, owns nothing, frees nothing.
// Two Ptr values compare by storage identity only; equal bit patterns
// at different addresses designate different targets.
type Ptr[R any, M comparable, S Shape[R, M], D Delta[D]] struct {
	off  D
	meta M // meaningful only while off is non-zero
}

// Aliases for the standard shapes.
type (
	// ValuePtr is a relative pointer to a fixed-size value.
	ValuePtr[T any, D Delta[D]] = Ptr[*T, Unit, Value[T], D]
	// SlicePtr is a relative pointer to a length-carrying sequence.
	SlicePtr[E any, D Delta[D]] = Ptr[[]E, int, Slice[E], D]
	// TextPtr is a relative pointer to string bytes.
	TextPtr[D Delta[D]] = Ptr[string, int, Text, D]
)

// Null returns a pointer in the null state. Equivalent to the zero
// value.
func Null[R any, M comparable, S Shape[R, M], D Delta[D]]() Ptr[R, M, S, D] {
	return Ptr[R, M, S, D]{}
}

// IsNull reports whether the pointer has never been successfully set.
func (p *Ptr[R, M, S, D]) IsNull() bool {
	var zero D
	return p.off == zero
}

// Set points p at target. The displacement is computed with the
// checked subtraction of D; on failure p is left bit-identical to its
// prior state and the error identifies which range was exceeded. The
// offset and metadata are only ever replaced together.
//
// The caller must have exclusive access to target for the duration of
// the call, and target must be a live, non-absent reference (non-nil
// pointer, non-empty slice or string).
func (p *Ptr[R, M, S, D]) Set(target R) error {
	var s S
	thin, meta := s.Decompose(target)
	var d D
	off, err := d.Sub(common.PointerAddress(thin), common.AddressOf(p))
	if err != nil {
		return err
	}
	p.off = off
	p.meta = meta
	return nil
}

// SetUnchecked points p at target without range checks. The result is
// garbage if the true displacement does not fit D or if target is
// absent; no diagnostic is produced.
func (p *Ptr[R, M, S, D]) SetUnchecked(target R) {
	var s S
	thin, meta := s.Decompose(target)
	var d D
	p.off = d.SubUnchecked(common.PointerAddress(thin), common.AddressOf(p))
	p.meta = meta
}

// RawUnchecked rebuilds the target reference from p's own address,
// the stored offset and the stored metadata. p must have been set
// successfully and the co-location rule must still hold; calling it on
// a null pointer is invalid (it trips a panic only under the
// relptrdebug build tag).
func (p *Ptr[R, M, S, D]) RawUnchecked() R {
	if debugChecks && p.IsNull() {
		panic("relptr: unchecked access through a null relative pointer")
	}
	var s S
	return s.Compose(p.off.Add(unsafe.Pointer(p)), p.meta)
}

// Raw is RawUnchecked with the null state handled: a null pointer
// yields the shape's absent value. This is the one dereference that is
// valid on any pointer.
func (p *Ptr[R, M, S, D]) Raw() R {
	if p.IsNull() {
		var s S
		var meta M
		return s.Compose(nil, meta)
	}
	return p.RawUnchecked()
}

// Get returns the target and true, or the zero R and false when p is
// null. The set pointer precondition of RawUnchecked still applies to
// the returned reference.
func (p *Ptr[R, M, S, D]) Get() (R, bool) {
	if p.IsNull() {
		var zero R
		return zero, false
	}
	return p.RawUnchecked(), true
}

// String formats the pointer's own address and raw offset for
// debugging. It does not dereference.
func (p *Ptr[R, M, S, D]) String() string {
	return fmt.Sprintf("relptr.Ptr(%#x%+d)", uintptr(unsafe.Pointer(p)), any(p.off))
}
