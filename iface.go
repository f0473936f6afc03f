//go:build gc

package relptr

import "unsafe"

// Dynamic-value support: an interface value participates as a pointee
// by smuggling its first header word (the itab, or the type pointer
// for any) through the metadata channel, leaving the data word as the
// thin address. This leans on the gc toolchain's two-word interface
// representation, hence the build constraint; the captured word is
// only meaningful within the same process and build. Itabs live in
// runtime-static memory, so holding one as a uintptr is stable.

type ifaceWords struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}

// Dyn is the shape of an interface-typed pointee. T must be an
// interface type whose dynamic value is pointer-shaped (a pointer
// implementing T), so that the data word is the thin address of the
// concrete value.
type Dyn[T any] struct{}

func (Dyn[T]) Decompose(ref T) (unsafe.Pointer, uintptr) {
	w := (*ifaceWords)(unsafe.Pointer(&ref))
	return w.data, uintptr(w.tab)
}

func (Dyn[T]) Compose(p unsafe.Pointer, meta uintptr) T {
	var ref T
	w := (*ifaceWords)(unsafe.Pointer(&ref))
	if p == nil {
		return ref
	}
	w.data = p
	w.tab = unsafe.Pointer(meta)
	return ref
}

// DynPtr is a relative pointer to a type-erased dynamic value.
type DynPtr[T any, D Delta[D]] = Ptr[T, uintptr, Dyn[T], D]

// DynMeta extracts the secondary header word of ref explicitly, for
// callers that transport it out of band instead of relying on Dyn.
func DynMeta[T any](ref T) uintptr {
	_, meta := Dyn[T]{}.Decompose(ref)
	return meta
}

// DynFromParts is the explicit inverse of DynMeta: it rebuilds an
// interface value from a thin pointer to the concrete value and a
// previously captured secondary word.
func DynFromParts[T any](p unsafe.Pointer, meta uintptr) T {
	return Dyn[T]{}.Compose(p, meta)
}
