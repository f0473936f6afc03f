package common

import "unsafe"

// Address is the raw storage location of a value, kept as an opaque
// integer so the overflow checks below apply before anything is
// turned back into a pointer.
type Address uintptr

// AddressOf returns the address of p.
func AddressOf[T any](p *T) Address {
	return Address(uintptr(unsafe.Pointer(p)))
}

// PointerAddress returns the address held by p.
func PointerAddress(p unsafe.Pointer) Address {
	return Address(uintptr(p))
}

// Diff returns a-b as a signed byte count. ok is false when the true
// difference is not representable in a native signed word, which can
// only happen if the two addresses sit in opposite halves of the
// address space.
func (a Address) Diff(b Address) (del int, ok bool) {
	del = int(a) - int(b)
	if ((int(a) < 0) != (int(b) < 0)) && ((del < 0) != (int(a) < 0)) {
		return 0, false
	}
	return del, true
}
