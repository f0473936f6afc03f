package arena

import "unsafe"

// View reinterprets the bytes at off as a *T. The caller is
// responsible for having allocated the offset with the size and
// alignment of T; the pointer goes stale on the next growth, use the
// offset to re-view. Relative pointer fields inside T resolve against
// the region the view currently aliases.
func View[T any](a *Arena, off int) *T {
	return (*T)(unsafe.Pointer(&a.buf[off]))
}

// Place zeroes sizeof(T) bytes for a new T and returns its offset.
func Place[T any](a *Arena) (int, error) {
	var zero T
	return a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
}
