package relptr

import "unsafe"

// Shape is the constraint for pointee kinds. A shape splits a
// reference R into a thin pointer plus whatever metadata M is needed
// to rebuild it, and recombines the two. Compose with a nil thin
// pointer yields the shape's absent value and must not read meta.
type Shape[R any, M comparable] interface {
	Decompose(ref R) (unsafe.Pointer, M)
	Compose(p unsafe.Pointer, meta M) R
}

// Unit is the empty metadata of fixed-size pointees.
type Unit struct{}

// Value is the shape of a plain fixed-size pointee. No metadata.
type Value[T any] struct{}

func (Value[T]) Decompose(ref *T) (unsafe.Pointer, Unit) {
	return unsafe.Pointer(ref), Unit{}
}

func (Value[T]) Compose(p unsafe.Pointer, _ Unit) *T {
	return (*T)(p)
}

// Slice is the shape of a length-carrying sequence. Metadata is the
// element count; capacity is not preserved, the recomposed slice has
// cap == len.
type Slice[E any] struct{}

func (Slice[E]) Decompose(ref []E) (unsafe.Pointer, int) {
	return unsafe.Pointer(unsafe.SliceData(ref)), len(ref)
}

func (Slice[E]) Compose(p unsafe.Pointer, n int) []E {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*E)(p), n)
}

// Text is the shape of a string. Metadata is the byte length. Compose
// trusts that the bytes still form the text captured by Decompose; it
// does not re-validate them.
type Text struct{}

func (Text) Decompose(ref string) (unsafe.Pointer, int) {
	return unsafe.Pointer(unsafe.StringData(ref)), len(ref)
}

func (Text) Compose(p unsafe.Pointer, n int) string {
	if p == nil {
		return ""
	}
	return unsafe.String((*byte)(p), n)
}
