//go:build gc

package relptr

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type counter struct{ n int }

func (c *counter) Bump(d int) { c.n += d }
func (c *counter) Total() int { return c.n }

type bumper interface {
	Bump(int)
	Total() int
}

type dynAgg struct {
	ptr DynPtr[bumper, I16]
	c   counter
}

func TestDynSetAndDeref(t *testing.T) {
	a := dynAgg{c: counter{n: 3}}
	var iv bumper = &a.c

	require.NoError(t, a.ptr.Set(iv))
	got, ok := a.ptr.Get()
	require.True(t, ok)
	require.Equal(t, 3, got.Total())

	got.Bump(2)
	require.Equal(t, 5, a.c.n)
}

func TestDynMove(t *testing.T) {
	a := dynAgg{c: counter{n: 41}}
	var iv bumper = &a.c
	require.NoError(t, a.ptr.Set(iv))

	moved := a
	got := moved.ptr.RawUnchecked()
	got.Bump(1)
	require.Equal(t, 42, moved.c.n)
	require.Equal(t, 41, a.c.n)
}

func TestDynNull(t *testing.T) {
	var p DynPtr[bumper, I16]
	require.True(t, p.IsNull())
	require.Nil(t, p.Raw())

	_, ok := p.Get()
	require.False(t, ok)
}

func TestDynShapeRoundTrip(t *testing.T) {
	c := counter{n: 9}
	var iv bumper = &c

	var s Dyn[bumper]
	thin, meta := s.Decompose(iv)
	require.Equal(t, unsafe.Pointer(&c), thin)
	require.NotZero(t, meta)

	back := s.Compose(thin, meta)
	require.Equal(t, 9, back.Total())
	back.Bump(1)
	require.Equal(t, 10, c.n)
}

func TestDynExplicitParts(t *testing.T) {
	c := counter{n: 7}
	var iv bumper = &c

	meta := DynMeta(iv)
	back := DynFromParts[bumper](unsafe.Pointer(&c), meta)
	require.Equal(t, 7, back.Total())
}
