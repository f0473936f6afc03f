package arena

import (
	"testing"
	"unsafe"

	"github.com/rawbytedev/relptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	name relptr.TextPtr[relptr.I32]
	vals relptr.SlicePtr[int32, relptr.I32]
}

func buildRecord(t *testing.T, a *Arena) (recOff int) {
	t.Helper()

	recOff, err := Place[record](a)
	require.NoError(t, err)

	valsOff, err := a.Alloc(4*4, 4)
	require.NoError(t, err)
	nameOff, err := a.Alloc(5, 1)
	require.NoError(t, err)

	vals := unsafe.Slice((*int32)(unsafe.Pointer(&a.Bytes(valsOff, 16)[0])), 4)
	copy(vals, []int32{10, 20, 30, 40})
	name := a.Bytes(nameOff, 5)
	copy(name, "hello")

	rec := View[record](a, recOff)
	require.NoError(t, rec.vals.Set(vals))
	require.NoError(t, rec.name.Set(unsafe.String(&name[0], 5)))
	return recOff
}

func TestRecordInArena(t *testing.T) {
	a := New(256, Options{CheckAlignment: true})
	recOff := buildRecord(t, a)

	rec := View[record](a, recOff)
	require.Equal(t, []int32{10, 20, 30, 40}, rec.vals.RawUnchecked())
	require.Equal(t, "hello", rec.name.RawUnchecked())
}

func TestGrowRelocates(t *testing.T) {
	a := New(64, Options{})
	recOff := buildRecord(t, a)

	before := &a.buf[0]

	// Force at least one relocation.
	_, err := a.Alloc(1<<12, 8)
	require.NoError(t, err)
	require.NotSame(t, before, &a.buf[0])

	rec := View[record](a, recOff)
	require.Equal(t, []int32{10, 20, 30, 40}, rec.vals.RawUnchecked())
	require.Equal(t, "hello", rec.name.RawUnchecked())
}

func TestSnapshotRestore(t *testing.T) {
	a := New(256, Options{})
	recOff := buildRecord(t, a)

	snap, err := a.Snapshot()
	require.NoError(t, err)

	// Mutate the original after the snapshot.
	rec := View[record](a, recOff)
	rec.vals.RawUnchecked()[0] = -1

	b, err := Restore(snap, Options{})
	require.NoError(t, err)
	require.Equal(t, a.Len(), b.Len())

	restored := View[record](b, recOff)
	require.Equal(t, []int32{10, 20, 30, 40}, restored.vals.RawUnchecked())
	require.Equal(t, "hello", restored.name.RawUnchecked())

	// Writes through restored pointers land in the restored region.
	restored.vals.RawUnchecked()[1] = 99
	require.Equal(t, int32(99), View[record](b, recOff).vals.RawUnchecked()[1])
	require.Equal(t, int32(20), rec.vals.RawUnchecked()[1])
}

func TestAllocAlignment(t *testing.T) {
	a := New(64, Options{CheckAlignment: true})

	_, err := a.Alloc(1, 1)
	require.NoError(t, err)

	off, err := a.Alloc(8, 8)
	require.NoError(t, err)
	assert.Zero(t, off%8)

	_, err = a.Alloc(8, 3)
	require.ErrorIs(t, err, ErrBadAlign)

	_, err = a.Alloc(0, 1)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestGrowFromEmpty(t *testing.T) {
	a := New(0, Options{})
	off, err := a.Alloc(16, 8)
	require.NoError(t, err)
	assert.Zero(t, off)
	assert.GreaterOrEqual(t, a.Cap(), 16)
}
