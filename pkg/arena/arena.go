// Package arena provides a growable byte region for records that link
// to each other through relative pointers. Because a relative pointer
// only depends on the displacement between its storage and its target,
// the whole region can be reallocated, snapshotted and restored at a
// different address without invalidating any in-region pointer.
//
// The arena hands out offsets, never pointers: a pointer into the
// region is only valid until the next Alloc, since growth relocates
// the backing bytes. Re-view records through View after any call that
// may grow the arena.
package arena

import (
	"errors"

	"github.com/klauspost/compress/zstd"
)

var (
	ErrBadAlign = errors.New("arena: alignment must be a power of two")
	ErrBadSize  = errors.New("arena: size must be positive")
)

// Options controls runtime checks, in the spirit of opt-in unsafe
// behaviour flags.
type Options struct {
	// CheckAlignment rejects Alloc calls whose alignment is not a
	// power of two instead of rounding blindly.
	CheckAlignment bool
}

type Arena struct {
	opts Options
	buf  []byte
	used int
}

// New returns an arena with the given initial capacity in bytes.
func New(capacity int, opts Options) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{opts: opts, buf: make([]byte, capacity)}
}

// Alloc reserves size bytes at the given alignment and returns their
// offset from the start of the region. The returned offset is stable
// across growth; any previously obtained pointers into the region are
// not.
func (a *Arena) Alloc(size, align int) (int, error) {
	if size <= 0 {
		return 0, ErrBadSize
	}
	if align <= 0 {
		align = 1
	}
	if a.opts.CheckAlignment && align&(align-1) != 0 {
		return 0, ErrBadAlign
	}
	off := (a.used + align - 1) &^ (align - 1)
	if off+size > len(a.buf) {
		a.grow(off + size)
	}
	a.used = off + size
	return off, nil
}

// grow relocates the whole region at once. Relative pointers stored
// inside keep resolving because referrer and referent move together.
func (a *Arena) grow(need int) {
	capacity := 2 * len(a.buf)
	if capacity < need {
		capacity = need
	}
	if capacity < 64 {
		capacity = 64
	}
	next := make([]byte, capacity)
	copy(next, a.buf[:a.used])
	a.buf = next
}

// Len returns the number of bytes in use.
func (a *Arena) Len() int { return a.used }

// Cap returns the current capacity of the region.
func (a *Arena) Cap() int { return len(a.buf) }

// Bytes returns the size bytes starting at off. The slice aliases the
// region and goes stale on the next growth.
func (a *Arena) Bytes(off, size int) []byte {
	return a.buf[off : off+size]
}

// Snapshot returns a zstd-compressed copy of the used region. The
// offsets, and therefore the relative pointers inside, survive the
// round trip verbatim.
func (a *Arena) Snapshot() ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(a.buf[:a.used], nil), nil
}

// Restore rebuilds an arena from a Snapshot. The restored region lives
// at a fresh address; in-region relative pointers are unaffected.
func Restore(snap []byte, opts Options) (*Arena, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(snap, nil)
	if err != nil {
		return nil, err
	}
	return &Arena{opts: opts, buf: raw, used: len(raw)}, nil
}
