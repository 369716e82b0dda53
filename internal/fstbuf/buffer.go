// Package fstbuf implements the Buffer primitive: a contiguous, read-only
// byte region backing an FST, either owned (built in-memory) or borrowed
// (memory-mapped from a file, or wrapping a caller-supplied region).
//
// A Buffer never mutates once constructed. The owned variant holds its own
// backing slice; the borrowed variant wraps someone else's region and must
// not outlive it. Borrowed file buffers use golang.org/x/sys/unix to mmap
// the file read-only, matching the teacher package's use of the same
// module for low-level, platform-specific primitives.
package fstbuf

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/coregx/fstkv/internal/conv"
)

// ErrNotContiguous is returned when constructing a Buffer from input that
// cannot be exposed as one contiguous region.
var ErrNotContiguous = errors.New("fstbuf: backing region is not contiguous")

// ErrTooLarge is returned when a buffer's length cannot be represented as a
// non-negative int on this platform.
var ErrTooLarge = errors.New("fstbuf: length overflows platform int")

// Buffer is a contiguous, read-only byte region of known length.
type Buffer struct {
	data   []byte
	closer func() error
}

// FromBytes wraps a caller-supplied, already-contiguous byte slice. The
// caller must not mutate b for as long as the Buffer (or anything derived
// from it) is alive.
func FromBytes(b []byte) (*Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("fstbuf: %w: nil slice", ErrNotContiguous)
	}
	return &Buffer{data: b}, nil
}

// FromOwned wraps a byte slice this Buffer now owns exclusively (e.g. the
// output of a Builder writing to ":memory:"). Unlike FromBytes it accepts
// any slice, nil included, and never fails.
func FromOwned(b []byte) *Buffer {
	return &Buffer{data: b}
}

// OpenFile memory-maps path read-only and returns a borrowed Buffer. Close
// must be called to release the mapping.
func OpenFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	rawSize := st.Size()
	if rawSize < 0 {
		return nil, fmt.Errorf("fstbuf: %w: negative size", ErrTooLarge)
	}
	size, ok := conv.Uint64ToInt(uint64(rawSize))
	if !ok {
		return nil, fmt.Errorf("fstbuf: %w: %d bytes", ErrTooLarge, rawSize)
	}
	if size == 0 {
		// mmap of a zero-length file is rejected by the kernel; an empty
		// buffer is trivially contiguous without one.
		return &Buffer{data: []byte{}}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("fstbuf: mmap %s: %w", path, err)
	}
	return &Buffer{
		data: data,
		closer: func() error {
			return unix.Munmap(data)
		},
	}, nil
}

// Bytes returns the read-only backing region. Callers must not mutate it.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the buffer length (0 for a nil Buffer). OpenFile already
// rejects sizes that do not fit an int, so the length is always exact.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// Close releases any resources (e.g. an mmap) backing the Buffer. It is a
// no-op for owned or caller-supplied buffers. Close must not be called
// while any container or stream still references the Buffer.
func (b *Buffer) Close() error {
	if b == nil || b.closer == nil {
		return nil
	}
	closer := b.closer
	b.closer = nil
	return closer()
}
