package fstkv

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/blevesearch/vellum"
)

// MemoryPath is the path sentinel meaning "build in memory and hand back
// an owned Buffer instead of writing to a file".
const MemoryPath = ":memory:"

// writeBufferSize matches the teacher's constant-sized-buffer idiom
// (dfa/lazy sizes its state cache by a fixed constant); spec.md calls for
// "buffer size ≈4 MiB" for Builder's file writer.
const writeBufferSize = 4 << 20

// Builder consumes a strictly ascending stream of (key, value) items and
// writes an FST. It does not sort; out-of-order or duplicate keys are
// rejected immediately and no partial in-memory result is returned (a
// partially written file, if any, is left on disk — the caller's
// responsibility per spec.md's error handling design).
type Builder struct {
	path     string
	mem      *bytes.Buffer
	file     *os.File
	w        *bufio.Writer
	vb       *vellum.Builder
	lastKey  []byte
	hasLast  bool
	finished bool
}

// NewBuilder opens a destination for a Map build. path == MemoryPath builds
// entirely in memory; any other path is created with truncation.
func NewBuilder(path string) (*Builder, error) {
	return newBuilder(path)
}

func newBuilder(path string) (*Builder, error) {
	b := &Builder{path: path}
	var w io.Writer
	if path == MemoryPath {
		b.mem = new(bytes.Buffer)
		w = b.mem
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, wrapErr(KindIO, "create "+path, err)
		}
		b.file = f
		b.w = bufio.NewWriterSize(f, writeBufferSize)
		w = b.w
	}

	vb, err := vellum.New(w, nil)
	if err != nil {
		b.abort()
		return nil, wrapErr(KindRuntime, "initialize FST builder", err)
	}
	b.vb = vb
	return b, nil
}

// Insert adds one entry. Keys must strictly increase in byte-lexicographic
// order across calls; an equal-to-previous key is rejected the same as an
// out-of-order one (spec.md's resolved duplicate-key open question).
func (b *Builder) Insert(key []byte, val uint64) error {
	if b.finished {
		return wrapErr(KindValue, "Insert after Finish/Close", ErrClosed)
	}
	if b.hasLast && bytes.Compare(key, b.lastKey) <= 0 {
		b.abort()
		return wrapErr(KindValue, fmt.Sprintf("key %q does not strictly follow %q", key, b.lastKey), ErrOutOfOrder)
	}
	if err := b.vb.Insert(key, val); err != nil {
		b.abort()
		return wrapErr(KindRuntime, "insert", err)
	}
	b.lastKey = append(b.lastKey[:0], key...)
	b.hasLast = true
	return nil
}

// InsertItem is a convenience wrapper over Insert for an Item.
func (b *Builder) InsertItem(it Item) error { return b.Insert(it.Key, it.Value) }

// InsertAll drains items, inserting each in turn, stopping at the first
// error (leaving the builder unusable, per spec.md's abort-on-first-error
// rule).
func (b *Builder) InsertAll(items []Item) error {
	for _, it := range items {
		if err := b.InsertItem(it); err != nil {
			return err
		}
	}
	return nil
}

// Finish completes the build and, for MemoryPath, returns the built bytes.
// For a file destination it returns nil bytes; the file is flushed, synced
// is not performed (buffered-writer semantics per spec.md), and closed.
func (b *Builder) Finish() ([]byte, error) {
	if b.finished {
		return nil, wrapErr(KindValue, "Finish called twice", ErrClosed)
	}
	b.finished = true
	if err := b.vb.Close(); err != nil {
		b.closeUnderlying()
		return nil, wrapErr(KindRuntime, "finalize FST", err)
	}
	if b.mem != nil {
		return b.mem.Bytes(), nil
	}
	if err := b.w.Flush(); err != nil {
		b.file.Close()
		return nil, wrapErr(KindIO, "flush "+b.path, err)
	}
	if err := b.file.Close(); err != nil {
		return nil, wrapErr(KindIO, "close "+b.path, err)
	}
	return nil, nil
}

func (b *Builder) abort() {
	if b.finished {
		return
	}
	b.finished = true
	b.closeUnderlying()
}

func (b *Builder) closeUnderlying() {
	if b.file != nil {
		b.file.Close()
	}
}

// SetBuilder is the value-less counterpart to Builder: every key is stored
// with an implicit value of 0, reusing Map's FST machinery underneath (the
// same trick the historical revisions of the original project's Set type
// used, per SPEC_FULL.md's supplemented-features note).
type SetBuilder struct {
	inner *Builder
}

// NewSetBuilder opens a destination for a Set build.
func NewSetBuilder(path string) (*SetBuilder, error) {
	b, err := newBuilder(path)
	if err != nil {
		return nil, err
	}
	return &SetBuilder{inner: b}, nil
}

// Insert adds one key.
func (b *SetBuilder) Insert(key []byte) error { return b.inner.Insert(key, 0) }

// InsertAll drains keys, inserting each in turn.
func (b *SetBuilder) InsertAll(keys [][]byte) error {
	for _, k := range keys {
		if err := b.Insert(k); err != nil {
			return err
		}
	}
	return nil
}

// Finish completes the build; see Builder.Finish.
func (b *SetBuilder) Finish() ([]byte, error) { return b.inner.Finish() }
