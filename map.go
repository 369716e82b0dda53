package fstkv

import (
	"bytes"
	"fmt"

	"github.com/blevesearch/vellum"

	"github.com/coregx/fstkv/automaton"
	"github.com/coregx/fstkv/internal/fstbuf"
)

// Automaton is the user-composed acceptor type driving Map.Search and
// Set.Search. It is exactly automaton.Node; Map/Set re-export it so callers
// need not import the automaton package for the common case of passing one
// through, while still being able to build one with automaton.Str,
// automaton.StartsWith, automaton.Intersection, and so on.
type Automaton = automaton.Node

// Map is an immutable, byte-ordered handle onto an FST mapping keys to
// uint64 values. A Map holds no iteration state of its own; every stream
// factory below returns a fresh, independent Iterator.
type Map struct {
	buf    *fstbuf.Buffer
	fst    *vellum.FST
	closed bool
}

// NewMap validates data as an FST and wraps it in an owned Map.
func NewMap(data []byte) (*Map, error) {
	buf, err := fstbuf.FromBytes(data)
	if err != nil {
		return nil, wrapErr(KindBuffer, "wrap map data", fmt.Errorf("%w: %w", ErrBufferNotContiguous, err))
	}
	return openMapBuffer(buf)
}

// OpenMap memory-maps path and wraps it in a borrowed Map. Close releases
// the mapping.
func OpenMap(path string) (*Map, error) {
	buf, err := fstbuf.OpenFile(path)
	if err != nil {
		return nil, wrapErr(KindIO, "open "+path, err)
	}
	m, err := openMapBuffer(buf)
	if err != nil {
		buf.Close()
		return nil, err
	}
	return m, nil
}

func openMapBuffer(buf *fstbuf.Buffer) (*Map, error) {
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, wrapErr(KindInvalidData, "parse FST", err)
	}
	return &Map{buf: buf, fst: fst}, nil
}

// Close releases any resources (e.g. an mmap) backing the Map. Safe to call
// more than once.
func (m *Map) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	if m.fst != nil {
		if err := m.fst.Close(); err != nil {
			return wrapErr(KindRuntime, "close FST", err)
		}
	}
	return m.buf.Close()
}

// Get performs a point lookup in O(|key|), reporting whether key is present.
func (m *Map) Get(key []byte) (uint64, bool, error) {
	v, ok, err := m.fst.Get(key)
	if err != nil {
		return 0, false, wrapErr(KindRuntime, "get", err)
	}
	return v, ok, nil
}

// MustGet is Get's subscript-style counterpart: it returns ErrKeyNotFound
// when key is absent instead of a boolean.
func (m *Map) MustGet(key []byte) (uint64, error) {
	v, ok, err := m.Get(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, wrapErr(KindValue, "MustGet "+string(key), ErrKeyNotFound)
	}
	return v, nil
}

// Contains reports whether key is present.
func (m *Map) Contains(key []byte) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Len returns the number of entries.
func (m *Map) Len() int { return m.fst.Len() }

// Equal reports whether m and other hold the same length and an identical
// ordered sequence of (key, value) pairs.
func (m *Map) Equal(other *Map) (bool, error) {
	if m.Len() != other.Len() {
		return false, nil
	}
	a, err := m.Items()
	if err != nil {
		return false, err
	}
	defer a.Close()
	b, err := other.Items()
	if err != nil {
		return false, err
	}
	defer b.Close()
	for a.Next() {
		if !b.Next() {
			return false, b.Err()
		}
		if !bytes.Equal(a.Key(), b.Key()) || a.Value() != b.Value() {
			return false, nil
		}
	}
	if err := a.Err(); err != nil {
		return false, err
	}
	if b.Next() {
		return false, nil
	}
	return true, b.Err()
}

// Keys returns a full, ascending scan of every key.
func (m *Map) Keys() (*KeyIterator, error) {
	it, err := m.Range(RangeBounds{})
	if err != nil {
		return nil, err
	}
	return newKeyIterator(it), nil
}

// Values returns a full scan of every value, in key order.
func (m *Map) Values() (*ValueIterator, error) {
	it, err := m.Range(RangeBounds{})
	if err != nil {
		return nil, err
	}
	return newValueIterator(it), nil
}

// Items returns a full scan of every (key, value) pair.
func (m *Map) Items() (*ItemIterator, error) { return m.Range(RangeBounds{}) }

// Range returns every entry within bounds.
func (m *Map) Range(bounds RangeBounds) (*ItemIterator, error) {
	lo, hi := bounds.vellumBounds()
	it, err := m.fst.Iterator(lo, hi)
	return newItemIterator(it, err, bounds)
}

// StartsWith returns every entry whose key has the given byte prefix,
// further narrowed by bounds.
func (m *Map) StartsWith(prefix []byte, bounds RangeBounds) (*ItemIterator, error) {
	narrowed := withPrefix(prefix, bounds)
	aut := automaton.StartsWith(automaton.Str(prefix))
	lo, hi := narrowed.vellumBounds()
	it, err := m.fst.Search(automaton.Compile(aut), lo, hi)
	return newItemIterator(it, err, narrowed)
}

// Subsequence returns every entry whose key contains pattern as a
// non-contiguous subsequence, further narrowed by bounds.
func (m *Map) Subsequence(pattern []byte, bounds RangeBounds) (*ItemIterator, error) {
	aut := automaton.Subsequence(pattern)
	lo, hi := bounds.vellumBounds()
	it, err := m.fst.Search(automaton.Compile(aut), lo, hi)
	return newItemIterator(it, err, bounds)
}

// Search returns every entry accepted by aut, further narrowed by bounds.
func (m *Map) Search(aut Automaton, bounds RangeBounds) (*ItemIterator, error) {
	lo, hi := bounds.vellumBounds()
	it, err := m.fst.Search(automaton.Compile(aut), lo, hi)
	return newItemIterator(it, err, bounds)
}
