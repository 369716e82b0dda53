package fstkv

import (
	"errors"

	"github.com/blevesearch/vellum"
)

// streamState tracks the Fresh -> Streaming -> Exhausted lifecycle spec.md
// describes for every stream adapter.
type streamState uint8

const (
	streamFresh streamState = iota
	streamStreaming
	streamExhausted
)

// ItemIterator is the single iterator type shared by every flavor of
// key/value scan (full, range, prefix, subsequence, automaton-search), per
// spec.md's "uniform iterator return type" design note: it erases the
// concrete vellum stream behind one wrapper and projects an owned copy of
// each key out of the FST's internally borrowed buffer, decoupling the
// iterator's lifetime from the underlying stream's borrow.
type ItemIterator struct {
	it     *vellum.FSTIterator
	bounds RangeBounds
	state  streamState
	key    []byte
	value  uint64
	err    error
}

func newItemIterator(it *vellum.FSTIterator, err error, bounds RangeBounds) (*ItemIterator, error) {
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, wrapErr(KindRuntime, "open iterator", err)
	}
	ii := &ItemIterator{it: it, bounds: bounds}
	if errors.Is(err, vellum.ErrIteratorDone) {
		ii.state = streamExhausted
	}
	return ii, nil
}

// Next advances to the next matching entry, returning false once the
// stream is exhausted or has errored (check Err to distinguish the two).
func (ii *ItemIterator) Next() bool {
	if ii.state == streamExhausted {
		return false
	}
	for {
		var key []byte
		var val uint64
		switch ii.state {
		case streamFresh:
			ii.state = streamStreaming
			key, val = ii.it.Current()
		case streamStreaming:
			if err := ii.it.Next(); err != nil {
				if !errors.Is(err, vellum.ErrIteratorDone) {
					ii.err = wrapErr(KindRuntime, "advance iterator", err)
				}
				ii.state = streamExhausted
				return false
			}
			key, val = ii.it.Current()
		}
		if ii.bounds.contains(key) {
			ii.key = append(ii.key[:0], key...)
			ii.value = val
			return true
		}
		// Out of the caller's range window but still within vellum's
		// widened [lo, hi) window (see RangeBounds.vellumBounds); keep
		// draining until either a match or real exhaustion.
	}
}

// Key returns the current entry's key. Valid only after Next returns true.
func (ii *ItemIterator) Key() []byte { return ii.key }

// Value returns the current entry's value. Valid only after Next returns
// true.
func (ii *ItemIterator) Value() uint64 { return ii.value }

// Err returns the first error encountered, if any.
func (ii *ItemIterator) Err() error { return ii.err }

// Close releases the underlying stream. Dropping an iterator without
// calling Close is safe (no background resources are held beyond normal
// GC), but Close makes that release deterministic.
func (ii *ItemIterator) Close() error {
	ii.state = streamExhausted
	if ii.it == nil {
		return nil
	}
	return ii.it.Close()
}

// KeyIterator projects only the key out of an ItemIterator, for Set scans
// and Map.Keys.
type KeyIterator struct{ inner *ItemIterator }

func newKeyIterator(inner *ItemIterator) *KeyIterator { return &KeyIterator{inner: inner} }

func (ki *KeyIterator) Next() bool   { return ki.inner.Next() }
func (ki *KeyIterator) Key() []byte  { return ki.inner.Key() }
func (ki *KeyIterator) Err() error   { return ki.inner.Err() }
func (ki *KeyIterator) Close() error { return ki.inner.Close() }

// ValueIterator projects only the value out of an ItemIterator.
type ValueIterator struct{ inner *ItemIterator }

func newValueIterator(inner *ItemIterator) *ValueIterator { return &ValueIterator{inner: inner} }

func (vi *ValueIterator) Next() bool    { return vi.inner.Next() }
func (vi *ValueIterator) Value() uint64 { return vi.inner.Value() }
func (vi *ValueIterator) Err() error    { return vi.inner.Err() }
func (vi *ValueIterator) Close() error  { return vi.inner.Close() }
