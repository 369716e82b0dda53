package fstkv

import (
	"bytes"
	"container/heap"

	"github.com/coregx/fstkv/merge"
)

// mergeCursor tracks one input's current position during a k-way merge.
type mergeCursor struct {
	idx int
	it  *ItemIterator
	key []byte
	val uint64
}

type mergeHeap []*mergeCursor

func (h mergeHeap) Len() int            { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if c := bytes.Compare(h[i].key, h[j].key); c != 0 {
		return c < 0
	}
	return h[i].idx < h[j].idx
}
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(*mergeCursor)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return c
}

// onKeyFunc decides, for one merged key and the ordered list of (source
// index, value) contributors, whether to emit the key and with what value.
type onKeyFunc func(key []byte, sources []int, values []uint64) (emit bool, value uint64)

// kWayMerge drives a heap-based k-way merge of inputs (one ItemIterator per
// source, in source-index order) and feeds every distinct merged key,
// along with the sources that contributed a value for it, to onKey. sources
// and values are ordered by ascending source index (mergeHeap.Less breaks
// key ties by idx), so positional policies like First/Last/Mid see the
// contributor in true input order. A true result from onKey inserts (key,
// value) into out.
func kWayMerge(inputs []*ItemIterator, onKey onKeyFunc, out *Builder) error {
	h := &mergeHeap{}
	heap.Init(h)
	for i, it := range inputs {
		if it.Next() {
			heap.Push(h, &mergeCursor{idx: i, it: it, key: append([]byte(nil), it.Key()...), val: it.Value()})
		} else if err := it.Err(); err != nil {
			return err
		}
	}

	for h.Len() > 0 {
		minKey := append([]byte(nil), (*h)[0].key...)
		var sources []int
		var values []uint64
		for h.Len() > 0 && bytes.Equal((*h)[0].key, minKey) {
			c := heap.Pop(h).(*mergeCursor)
			sources = append(sources, c.idx)
			values = append(values, c.val)
			if c.it.Next() {
				c.key = append(c.key[:0], c.it.Key()...)
				c.val = c.it.Value()
				heap.Push(h, c)
			} else if err := c.it.Err(); err != nil {
				return err
			}
		}
		if emit, value := onKey(minKey, sources, values); emit {
			if err := out.Insert(minKey, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// setAlgebraMode selects which Boolean set operation mapMerge performs.
type setAlgebraMode uint8

const (
	modeUnion setAlgebraMode = iota
	modeIntersection
	modeDifference
	modeSymmetricDifference
)

// mapMerge streams receiver and others in sorted order, applies mode and
// policy, and writes the result to dest (or returns an owned Map for
// MemoryPath).
func mapMerge(dest string, mode setAlgebraMode, policy merge.Policy, receiver *Map, others []*Map) (*Map, error) {
	maps := append([]*Map{receiver}, others...)
	n := len(maps)

	iters := make([]*ItemIterator, n)
	for i, m := range maps {
		it, err := m.Items()
		if err != nil {
			return nil, err
		}
		iters[i] = it
	}
	defer func() {
		for _, it := range iters {
			it.Close()
		}
	}()

	b, err := NewBuilder(dest)
	if err != nil {
		return nil, err
	}

	onKey := func(key []byte, sources []int, values []uint64) (bool, uint64) {
		switch mode {
		case modeUnion:
			return true, merge.Resolve(policy, values)
		case modeIntersection:
			return len(sources) == n, merge.Resolve(policy, values)
		case modeDifference:
			return len(sources) == 1 && sources[0] == 0, values[0]
		case modeSymmetricDifference:
			return len(sources)%2 == 1, merge.Resolve(policy, values)
		default:
			return false, 0
		}
	}

	if err := kWayMerge(iters, onKey, b); err != nil {
		return nil, err
	}
	data, err := b.Finish()
	if err != nil {
		return nil, err
	}
	if dest == MemoryPath {
		return NewMap(data)
	}
	return OpenMap(dest)
}

// Union streams the receiver and others in sorted order and writes a Map
// holding every key present in at least one input, resolving colliding
// values with policy.
func (m *Map) Union(dest string, policy merge.Policy, others ...*Map) (*Map, error) {
	return mapMerge(dest, modeUnion, policy, m, others)
}

// Intersection writes a Map holding every key present in the receiver and
// every other input.
func (m *Map) Intersection(dest string, policy merge.Policy, others ...*Map) (*Map, error) {
	return mapMerge(dest, modeIntersection, policy, m, others)
}

// Difference writes a Map holding every key present in the receiver but in
// none of others.
func (m *Map) Difference(dest string, others ...*Map) (*Map, error) {
	return mapMerge(dest, modeDifference, merge.First, m, others)
}

// SymmetricDifference writes a Map holding every key present in an odd
// number of the receiver-plus-others inputs.
func (m *Map) SymmetricDifference(dest string, policy merge.Policy, others ...*Map) (*Map, error) {
	return mapMerge(dest, modeSymmetricDifference, policy, m, others)
}

// setMerge is Set's policy-free counterpart to mapMerge: any Policy choice
// is immaterial because every contributing value is always 0.
func setMerge(dest string, mode setAlgebraMode, receiver *Set, others []*Set) (*Set, error) {
	maps := make([]*Map, len(others))
	for i, s := range others {
		maps[i] = s.m
	}
	m, err := mapMerge(dest, mode, merge.First, receiver.m, maps)
	if err != nil {
		return nil, err
	}
	return &Set{m: m}, nil
}

// Union writes a Set holding every key present in at least one input.
func (s *Set) Union(dest string, others ...*Set) (*Set, error) {
	return setMerge(dest, modeUnion, s, others)
}

// Intersection writes a Set holding every key present in the receiver and
// every other input.
func (s *Set) Intersection(dest string, others ...*Set) (*Set, error) {
	return setMerge(dest, modeIntersection, s, others)
}

// Difference writes a Set holding every key present in the receiver but in
// none of others.
func (s *Set) Difference(dest string, others ...*Set) (*Set, error) {
	return setMerge(dest, modeDifference, s, others)
}

// SymmetricDifference writes a Set holding every key present in an odd
// number of the receiver-plus-others inputs.
func (s *Set) SymmetricDifference(dest string, others ...*Set) (*Set, error) {
	return setMerge(dest, modeSymmetricDifference, s, others)
}
