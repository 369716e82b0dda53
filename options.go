package fstkv

import "bytes"

// RangeBounds narrows any iterator factory to a byte-lexicographic window.
// Any combination may be nil. When both a lower bound (Ge/Gt) or both an
// upper bound (Le/Lt) are supplied, the tighter one wins, matching spec.md's
// range semantics.
type RangeBounds struct {
	Ge, Gt []byte
	Le, Lt []byte
}

// lowerInclusive resolves Ge/Gt into a single inclusive lower bound (or nil
// for unbounded) plus whether a key exactly equal to it should pass.
func (r RangeBounds) lowerInclusive() (bound []byte, inclusive bool) {
	switch {
	case r.Ge == nil && r.Gt == nil:
		return nil, true
	case r.Ge == nil:
		return r.Gt, false
	case r.Gt == nil:
		return r.Ge, true
	}
	// Both supplied: the tighter (larger) bound wins.
	switch bytes.Compare(r.Ge, r.Gt) {
	case 0:
		return r.Ge, false // gt is tighter than an equal ge (excludes the boundary)
	case 1:
		return r.Ge, true
	default:
		return r.Gt, false
	}
}

func (r RangeBounds) upperInclusive() (bound []byte, inclusive bool) {
	switch {
	case r.Le == nil && r.Lt == nil:
		return nil, true
	case r.Le == nil:
		return r.Lt, false
	case r.Lt == nil:
		return r.Le, true
	}
	switch bytes.Compare(r.Le, r.Lt) {
	case 0:
		return r.Le, false
	case -1:
		return r.Le, true
	default:
		return r.Lt, false
	}
}

// contains reports whether key falls within the bounds.
func (r RangeBounds) contains(key []byte) bool {
	if lo, incl := r.lowerInclusive(); lo != nil {
		c := bytes.Compare(key, lo)
		if c < 0 || (c == 0 && !incl) {
			return false
		}
	}
	if hi, incl := r.upperInclusive(); hi != nil {
		c := bytes.Compare(key, hi)
		if c > 0 || (c == 0 && !incl) {
			return false
		}
	}
	return true
}

// vellumBounds computes the [start, end) window to hand to vellum's
// Iterator/Search, which only understands an inclusive start and an
// exclusive end. Exclusive/equal-boundary refinement beyond that is
// enforced by contains() as each candidate key streams past.
func (r RangeBounds) vellumBounds() (startInclusive, endExclusive []byte) {
	lo, _ := r.lowerInclusive()
	hi, inclusive := r.upperInclusive()
	if hi == nil {
		return lo, nil
	}
	if inclusive {
		// Widen to strictly-greater-than hi so an exact match on hi is
		// still produced by vellum; contains() trims anything beyond it.
		return lo, append(append([]byte(nil), hi...), 0x00)
	}
	return lo, hi
}

// withPrefix returns bounds further narrowed to keys beginning with prefix,
// used by StartsWith-style queries layered on top of caller-supplied bounds.
func withPrefix(prefix []byte, r RangeBounds) RangeBounds {
	upperBound := prefixUpperBound(prefix)
	narrowed := r
	if narrowed.Ge == nil || bytes.Compare(prefix, narrowed.Ge) > 0 {
		narrowed.Ge = append([]byte(nil), prefix...)
	}
	if upperBound != nil && (narrowed.Lt == nil && narrowed.Le == nil || bytes.Compare(upperBound, effectiveUpper(narrowed)) < 0) {
		narrowed.Lt = upperBound
		narrowed.Le = nil
	}
	return narrowed
}

func effectiveUpper(r RangeBounds) []byte {
	hi, _ := r.upperInclusive()
	return hi
}

// prefixUpperBound returns the smallest key that is strictly greater than
// every key beginning with prefix, or nil if prefix is the all-0xFF string
// (no finite upper bound exists).
func prefixUpperBound(prefix []byte) []byte {
	bound := append([]byte(nil), prefix...)
	for i := len(bound) - 1; i >= 0; i-- {
		if bound[i] != 0xFF {
			bound[i]++
			return bound[:i+1]
		}
	}
	return nil
}
