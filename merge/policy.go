// Package merge defines the value-selection policies used to resolve
// colliding values during k-way set-algebra over multiple Maps. It holds no
// FST- or iterator-specific logic (that lives in the root fstkv package's
// merge.go, which walks the Maps and calls Resolve for each merged key it
// emits, whether one input or several contribute to it); keeping the policy
// enum standalone avoids an
// import cycle between it and the container package.
package merge

import "sort"

// Policy selects how the values contributed by several inputs for the same
// key collapse into the single value stored in the merged Map.
type Policy uint8

const (
	// First picks the value from the lowest-indexed contributing input.
	First Policy = iota
	// Mid picks values[len/2] from the contributing list, in input order.
	Mid
	// Last picks the value from the highest-indexed contributing input.
	Last
	// Min picks the numeric minimum.
	Min
	// Max picks the numeric maximum.
	Max
	// Avg picks the integer mean, sum/len.
	Avg
	// Median picks the sorted median, averaging the two middle values for
	// an even-length contributing list.
	Median
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case First:
		return "First"
	case Mid:
		return "Mid"
	case Last:
		return "Last"
	case Min:
		return "Min"
	case Max:
		return "Max"
	case Avg:
		return "Avg"
	case Median:
		return "Median"
	default:
		return "Unknown"
	}
}

// Resolve reduces the non-empty, input-ordered list of contributing values
// for one key down to the single value the merged Map stores. vals must be
// non-empty; Resolve panics otherwise, since a key with zero contributors
// cannot appear in a merge (a programmer bug in the caller, not a
// recoverable input error).
func Resolve(p Policy, vals []uint64) uint64 {
	if len(vals) == 0 {
		panic("merge: Resolve called with no contributing values")
	}
	switch p {
	case First:
		return vals[0]
	case Last:
		return vals[len(vals)-1]
	case Mid:
		return vals[len(vals)/2]
	case Min:
		m := vals[0]
		for _, v := range vals[1:] {
			if v < m {
				m = v
			}
		}
		return m
	case Max:
		m := vals[0]
		for _, v := range vals[1:] {
			if v > m {
				m = v
			}
		}
		return m
	case Avg:
		var sum uint64
		for _, v := range vals {
			sum += v
		}
		return sum / uint64(len(vals))
	case Median:
		sorted := append([]uint64(nil), vals...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid]
		}
		return (sorted[mid-1] + sorted[mid]) / 2
	default:
		panic("merge: unknown policy")
	}
}
