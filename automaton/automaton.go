// Package automaton implements the composable byte-level acceptor family
// described by the four-predicate contract: Start, IsMatch, CanMatch,
// WillAlwaysMatch, Accept. Nodes form an immutable tree with shared
// children (ordinary Go pointer/interface sharing takes the place of
// explicit reference counting); the runtime State tree is produced and
// consumed separately so one Node graph can drive many concurrent streams.
//
// The package mirrors the state/kind split of the teacher's nfa package
// (nfa.StateID/nfa.StateKind travel together and a mismatch is a
// programming bug) but, because the acceptors here are a closed set known
// at compile time, Go's type system plus a single generic assertion helper
// replace the teacher's StateKind enum.
package automaton

import "fmt"

// State is the opaque runtime state paralleling a Node during a traversal.
// Its concrete type is private to the Node implementation that produced it;
// passing a State produced by one Node to a different Node is a programming
// bug and panics (class-1 failure per the error handling design).
type State = any

// Node is an immutable acceptor. Implementations must be safe for
// concurrent use by multiple Start() calls; the States they hand out are
// not safe to share across concurrent Accept calls on the same State value.
type Node interface {
	// Start returns the initial state for a fresh traversal.
	Start() State
	// IsMatch reports whether s accepts the bytes consumed so far.
	IsMatch(s State) bool
	// CanMatch reports whether any extension of the consumed bytes could
	// still be accepted. The FST search engine prunes an edge when this is
	// false.
	CanMatch(s State) bool
	// WillAlwaysMatch reports whether every extension is accepted. The FST
	// search engine may stop consulting predicates for a subtree once this
	// is true.
	WillAlwaysMatch(s State) bool
	// Accept advances s by one input byte.
	Accept(s State, b byte) State
}

// assertState recovers the concrete state type T a Node expects, panicking
// with diagnostic context if some other Node's state leaked in. This is the
// one place the four-predicate contract's "type invariant" from the spec is
// enforced: node and state variant must travel together.
func assertState[T any](s State, node string) T {
	t, ok := s.(T)
	if !ok {
		panic(fmt.Sprintf("automaton: state/node variant mismatch in %s: got %T, want %T", node, s, *new(T)))
	}
	return t
}

// Never returns a node that rejects every input.
func Never() Node { return neverNode{} }

// Always returns a node that accepts every input, from the empty string on.
func Always() Node { return alwaysNode{} }

// Str returns a node that accepts exactly one string: pattern.
func Str(pattern []byte) Node {
	return &strNode{pattern: append([]byte(nil), pattern...)}
}

// Subsequence returns a node that accepts any key containing pattern as a
// (not necessarily contiguous) subsequence of bytes, in order.
func Subsequence(pattern []byte) Node {
	return &subsequenceNode{pattern: append([]byte(nil), pattern...)}
}

// StartsWith returns a node that accepts any extension of any string child
// already accepts. It generalizes over any child, not only Str: the
// canonical use is StartsWith(Str(prefix)) for a literal-prefix query, but
// StartsWith(Subsequence(p)) or StartsWith(Union(...)) are equally valid.
func StartsWith(child Node) Node { return &startsWithNode{child: child} }

// Complement returns a node that accepts exactly the keys child rejects.
func Complement(child Node) Node { return &complementNode{child: child} }

// Intersection returns a node that accepts a key iff both left and right
// accept it.
func Intersection(left, right Node) Node { return &intersectionNode{left: left, right: right} }

// Union returns a node that accepts a key iff either left or right accepts
// it.
func Union(left, right Node) Node { return &unionNode{left: left, right: right} }
