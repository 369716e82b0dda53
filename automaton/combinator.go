package automaton

// startsWithState is a two-state machine: Running wraps the child's state
// while the child has not yet matched; Done is absorbing once it has.
type startsWithState struct {
	done  bool
	inner State
}

type startsWithNode struct {
	child Node
}

func (n *startsWithNode) Start() State {
	inner := n.child.Start()
	if n.child.IsMatch(inner) {
		return startsWithState{done: true}
	}
	return startsWithState{inner: inner}
}

func (n *startsWithNode) IsMatch(s State) bool {
	return assertState[startsWithState](s, "StartsWith").done
}

func (n *startsWithNode) CanMatch(s State) bool {
	ss := assertState[startsWithState](s, "StartsWith")
	return ss.done || n.child.CanMatch(ss.inner)
}

func (n *startsWithNode) WillAlwaysMatch(s State) bool {
	return assertState[startsWithState](s, "StartsWith").done
}

func (n *startsWithNode) Accept(s State, b byte) State {
	ss := assertState[startsWithState](s, "StartsWith")
	if ss.done {
		return ss
	}
	next := n.child.Accept(ss.inner, b)
	if n.child.IsMatch(next) {
		return startsWithState{done: true}
	}
	return startsWithState{inner: next}
}

// complementNode wraps a child node, reusing its State unchanged: the
// complement of a state is a pure function of the child's own predicates,
// so no extra bookkeeping is needed.
type complementNode struct {
	child Node
}

func (n *complementNode) Start() State { return n.child.Start() }

func (n *complementNode) IsMatch(s State) bool { return !n.child.IsMatch(s) }

func (n *complementNode) CanMatch(s State) bool { return !n.child.WillAlwaysMatch(s) }

func (n *complementNode) WillAlwaysMatch(s State) bool { return !n.child.CanMatch(s) }

func (n *complementNode) Accept(s State, b byte) State { return n.child.Accept(s, b) }

// pairState holds the paired state of a binary combinator's two children.
type pairState struct {
	left, right State
}

type intersectionNode struct {
	left, right Node
}

func (n *intersectionNode) Start() State {
	return pairState{left: n.left.Start(), right: n.right.Start()}
}

func (n *intersectionNode) IsMatch(s State) bool {
	p := assertState[pairState](s, "Intersection")
	return n.left.IsMatch(p.left) && n.right.IsMatch(p.right)
}

func (n *intersectionNode) CanMatch(s State) bool {
	p := assertState[pairState](s, "Intersection")
	return n.left.CanMatch(p.left) && n.right.CanMatch(p.right)
}

func (n *intersectionNode) WillAlwaysMatch(s State) bool {
	p := assertState[pairState](s, "Intersection")
	return n.left.WillAlwaysMatch(p.left) && n.right.WillAlwaysMatch(p.right)
}

// Accept advances both children, except a branch that can no longer match
// is left untouched: its CanMatch verdict is already permanently false
// (every acceptor here has monotonically non-recoverable dead states), so
// skipping the transition cannot change the intersection's outcome and
// avoids growing dead sub-state forever. This is the short-circuit policy
// the spec leaves as an implementer's choice.
func (n *intersectionNode) Accept(s State, b byte) State {
	p := assertState[pairState](s, "Intersection")
	next := p
	if n.left.CanMatch(p.left) {
		next.left = n.left.Accept(p.left, b)
	}
	if n.right.CanMatch(p.right) {
		next.right = n.right.Accept(p.right, b)
	}
	return next
}

type unionNode struct {
	left, right Node
}

func (n *unionNode) Start() State {
	return pairState{left: n.left.Start(), right: n.right.Start()}
}

func (n *unionNode) IsMatch(s State) bool {
	p := assertState[pairState](s, "Union")
	return n.left.IsMatch(p.left) || n.right.IsMatch(p.right)
}

func (n *unionNode) CanMatch(s State) bool {
	p := assertState[pairState](s, "Union")
	return n.left.CanMatch(p.left) || n.right.CanMatch(p.right)
}

func (n *unionNode) WillAlwaysMatch(s State) bool {
	p := assertState[pairState](s, "Union")
	return n.left.WillAlwaysMatch(p.left) || n.right.WillAlwaysMatch(p.right)
}

// Accept advances both children, except a branch that will always match
// from here on is left untouched: its IsMatch/WillAlwaysMatch verdicts are
// already permanently true, so the union's outcome cannot change.
func (n *unionNode) Accept(s State, b byte) State {
	p := assertState[pairState](s, "Union")
	next := p
	if !n.left.WillAlwaysMatch(p.left) {
		next.left = n.left.Accept(p.left, b)
	}
	if !n.right.WillAlwaysMatch(p.right) {
		next.right = n.right.Accept(p.right, b)
	}
	return next
}
