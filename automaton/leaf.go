package automaton

// neverNode and alwaysNode need no state at all; their single State value
// is the zero-size struct{}.

type neverNode struct{}

func (neverNode) Start() State                  { return struct{}{} }
func (neverNode) IsMatch(State) bool             { return false }
func (neverNode) CanMatch(State) bool            { return false }
func (neverNode) WillAlwaysMatch(State) bool     { return false }
func (neverNode) Accept(s State, _ byte) State   { return s }

type alwaysNode struct{}

func (alwaysNode) Start() State                { return struct{}{} }
func (alwaysNode) IsMatch(State) bool          { return true }
func (alwaysNode) CanMatch(State) bool         { return true }
func (alwaysNode) WillAlwaysMatch(State) bool  { return true }
func (alwaysNode) Accept(s State, _ byte) State { return s }

// strPos is the state for strNode: the number of pattern bytes matched so
// far, or -1 once the input has diverged from pattern ("dead").
type strPos int

const strDead strPos = -1

// strNode accepts exactly one literal string.
type strNode struct {
	pattern []byte
}

func (n *strNode) Start() State { return strPos(0) }

func (n *strNode) IsMatch(s State) bool {
	pos := assertState[strPos](s, "Str")
	return pos != strDead && int(pos) == len(n.pattern)
}

func (n *strNode) CanMatch(s State) bool {
	pos := assertState[strPos](s, "Str")
	return pos != strDead
}

func (n *strNode) WillAlwaysMatch(State) bool { return false }

func (n *strNode) Accept(s State, b byte) State {
	pos := assertState[strPos](s, "Str")
	if pos == strDead || int(pos) >= len(n.pattern) || n.pattern[pos] != b {
		return strDead
	}
	return pos + 1
}

// subseqPos is the state for subsequenceNode: the number of pattern bytes
// matched so far, saturating at len(pattern) once fully matched.
type subseqPos int

// subsequenceNode accepts any key containing pattern as a subsequence.
type subsequenceNode struct {
	pattern []byte
}

func (n *subsequenceNode) Start() State { return subseqPos(0) }

func (n *subsequenceNode) IsMatch(s State) bool {
	pos := assertState[subseqPos](s, "Subsequence")
	return int(pos) == len(n.pattern)
}

func (n *subsequenceNode) CanMatch(State) bool { return true }

func (n *subsequenceNode) WillAlwaysMatch(s State) bool {
	pos := assertState[subseqPos](s, "Subsequence")
	return int(pos) == len(n.pattern)
}

func (n *subsequenceNode) Accept(s State, b byte) State {
	pos := assertState[subseqPos](s, "Subsequence")
	if int(pos) < len(n.pattern) && n.pattern[pos] == b {
		pos++
	}
	return pos
}
