package automaton

import "github.com/blevesearch/vellum"

// Compile adapts a Node to vellum.Automaton, the interface the FST search
// primitive drives during a guided traversal. vellum represents automaton
// state as a plain int; this adapter interns each State value produced
// along a traversal into a registry and hands back its index, mirroring
// the state-cache/registry idiom the teacher uses for its lazy DFA
// (dfa/lazy's state cache maps a computed state to a small integer handle).
//
// The returned vellum.Automaton is not safe for concurrent reuse: build a
// fresh one per stream, exactly as the streaming layer does for every
// search-driven iterator it constructs.
func Compile(n Node) vellum.Automaton {
	return &compiled{node: n}
}

type compiled struct {
	node   Node
	states []State
}

func (c *compiled) intern(s State) int {
	c.states = append(c.states, s)
	return len(c.states) - 1
}

func (c *compiled) state(i int) State { return c.states[i] }

func (c *compiled) Start() int { return c.intern(c.node.Start()) }

func (c *compiled) IsMatch(i int) bool { return c.node.IsMatch(c.state(i)) }

func (c *compiled) CanMatch(i int) bool { return c.node.CanMatch(c.state(i)) }

func (c *compiled) WillAlwaysMatch(i int) bool { return c.node.WillAlwaysMatch(c.state(i)) }

func (c *compiled) Accept(i int, b byte) int { return c.intern(c.node.Accept(c.state(i), b)) }
