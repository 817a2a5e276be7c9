// Package dfpn implements a generic depth-first proof-number (DFPN) search
// kernel: threshold-controlled multiple iterative deepening over an AND/OR
// game tree, memoized through a transposition table. It knows nothing about
// shogi; it consumes any game that satisfies Position.
package dfpn

// Node tags a position with the polarity of the side that must act on it.
// Or nodes are attacker-to-move: one winning child suffices to prove mate.
// And nodes are defender-to-move: every child must be refuted.
type Node bool

const (
	Or  Node = false
	And Node = true
)

// Flip returns the opposite polarity.
func (n Node) Flip() Node {
	return !n
}

func (n Node) String() string {
	if n == Or {
		return "Or"
	}
	return "And"
}
