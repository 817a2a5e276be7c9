// Package solver binds internal/shogi to the internal/dfpn.Position and
// dfpn.ScoringPosition contracts, implementing the tsumeshogi-specific
// move filtering (check-giving moves only at Or, all legal responses at
// And) that distinguishes a mate-search position from a regular one.
package solver

import (
	"github.com/komadai/tsumedfpn/internal/dfpn"
	"github.com/komadai/tsumedfpn/internal/shogi"
)

// Position adapts a *shogi.Position to dfpn.Position[shogi.Move] and
// dfpn.ScoringPosition[shogi.Move, shogi.PieceType].
type Position struct {
	pos *shogi.Position
}

// NewPosition wraps pos for use as a DFPN search root. pos must have the
// attacker to move (tsumeshogi problems are always posed with the side
// that must deliver mate to move).
func NewPosition(pos *shogi.Position) *Position {
	return &Position{pos: pos}
}

// Shogi returns the underlying rule-engine position, e.g. for notation
// formatting of the final board state.
func (p *Position) Shogi() *shogi.Position {
	return p.pos
}

func (p *Position) HashKey() uint64 {
	return p.pos.HashKey()
}

func (p *Position) DoMove(m shogi.Move) {
	p.pos.DoMove(m)
}

func (p *Position) UndoMove(m shogi.Move) {
	p.pos.UndoMove(m)
}

func (p *Position) OpponentHandCount(pt shogi.PieceType) int {
	return p.pos.OpponentHandCount(pt)
}

// GenerateLegalMoves implements the Or/And move-filtering rule: at an Or
// node (attacker to move) only moves that give check are candidates, since a
// mating line never has the attacker play a non-checking move; at an And
// node (defender to move) every legal response is a candidate, since the
// defender must be shown to have no escape.
//
// A move generator could additionally prune interposition drops at
// generation time once a square is shown not to block a check (a
// king-reachable-square filter). This adapter generates the full legal set
// instead and leaves that pruning to the scorer's wasted-drop detection
// post-search: semantically equivalent for correctness, costing only some
// extra nodes explored for positions with many simultaneously-legal but
// useless interpositions. See DESIGN.md.
func (p *Position) GenerateLegalMoves(node dfpn.Node) []dfpn.Child[shogi.Move] {
	side := p.pos.SideToMove()
	all := p.pos.LegalMoves(side)

	var candidates []shogi.Move
	if node == dfpn.Or {
		for _, m := range all {
			if p.pos.GivesCheck(m) {
				candidates = append(candidates, m)
			}
		}
	} else {
		candidates = all
	}

	children := make([]dfpn.Child[shogi.Move], 0, len(candidates))
	for _, m := range candidates {
		p.pos.DoMove(m)
		hash := p.pos.HashKey()
		p.pos.UndoMove(m)
		children = append(children, dfpn.Child[shogi.Move]{Move: m, Hash: hash})
	}
	return children
}
