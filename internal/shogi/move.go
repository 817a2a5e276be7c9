package shogi

import "fmt"

// Move is a single shogi move: either a normal move of a piece already on
// the board (From valid, Drop is NoPieceType) or a drop from hand (From ==
// NoSquare, Drop the piece type placed). It is a plain comparable struct
// rather than a packed bit encoding, since shogi moves carry enough variant
// structure (drops, two promotion directions) that the solution
// extractor/scorer in internal/dfpn need to inspect it directly (see
// dfpn.MoveConstraint).
type Move struct {
	From     Square
	Dest     Square
	Drop     PieceType // NoPieceType unless this is a drop
	Promote  bool
	Moved    PieceType // the piece type occupying From before the move (for normal moves)
	Captured PieceType // NoPieceType if the destination was empty
}

// To returns the move's destination square, satisfying dfpn.MoveConstraint.
func (m Move) To() Square {
	return m.Dest
}

// IsDrop reports whether m places a piece from hand, satisfying
// dfpn.MoveConstraint.
func (m Move) IsDrop() bool {
	return m.From == NoSquare
}

// DroppedPieceType returns the piece type placed by a drop move. Only
// meaningful when IsDrop() is true, per dfpn.MoveConstraint's contract.
func (m Move) DroppedPieceType() PieceType {
	return m.Drop
}

// String renders m in USI notation: "7g7f", "7g7f+" for a promoting move,
// or "P*5e" for a drop.
func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%c*%s", m.Drop.SFENChar(), m.Dest)
	}
	s := m.From.String() + m.Dest.String()
	if m.Promote {
		s += "+"
	}
	return s
}
