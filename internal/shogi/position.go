package shogi

import "strings"

// Position is a mailbox shogi board: an 81-square array plus each side's
// hand, incrementally Zobrist-hashed on every DoMove/UndoMove, with nothing
// beyond the Move value itself needed to reverse a move — see
// DoMove/UndoMove.
type Position struct {
	board      [81]Piece
	hands      [2]Hand
	sideToMove Color
	hash       uint64
}

// NewEmptyPosition returns a Position with an empty board, empty hands,
// Black to move. internal/notation's SFEN parser builds positions by
// placing pieces on one of these.
func NewEmptyPosition() *Position {
	p := &Position{}
	for i := range p.board {
		p.board[i] = NoPiece
	}
	return p
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Hand returns c's reserve of captured pieces.
func (p *Position) Hand(c Color) Hand {
	return p.hands[c]
}

// HashKey returns the position's current Zobrist hash, satisfying
// dfpn.Position.
func (p *Position) HashKey() uint64 {
	return p.hash
}

// OpponentHandCount returns the hand count of the side NOT to move for pt,
// satisfying dfpn.ScoringPosition — used by the solution scorer to total
// the attacker's unused hand pieces once a mating line has been replayed.
func (p *Position) OpponentHandCount(pt PieceType) int {
	return p.hands[p.sideToMove.Other()].Count(pt)
}

// SetPiece places pc on sq, updating the hash. Used only during position
// setup (SFEN parsing); DoMove/UndoMove use the unexported variant that
// participates in move make/unmake bookkeeping.
func (p *Position) SetPiece(sq Square, pc Piece) {
	p.setPiece(sq, pc)
}

// SetHandCount sets c's reserve count for pt directly, updating the hash.
// Used only during position setup.
func (p *Position) SetHandCount(c Color, pt PieceType, n int) {
	idx := handIndex(pt)
	old := p.hands[c].counts[idx]
	p.hash ^= zobristHand[c][idx][old]
	p.hands[c].counts[idx] = n
	p.hash ^= zobristHand[c][idx][n]
}

// SetSideToMove sets the side to move directly, updating the hash. Used
// only during position setup.
func (p *Position) SetSideToMove(c Color) {
	if p.sideToMove != c {
		p.hash ^= zobristSideToMove
	}
	p.sideToMove = c
}

func (p *Position) setPiece(sq Square, pc Piece) {
	old := p.board[sq]
	if !old.IsEmpty() {
		p.hash ^= zobristPiece[old.Color][old.Type][sq]
	}
	p.board[sq] = pc
	if !pc.IsEmpty() {
		p.hash ^= zobristPiece[pc.Color][pc.Type][sq]
	}
}

func (p *Position) removePiece(sq Square) Piece {
	old := p.board[sq]
	p.setPiece(sq, NoPiece)
	return old
}

func (p *Position) handAdd(c Color, pt PieceType) {
	idx := handIndex(pt)
	n := p.hands[c].counts[idx]
	p.hash ^= zobristHand[c][idx][n]
	p.hands[c].counts[idx] = n + 1
	p.hash ^= zobristHand[c][idx][n+1]
}

func (p *Position) handRemove(c Color, pt PieceType) {
	idx := handIndex(pt)
	n := p.hands[c].counts[idx]
	p.hash ^= zobristHand[c][idx][n]
	p.hands[c].counts[idx] = n - 1
	p.hash ^= zobristHand[c][idx][n-1]
}

// DoMove applies m, which must have been produced by LegalMoves
// (or carry the equivalent Moved/Captured bookkeeping) at the current
// state. Every board/hand mutation here is performed through setPiece or
// handAdd/handRemove, both of which are exact XOR involutions against the
// hash, which is what lets UndoMove reverse m using nothing but m itself.
func (p *Position) DoMove(m Move) {
	side := p.sideToMove
	if m.IsDrop() {
		p.setPiece(m.Dest, Piece{Type: m.Drop, Color: side})
		p.handRemove(side, m.Drop)
	} else {
		moved := p.removePiece(m.From)
		newType := moved.Type
		if m.Promote {
			newType = moved.Type.Promoted()
		}
		p.setPiece(m.Dest, Piece{Type: newType, Color: side})
		if m.Captured != NoPieceType {
			p.handAdd(side, m.Captured.Unpromoted())
		}
	}
	p.sideToMove = side.Other()
	p.hash ^= zobristSideToMove
}

// UndoMove reverses m, restoring the position to its state immediately
// before the matching DoMove.
func (p *Position) UndoMove(m Move) {
	p.hash ^= zobristSideToMove
	mover := p.sideToMove.Other()
	p.sideToMove = mover
	if m.IsDrop() {
		p.setPiece(m.Dest, NoPiece)
		p.handAdd(mover, m.Drop)
	} else {
		if m.Captured != NoPieceType {
			p.handRemove(mover, m.Captured.Unpromoted())
			p.setPiece(m.Dest, Piece{Type: m.Captured, Color: mover.Other()})
		} else {
			p.setPiece(m.Dest, NoPiece)
		}
		p.setPiece(m.From, Piece{Type: m.Moved, Color: mover})
	}
}

// Copy returns an independent deep copy of p.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// String renders the board as SFEN-style board rows for debugging (does
// not include hands or side to move; internal/notation owns full SFEN
// serialization).
func (p *Position) String() string {
	var b strings.Builder
	for rank := 1; rank <= 9; rank++ {
		empties := 0
		for file := 9; file >= 1; file-- {
			pc := p.board[NewSquare(file, rank)]
			if pc.IsEmpty() {
				empties++
				continue
			}
			if empties > 0 {
				b.WriteByte(byte('0' + empties))
				empties = 0
			}
			ch := pc.Type.SFENChar()
			if pc.Type.IsPromoted() {
				b.WriteByte('+')
			}
			if pc.Color == White {
				ch = ch + ('a' - 'A')
			}
			b.WriteByte(ch)
		}
		if empties > 0 {
			b.WriteByte(byte('0' + empties))
		}
		if rank != 9 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
