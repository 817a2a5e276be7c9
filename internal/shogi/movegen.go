package shogi

// offset is a (file, rank) displacement used to describe piece movement,
// expressed independent of color; movementOffsets resolves "forward" per
// color before returning.
type offset struct {
	df, dr int
}

func inBoard(file, rank int) bool {
	return file >= 1 && file <= 9 && rank >= 1 && rank <= 9
}

func backRank(c Color) int {
	if c == Black {
		return 1
	}
	return 9
}

// secondRank is the rank one short of backRank, the other rank a knight
// can never legally be dropped on (it would have no future move).
func secondRank(c Color) int {
	if c == Black {
		return 2
	}
	return 8
}

// movementOffsets returns the single-step and sliding displacement sets for
// pt moving as color c. Bishop/Rook/King/Horse/Dragon are color-independent;
// everything else depends on which way is "forward".
func movementOffsets(pt PieceType, c Color) (steps, slides []offset) {
	fwd := 1
	if c == Black {
		fwd = -1
	}
	switch pt {
	case Pawn:
		steps = []offset{{0, fwd}}
	case Lance:
		slides = []offset{{0, fwd}}
	case Knight:
		steps = []offset{{-1, 2 * fwd}, {1, 2 * fwd}}
	case Silver:
		steps = []offset{{0, fwd}, {-1, fwd}, {1, fwd}, {-1, -fwd}, {1, -fwd}}
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		steps = []offset{{0, fwd}, {-1, fwd}, {1, fwd}, {-1, 0}, {1, 0}, {0, -fwd}}
	case Bishop:
		slides = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	case Rook:
		slides = []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	case King:
		steps = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	case Horse:
		slides = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
		steps = []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	case Dragon:
		slides = []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
		steps = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	return
}

// destinationsFrom returns every square a piece of type pt and color c
// standing on sq could move to, capturing but never passing through an
// occupied square, ignoring whether the move leaves its own king in check.
func (p *Position) destinationsFrom(sq Square, pt PieceType, c Color) []Square {
	file, rank := sq.File(), sq.Rank()
	steps, slides := movementOffsets(pt, c)
	var dests []Square

	for _, o := range steps {
		nf, nr := file+o.df, rank+o.dr
		if !inBoard(nf, nr) {
			continue
		}
		to := NewSquare(nf, nr)
		occ := p.board[to]
		if occ.IsEmpty() || occ.Color != c {
			dests = append(dests, to)
		}
	}

	for _, o := range slides {
		nf, nr := file+o.df, rank+o.dr
		for inBoard(nf, nr) {
			to := NewSquare(nf, nr)
			occ := p.board[to]
			if occ.IsEmpty() {
				dests = append(dests, to)
			} else {
				if occ.Color != c {
					dests = append(dests, to)
				}
				break
			}
			nf += o.df
			nr += o.dr
		}
	}
	return dests
}

func (p *Position) kingSquare(c Color) Square {
	for sq := Square(0); sq < 81; sq++ {
		pc := p.board[sq]
		if pc.Color == c && pc.Type == King {
			return sq
		}
	}
	return NoSquare
}

// attackedBy reports whether any piece of color by attacks target.
func (p *Position) attackedBy(by Color, target Square) bool {
	for sq := Square(0); sq < 81; sq++ {
		pc := p.board[sq]
		if pc.IsEmpty() || pc.Color != by {
			continue
		}
		for _, d := range p.destinationsFrom(sq, pc.Type, by) {
			if d == target {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	ks := p.kingSquare(c)
	if ks == NoSquare {
		return false
	}
	return p.attackedBy(c.Other(), ks)
}

func inPromotionZone(c Color, rank int) bool {
	if c == Black {
		return rank <= 3
	}
	return rank >= 7
}

func mustPromote(pt PieceType, c Color, toRank int) bool {
	switch pt {
	case Pawn, Lance:
		return toRank == backRank(c)
	case Knight:
		return toRank == backRank(c) || toRank == secondRank(c)
	default:
		return false
	}
}

func (p *Position) hasPawnOnFile(c Color, file int) bool {
	for rank := 1; rank <= 9; rank++ {
		pc := p.board[NewSquare(file, rank)]
		if pc.Color == c && pc.Type == Pawn {
			return true
		}
	}
	return false
}

// pseudoLegalMoves generates every structurally legal move for c: normal
// moves respecting promotion-zone and forced-promotion rules, and drops
// respecting two-pawn (nifu) and dead-square (pawn/lance/knight on a rank
// from which they could never move again) restrictions. It does not check
// whether a move leaves c's own king in check, nor the drop-pawn-mate
// (uchifuzume) restriction — both are filtered by LegalMoves.
func (p *Position) pseudoLegalMoves(c Color) []Move {
	var moves []Move

	for sq := Square(0); sq < 81; sq++ {
		pc := p.board[sq]
		if pc.IsEmpty() || pc.Color != c {
			continue
		}
		for _, to := range p.destinationsFrom(sq, pc.Type, c) {
			captured := p.board[to]
			capturedType := NoPieceType
			if !captured.IsEmpty() {
				capturedType = captured.Type
			}
			toRank, fromRank := to.Rank(), sq.Rank()
			canPromote := pc.Type.Promotable() && (inPromotionZone(c, toRank) || inPromotionZone(c, fromRank))
			forced := canPromote && mustPromote(pc.Type, c, toRank)
			if canPromote {
				moves = append(moves, Move{From: sq, Dest: to, Drop: NoPieceType, Promote: true, Moved: pc.Type, Captured: capturedType})
			}
			if !forced {
				moves = append(moves, Move{From: sq, Dest: to, Drop: NoPieceType, Promote: false, Moved: pc.Type, Captured: capturedType})
			}
		}
	}

	hand := p.hands[c]
	for _, pt := range HandPieceTypes {
		if hand.Count(pt) == 0 {
			continue
		}
		for sq := Square(0); sq < 81; sq++ {
			if !p.board[sq].IsEmpty() {
				continue
			}
			rank := sq.Rank()
			switch pt {
			case Pawn, Lance:
				if rank == backRank(c) {
					continue
				}
			case Knight:
				if rank == backRank(c) || rank == secondRank(c) {
					continue
				}
			}
			if pt == Pawn && p.hasPawnOnFile(c, sq.File()) {
				continue
			}
			moves = append(moves, Move{From: NoSquare, Dest: sq, Drop: pt, Moved: NoPieceType, Captured: NoPieceType})
		}
	}
	return moves
}

// LegalMoves generates every fully legal move for c: pseudo-legal moves
// filtered by make/check/unmake for own-king safety, with the
// drop-pawn-mate (uchifuzume) restriction applied to pawn drops that give
// check. This brute-force filter (rather than a precomputed pin/checkers
// bitboard) is a deliberate simplification for a 9x9 mailbox board with no
// sliding-attack tables; see DESIGN.md.
func (p *Position) LegalMoves(c Color) []Move {
	pseudo := p.pseudoLegalMoves(c)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		p.DoMove(m)
		ok := !p.InCheck(c)
		if ok && m.IsDrop() && m.Drop == Pawn && p.InCheck(c.Other()) {
			if len(p.LegalMoves(c.Other())) == 0 {
				ok = false
			}
		}
		p.UndoMove(m)
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// GivesCheck reports whether playing m would leave the opponent in check.
// m must be legal for the side currently to move.
func (p *Position) GivesCheck(m Move) bool {
	mover := p.sideToMove
	p.DoMove(m)
	check := p.InCheck(mover.Other())
	p.UndoMove(m)
	return check
}
