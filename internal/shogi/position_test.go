package shogi

import "testing"

// initialPosition builds the standard shogi starting position, matching the
// SFEN "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
// without going through internal/notation, so this package's tests have no
// dependency on the parser package.
func initialPosition(t *testing.T) *Position {
	t.Helper()
	p := NewEmptyPosition()

	backRow := []PieceType{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for i, pt := range backRow {
		file := 9 - i
		p.SetPiece(NewSquare(file, 1), Piece{Type: pt, Color: White})
		p.SetPiece(NewSquare(file, 9), Piece{Type: pt, Color: Black})
	}
	p.SetPiece(NewSquare(8, 2), Piece{Type: Rook, Color: White})
	p.SetPiece(NewSquare(2, 2), Piece{Type: Bishop, Color: White})
	p.SetPiece(NewSquare(8, 8), Piece{Type: Bishop, Color: Black})
	p.SetPiece(NewSquare(2, 8), Piece{Type: Rook, Color: Black})
	for file := 1; file <= 9; file++ {
		p.SetPiece(NewSquare(file, 3), Piece{Type: Pawn, Color: White})
		p.SetPiece(NewSquare(file, 7), Piece{Type: Pawn, Color: Black})
	}
	p.SetSideToMove(Black)
	return p
}

// TestDoUndoSymmetry checks that, for every legal move at the initial
// position, DoMove followed by UndoMove restores the hash and the full
// board/hand state exactly.
func TestDoUndoSymmetry(t *testing.T) {
	p := initialPosition(t)
	before := *p
	moves := p.LegalMoves(Black)
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the initial position")
	}
	for _, m := range moves {
		p.DoMove(m)
		p.UndoMove(m)
		if p.hash != before.hash {
			t.Fatalf("move %+v: hash not restored: got %x, want %x", m, p.hash, before.hash)
		}
		if p.board != before.board {
			t.Fatalf("move %+v: board not restored", m)
		}
		if p.hands != before.hands {
			t.Fatalf("move %+v: hands not restored", m)
		}
		if p.sideToMove != before.sideToMove {
			t.Fatalf("move %+v: side to move not restored", m)
		}
	}
}

// TestLegalMovesExcludesSelfCheck ensures the own-king-safety filter in
// LegalMoves actually removes moves that would leave the mover in check: a
// king checked by a rook down its file must not be offered a step that
// stays on that file.
func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	p := NewEmptyPosition()
	p.SetPiece(NewSquare(5, 9), Piece{Type: King, Color: Black})
	p.SetPiece(NewSquare(5, 1), Piece{Type: Rook, Color: White})
	p.SetSideToMove(Black)

	moves := p.LegalMoves(Black)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal escape from the rook's check")
	}
	for _, m := range moves {
		p.DoMove(m)
		inCheck := p.InCheck(Black)
		p.UndoMove(m)
		if inCheck {
			t.Fatalf("LegalMoves returned %+v, which leaves Black's king in check", m)
		}
	}
}

// TestNifuProhibitsSecondPawnOnFile covers the two-pawn (二歩) drop
// restriction: a side already holding a pawn on a file may not drop a
// second one onto that same file.
func TestNifuProhibitsSecondPawnOnFile(t *testing.T) {
	p := NewEmptyPosition()
	p.SetPiece(NewSquare(5, 9), Piece{Type: King, Color: Black})
	p.SetPiece(NewSquare(5, 1), Piece{Type: King, Color: White})
	p.SetPiece(NewSquare(5, 5), Piece{Type: Pawn, Color: Black})
	p.SetHandCount(Black, Pawn, 1)
	p.SetSideToMove(Black)

	for _, m := range p.LegalMoves(Black) {
		if m.IsDrop() && m.Drop == Pawn && m.Dest.File() == 5 {
			t.Fatalf("LegalMoves allowed a nifu drop: %+v", m)
		}
	}
}

// TestUchifuzumeProhibitsPawnDropMate covers the drop-pawn-mate (打ち歩詰め)
// restriction: White's king, boxed into a corner and otherwise checkmated
// only by a pawn drop, must not have that drop offered as legal.
func TestUchifuzumeProhibitsPawnDropMate(t *testing.T) {
	p := NewEmptyPosition()
	p.SetPiece(NewSquare(1, 1), Piece{Type: King, Color: White})
	// Covers the drop square (1,2) without itself checking the king.
	p.SetPiece(NewSquare(2, 4), Piece{Type: Knight, Color: Black})
	// Cover the king's other two flight squares, (2,1) and (2,2), from a
	// distance that does not check the king directly.
	p.SetPiece(NewSquare(3, 1), Piece{Type: Gold, Color: Black})
	p.SetPiece(NewSquare(3, 3), Piece{Type: Gold, Color: Black})
	p.SetPiece(NewSquare(9, 9), Piece{Type: King, Color: Black})
	p.SetHandCount(Black, Pawn, 1)
	p.SetSideToMove(Black)

	for _, m := range p.LegalMoves(Black) {
		if m.IsDrop() && m.Drop == Pawn && m.Dest == NewSquare(1, 2) {
			t.Fatalf("LegalMoves allowed an uchifuzume drop: %+v", m)
		}
	}
}

// TestForcedPromotion covers the dead-square promotion rule: a pawn moving
// onto its back rank has no further move, so only the promoting version of
// the move may be generated; one rank earlier both versions are offered.
func TestForcedPromotion(t *testing.T) {
	p := NewEmptyPosition()
	p.SetPiece(NewSquare(5, 9), Piece{Type: King, Color: Black})
	p.SetPiece(NewSquare(1, 1), Piece{Type: King, Color: White})
	p.SetPiece(NewSquare(9, 2), Piece{Type: Pawn, Color: Black})
	p.SetSideToMove(Black)

	var promoting, quiet int
	for _, m := range p.LegalMoves(Black) {
		if m.IsDrop() || m.Moved != Pawn {
			continue
		}
		if m.Dest != NewSquare(9, 1) {
			t.Fatalf("pawn move to unexpected square %v", m.Dest)
		}
		if m.Promote {
			promoting++
		} else {
			quiet++
		}
	}
	if promoting != 1 || quiet != 0 {
		t.Fatalf("pawn on 9b generated %d promoting / %d quiet moves to 9a, want 1 / 0", promoting, quiet)
	}
}

// TestGivesCheckRestoresState ensures GivesCheck's internal do/undo leaves
// the position untouched, since the solver adapter calls it once per
// candidate move while generating Or-node children.
func TestGivesCheckRestoresState(t *testing.T) {
	p := initialPosition(t)
	before := p.HashKey()
	for _, m := range p.LegalMoves(Black) {
		p.GivesCheck(m)
		if p.HashKey() != before {
			t.Fatalf("GivesCheck(%+v) left the hash mutated", m)
		}
	}
}
