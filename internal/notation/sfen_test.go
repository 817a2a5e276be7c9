package notation

import (
	"testing"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

func TestParseSFEN(t *testing.T) {
	const sfen = "ln1gkg1nl/6+P2/2sppps1p/2p3p2/p8/P1P1P3P/2NP1PP2/3s1KSR1/L1+b2G1NL w R2Pbgp 42"
	pos, err := ParseSFEN(sfen)
	if err != nil {
		t.Fatalf("ParseSFEN() = %v", err)
	}

	if pos.SideToMove() != shogi.White {
		t.Errorf("SideToMove() = %v, want White", pos.SideToMove())
	}
	if got := pos.PieceAt(shogi.NewSquare(9, 1)); got != (shogi.Piece{Type: shogi.Lance, Color: shogi.White}) {
		t.Errorf("PieceAt(9a) = %+v, want white lance", got)
	}
	if got := pos.PieceAt(shogi.NewSquare(5, 1)); got != (shogi.Piece{Type: shogi.King, Color: shogi.White}) {
		t.Errorf("PieceAt(5a) = %+v, want white king", got)
	}
	if got := pos.PieceAt(shogi.NewSquare(3, 2)); got != (shogi.Piece{Type: shogi.ProPawn, Color: shogi.Black}) {
		t.Errorf("PieceAt(3b) = %+v, want black tokin", got)
	}
	if got := pos.Hand(shogi.Black).Count(shogi.Rook); got != 1 {
		t.Errorf("black rook hand count = %d, want 1", got)
	}
	if got := pos.Hand(shogi.Black).Count(shogi.Pawn); got != 2 {
		t.Errorf("black pawn hand count = %d, want 2", got)
	}
	if got := pos.Hand(shogi.White).Count(shogi.Bishop); got != 1 {
		t.Errorf("white bishop hand count = %d, want 1", got)
	}
	if got := pos.Hand(shogi.White).Count(shogi.Gold); got != 1 {
		t.Errorf("white gold hand count = %d, want 1", got)
	}
	if got := pos.Hand(shogi.White).Count(shogi.Pawn); got != 1 {
		t.Errorf("white pawn hand count = %d, want 1", got)
	}
}

func TestParseSFENErrors(t *testing.T) {
	tests := []string{
		"",
		"ln1gkg1nl w -",                 // fewer than 9 ranks
		"9/9/9/9/9/9/9/9/9 x - 1",       // bad side to move
		"9/9/9/9/9/9/9/9/9 b K 1",       // king in hand
		"xn1gkg1nl/9/9/9/9/9/9/9/9 b -", // bad piece char
	}
	for _, sfen := range tests {
		if _, err := ParseSFEN(sfen); err == nil {
			t.Errorf("ParseSFEN(%q) succeeded, want error", sfen)
		}
	}
}

// TestFormatSFENRoundTrip parses, formats and re-parses fixtures, comparing
// position hashes: the textual form may normalize (move number reset to 1)
// but the position itself must survive unchanged.
func TestFormatSFENRoundTrip(t *testing.T) {
	sfens := []string{
		"ln1gkg1nl/6+P2/2sppps1p/2p3p2/p8/P1P1P3P/2NP1PP2/3s1KSR1/L1+b2G1NL w R2Pbgp 42",
		"7+P1/5R1s1/6ks1/9/5L1p1/9/9/9/9 b R2b4g2s4n3l16p 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1",
	}
	for _, sfen := range sfens {
		pos, err := ParseSFEN(sfen)
		if err != nil {
			t.Fatalf("ParseSFEN(%q) = %v", sfen, err)
		}
		reparsed, err := ParseSFEN(FormatSFEN(pos))
		if err != nil {
			t.Fatalf("re-parsing %q: %v", FormatSFEN(pos), err)
		}
		if pos.HashKey() != reparsed.HashKey() {
			t.Errorf("round trip changed the position: %q became %q", sfen, FormatSFEN(reparsed))
		}
	}
}

func TestFormatSFENHandsEmpty(t *testing.T) {
	pos, err := ParseSFEN("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1")
	if err != nil {
		t.Fatalf("ParseSFEN() = %v", err)
	}
	if got := FormatSFENHands(pos); got != "-" {
		t.Errorf("FormatSFENHands() = %q, want \"-\"", got)
	}
}
