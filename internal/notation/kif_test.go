package notation

import (
	"testing"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

const kifFixture = `後手の持駒：金　歩十六
  ９ ８ ７ ６ ５ ４ ３ ２ １
+---------------------------+
|v玉 ・ ・ ・ ・ ・ ・ ・ ・|一
| ・v金 ・ ・ ・ ・ ・ ・ ・|二
| ・ ・ ・ ・ ・ ・ ・ ・ ・|三
| ・ ・ ・ ・ ・ ・ ・ ・ ・|四
| ・ ・ ・ ・ ・ ・ ・ ・ 馬|五
| ・ ・ ・ ・ ・ ・ ・ ・ ・|六
| ・ ・ ・ ・ ・ ・ ・ ・ ・|七
| ・ ・ ・ ・ ・ ・ ・ と ・|八
| ・ ・ ・ ・ 玉 ・ ・ ・ ・|九
+---------------------------+
先手の持駒：飛二　金
`

func TestParseKIF(t *testing.T) {
	pos, err := ParseKIF(kifFixture)
	if err != nil {
		t.Fatalf("ParseKIF() = %v", err)
	}
	if got := pos.PieceAt(shogi.NewSquare(9, 1)); got != (shogi.Piece{Type: shogi.King, Color: shogi.White}) {
		t.Errorf("PieceAt(9a) = %+v, want white king", got)
	}
	if got := pos.PieceAt(shogi.NewSquare(8, 2)); got != (shogi.Piece{Type: shogi.Gold, Color: shogi.White}) {
		t.Errorf("PieceAt(8b) = %+v, want white gold", got)
	}
	if got := pos.PieceAt(shogi.NewSquare(1, 5)); got != (shogi.Piece{Type: shogi.Horse, Color: shogi.Black}) {
		t.Errorf("PieceAt(1e) = %+v, want black horse", got)
	}
	if got := pos.PieceAt(shogi.NewSquare(2, 8)); got != (shogi.Piece{Type: shogi.ProPawn, Color: shogi.Black}) {
		t.Errorf("PieceAt(2h) = %+v, want black tokin", got)
	}
	if got := pos.PieceAt(shogi.NewSquare(5, 9)); got != (shogi.Piece{Type: shogi.King, Color: shogi.Black}) {
		t.Errorf("PieceAt(5i) = %+v, want black king", got)
	}
	if got := pos.Hand(shogi.White).Count(shogi.Gold); got != 1 {
		t.Errorf("white gold hand count = %d, want 1", got)
	}
	if got := pos.Hand(shogi.White).Count(shogi.Pawn); got != 16 {
		t.Errorf("white pawn hand count = %d, want 16", got)
	}
	if got := pos.Hand(shogi.Black).Count(shogi.Rook); got != 2 {
		t.Errorf("black rook hand count = %d, want 2", got)
	}
	if got := pos.Hand(shogi.Black).Count(shogi.Gold); got != 1 {
		t.Errorf("black gold hand count = %d, want 1", got)
	}
	if pos.SideToMove() != shogi.Black {
		t.Errorf("SideToMove() = %v, want Black", pos.SideToMove())
	}
}

func TestParseKIFErrors(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "no board section", record: "先手の持駒：なし\n"},
		{
			name: "publisher-specific promoted glyph",
			record: `+---------------------------+
|v全 ・ ・ ・ ・ ・ ・ ・ ・|一
+---------------------------+
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseKIF(tc.record); err == nil {
				t.Error("ParseKIF() succeeded, want error")
			}
		})
	}
}

func TestParseKIFEmptyHands(t *testing.T) {
	record := `先手の持駒：なし
+---------------------------+
| ・ ・ ・ ・ ・ ・ ・ ・v玉|一
+---------------------------+
`
	pos, err := ParseKIF(record)
	if err != nil {
		t.Fatalf("ParseKIF() = %v", err)
	}
	if !pos.Hand(shogi.Black).IsEmpty() {
		t.Error("black hand is not empty")
	}
	if got := pos.PieceAt(shogi.NewSquare(1, 1)); got != (shogi.Piece{Type: shogi.King, Color: shogi.White}) {
		t.Errorf("PieceAt(1a) = %+v, want white king", got)
	}
}
