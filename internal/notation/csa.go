package notation

import (
	"fmt"
	"strings"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

var csaPieceCodes = map[shogi.PieceType]string{
	shogi.Pawn:      "FU",
	shogi.Lance:     "KY",
	shogi.Knight:    "KE",
	shogi.Silver:    "GI",
	shogi.Gold:      "KI",
	shogi.Bishop:    "KA",
	shogi.Rook:      "HI",
	shogi.King:      "OU",
	shogi.ProPawn:   "TO",
	shogi.ProLance:  "NY",
	shogi.ProKnight: "NK",
	shogi.ProSilver: "NG",
	shogi.Horse:     "UM",
	shogi.Dragon:    "RY",
}

// FormatCSA renders a single move played from pos (the position *before*
// the move) in CSA notation, e.g. "+7776FU" or "-0034KE" for a drop.
func FormatCSA(pos *shogi.Position, m shogi.Move) string {
	var b strings.Builder
	if pos.SideToMove() == shogi.Black {
		b.WriteByte('+')
	} else {
		b.WriteByte('-')
	}

	if m.IsDrop() {
		b.WriteString("00")
		fmt.Fprintf(&b, "%d%d", m.To().File(), m.To().Rank())
		b.WriteString(csaPieceCodes[m.Drop])
		return b.String()
	}

	fmt.Fprintf(&b, "%d%d", m.From.File(), m.From.Rank())
	fmt.Fprintf(&b, "%d%d", m.To().File(), m.To().Rank())
	pt := m.Moved
	if m.Promote {
		pt = pt.Promoted()
	}
	b.WriteString(csaPieceCodes[pt])
	return b.String()
}

// FormatCSASequence renders a full move sequence as CSA strings, replaying
// each move against a scratch copy of pos (since CSA's side-to-move prefix
// needs the position at the point the move is played, not the final
// position).
func FormatCSASequence(pos *shogi.Position, moves []shogi.Move) []string {
	scratch := pos.Copy()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatCSA(scratch, m)
		scratch.DoMove(m)
	}
	return out
}
