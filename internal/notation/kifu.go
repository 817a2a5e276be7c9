package notation

import (
	"strings"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

var kifuFiles = [9]string{"１", "２", "３", "４", "５", "６", "７", "８", "９"}
var kifuRanks = [9]string{"一", "二", "三", "四", "五", "六", "七", "八", "九"}

var kifuPieceNames = map[shogi.PieceType]string{
	shogi.Pawn:      "歩",
	shogi.Lance:     "香",
	shogi.Knight:    "桂",
	shogi.Silver:    "銀",
	shogi.Gold:      "金",
	shogi.Bishop:    "角",
	shogi.Rook:      "飛",
	shogi.King:      "玉",
	shogi.ProPawn:   "と",
	shogi.ProLance:  "成香",
	shogi.ProKnight: "成桂",
	shogi.ProSilver: "成銀",
	shogi.Horse:     "馬",
	shogi.Dragon:    "龍",
}

// FormatKIFU renders a single move as a best-effort kansuji KIF string,
// e.g. "７六歩" or "５三銀打" for a drop, "８二飛成" for a promoting move.
// This is an approximation of full KIF notation: 打 is written on every
// drop, and the "同" same-square shorthand and the 引/上/直/寄
// disambiguation suffixes a human transcript would use when two like
// pieces could reach the same square are never written — see DESIGN.md.
func FormatKIFU(pos *shogi.Position, m shogi.Move) string {
	var b strings.Builder
	to := m.To()
	b.WriteString(kifuFiles[to.File()-1])
	b.WriteString(kifuRanks[to.Rank()-1])

	if m.IsDrop() {
		b.WriteString(kifuPieceNames[m.Drop])
		b.WriteString("打")
		return b.String()
	}

	b.WriteString(kifuPieceNames[m.Moved])
	if m.Promote {
		b.WriteString("成")
	}
	return b.String()
}

// FormatKIFUSequence renders a full move sequence as kansuji KIF strings,
// replaying each move against a scratch copy of pos.
func FormatKIFUSequence(pos *shogi.Position, moves []shogi.Move) []string {
	scratch := pos.Copy()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatKIFU(scratch, m)
		scratch.DoMove(m)
	}
	return out
}
