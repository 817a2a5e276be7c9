package notation

import "github.com/komadai/tsumedfpn/internal/shogi"

// FormatUSI renders a single move in USI notation ("7g7f", "7g7f+",
// "P*5e"). shogi.Move.String already produces this; this wrapper exists so
// every output format has a same-shaped entry point in this package.
func FormatUSI(m shogi.Move) string {
	return m.String()
}

// FormatUSISequence renders a full move sequence as USI strings, in order.
func FormatUSISequence(moves []shogi.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatUSI(m)
	}
	return out
}
