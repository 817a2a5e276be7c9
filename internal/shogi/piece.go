// Package shogi implements a mailbox-based shogi position representation:
// board state, hands, Zobrist hashing, and legal move generation with
// make/unmake, in the style of the chess rule engine this module's
// DFPN solver was adapted from, generalized to a 9x9 board with drops.
package shogi

// Color is the side to move: Black (sente, first player) or White (gote,
// second player).
type Color uint8

const (
	Black Color = iota
	White
	NoColor Color = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "NoColor"
	}
}

// PieceType enumerates every shogi piece, including promoted forms. Gold
// and King never promote; the rest have a promoted counterpart.
type PieceType uint8

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn   // と金 (tokin)
	ProLance  // 成香
	ProKnight // 成桂
	ProSilver // 成銀
	Horse     // 馬 (promoted bishop)
	Dragon    // 龍 (promoted rook)
	NoPieceType PieceType = 14
)

// Promotable reports whether pt has a promoted form.
func (pt PieceType) Promotable() bool {
	switch pt {
	case Pawn, Lance, Knight, Silver, Bishop, Rook:
		return true
	default:
		return false
	}
}

// Promoted returns pt's promoted form. Panics if pt is not Promotable.
func (pt PieceType) Promoted() PieceType {
	switch pt {
	case Pawn:
		return ProPawn
	case Lance:
		return ProLance
	case Knight:
		return ProKnight
	case Silver:
		return ProSilver
	case Bishop:
		return Horse
	case Rook:
		return Dragon
	default:
		panic("shogi: piece type has no promoted form")
	}
}

// IsPromoted reports whether pt is itself a promoted piece.
func (pt PieceType) IsPromoted() bool {
	switch pt {
	case ProPawn, ProLance, ProKnight, ProSilver, Horse, Dragon:
		return true
	default:
		return false
	}
}

// Unpromoted returns the base piece type a promoted piece demotes to on
// capture. Returns pt unchanged if it is not itself promoted.
func (pt PieceType) Unpromoted() PieceType {
	switch pt {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case Horse:
		return Bishop
	case Dragon:
		return Rook
	default:
		return pt
	}
}

// Droppable reports whether pt is one of the seven piece types that can be
// held in hand and dropped. Promoted pieces always demote before entering
// a hand, so they are never themselves droppable.
func (pt PieceType) Droppable() bool {
	switch pt {
	case Pawn, Lance, Knight, Silver, Gold, Bishop, Rook:
		return true
	default:
		return false
	}
}

// HandPieceTypes lists the seven piece types a hand ever holds, in the
// conventional display order (used for SFEN hand serialization and the
// DFPN scorer's hand-count summation).
var HandPieceTypes = [7]PieceType{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}

// SFENChar is the single-letter SFEN/CSA piece code, independent of
// promotion prefix and case (case encodes color, a leading '+' encodes
// promotion).
func (pt PieceType) SFENChar() byte {
	switch pt.Unpromoted() {
	case Pawn:
		return 'P'
	case Lance:
		return 'L'
	case Knight:
		return 'N'
	case Silver:
		return 'S'
	case Gold:
		return 'G'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// Piece is a PieceType owned by a Color.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece marks an empty square.
var NoPiece = Piece{Type: NoPieceType, Color: NoColor}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}
