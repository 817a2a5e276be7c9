// Package notation parses SFEN, CSA and KIF game records into
// internal/shogi positions, and formats internal/shogi moves back out as
// USI, CSA or kansuji-KIFU strings. internal/dfpn and internal/solver never
// touch text; every parse error here is a regular Go error, never a panic.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

var sfenPieceTypes = map[byte]shogi.PieceType{
	'P': shogi.Pawn,
	'L': shogi.Lance,
	'N': shogi.Knight,
	'S': shogi.Silver,
	'G': shogi.Gold,
	'B': shogi.Bishop,
	'R': shogi.Rook,
	'K': shogi.King,
}

// ParseSFEN parses an SFEN position record: "<board> <side> <hands>
// <movenum>". The move-number field is accepted but not retained — it has
// no bearing on rule-engine state.
func ParseSFEN(sfen string) (*shogi.Position, error) {
	fields := strings.Fields(strings.TrimSpace(sfen))
	if len(fields) < 3 {
		return nil, fmt.Errorf("notation: malformed sfen %q: need at least 3 fields", sfen)
	}

	pos := shogi.NewEmptyPosition()
	if err := parseSFENBoard(pos, fields[0]); err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}

	switch fields[1] {
	case "b":
		pos.SetSideToMove(shogi.Black)
	case "w":
		pos.SetSideToMove(shogi.White)
	default:
		return nil, fmt.Errorf("notation: malformed sfen %q: bad side-to-move %q", sfen, fields[1])
	}

	if err := parseSFENHands(pos, fields[2]); err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}

	return pos, nil
}

func parseSFENBoard(pos *shogi.Position, board string) error {
	rows := strings.Split(board, "/")
	if len(rows) != 9 {
		return fmt.Errorf("malformed board %q: expected 9 ranks, got %d", board, len(rows))
	}
	for rankIdx, row := range rows {
		rank := rankIdx + 1
		file := 9
		promote := false
		for i := 0; i < len(row); i++ {
			c := row[i]
			switch {
			case c == '+':
				promote = true
			case c >= '1' && c <= '9':
				n := int(c - '0')
				file -= n
				promote = false
			default:
				color := shogi.Black
				letter := c
				if c >= 'a' && c <= 'z' {
					color = shogi.White
					letter = c - ('a' - 'A')
				}
				pt, ok := sfenPieceTypes[letter]
				if !ok {
					return fmt.Errorf("malformed board %q: bad piece char %q", board, c)
				}
				if promote {
					if !pt.Promotable() {
						return fmt.Errorf("malformed board %q: piece char %q cannot promote", board, c)
					}
					pt = pt.Promoted()
				}
				if file < 1 {
					return fmt.Errorf("malformed board %q: rank %d overflows files", board, rank)
				}
				pos.SetPiece(shogi.NewSquare(file, rank), shogi.Piece{Type: pt, Color: color})
				file--
				promote = false
			}
		}
	}
	return nil
}

func parseSFENHands(pos *shogi.Position, hands string) error {
	if hands == "-" {
		return nil
	}
	count := 0
	for i := 0; i < len(hands); i++ {
		c := hands[i]
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			continue
		}
		n := count
		if n == 0 {
			n = 1
		}
		count = 0

		color := shogi.Black
		letter := c
		if c >= 'a' && c <= 'z' {
			color = shogi.White
			letter = c - ('a' - 'A')
		}
		pt, ok := sfenPieceTypes[letter]
		if !ok || !pt.Droppable() {
			return fmt.Errorf("malformed hands %q: bad piece char %q", hands, c)
		}
		if pos.Hand(color).Count(pt)+n > 18 {
			return fmt.Errorf("malformed hands %q: more than 18 of %q", hands, c)
		}
		pos.SetHandCount(color, pt, pos.Hand(color).Count(pt)+n)
	}
	return nil
}

// FormatSFENBoard renders just the board field of an SFEN record (the
// String method on *shogi.Position); exported here so callers that already
// hold a *shogi.Position get a single, consistent entry point for every
// notation format.
func FormatSFENBoard(pos *shogi.Position) string {
	return pos.String()
}

// FormatSFENHands renders the hands field of an SFEN record, in the
// conventional Rook/Bishop/Gold/Silver/Knight/Lance/Pawn order, Black's
// pieces before White's, "-" if both hands are empty.
func FormatSFENHands(pos *shogi.Position) string {
	var b strings.Builder
	empty := true
	for _, c := range [2]shogi.Color{shogi.Black, shogi.White} {
		for _, pt := range shogi.HandPieceTypes {
			n := pos.Hand(c).Count(pt)
			if n == 0 {
				continue
			}
			empty = false
			if n > 1 {
				b.WriteString(strconv.Itoa(n))
			}
			ch := pt.SFENChar()
			if c == shogi.White {
				ch = ch + ('a' - 'A')
			}
			b.WriteByte(ch)
		}
	}
	if empty {
		return "-"
	}
	return b.String()
}

// FormatSFEN renders pos as a complete SFEN record with move number 1,
// which is all a freshly-parsed tsumeshogi root position ever needs.
func FormatSFEN(pos *shogi.Position) string {
	side := "b"
	if pos.SideToMove() == shogi.White {
		side = "w"
	}
	return fmt.Sprintf("%s %s %s 1", FormatSFENBoard(pos), side, FormatSFENHands(pos))
}
