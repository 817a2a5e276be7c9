package notation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

var kifBoardKanji = map[rune]shogi.PieceType{
	'歩': shogi.Pawn,
	'香': shogi.Lance,
	'桂': shogi.Knight,
	'銀': shogi.Silver,
	'金': shogi.Gold,
	'角': shogi.Bishop,
	'飛': shogi.Rook,
	'玉': shogi.King,
	'王': shogi.King,
	'と': shogi.ProPawn,
	'馬': shogi.Horse,
	'龍': shogi.Dragon,
	'竜': shogi.Dragon,
}

// ParseKIF parses the boxed-table initial-position section of a KIF game
// record — the "|v香v桂..." board rows between a pair of "+---+" border
// lines, plus the "先手の持駒："/"後手の持駒：" hand lines — and ignores
// everything else, including any recorded move list, matching the original
// implementation's use of only a parsed record's initial position.
//
// This is a best-effort parser, not a full KIF grammar: it recognizes only
// the single-kanji promoted piece と (tokin), 馬 (horse) and 龍/竜 (dragon)
// on the board, since KIF software abbreviates a promoted lance/knight/
// silver to glyphs that vary by publisher (杏/圭/全, 成香/成桂/成銀 in
// cramped form, etc). A board cell using one of those is reported as an
// error rather than silently misread; see DESIGN.md.
func ParseKIF(kif string) (*shogi.Position, error) {
	pos := shogi.NewEmptyPosition()
	rank := 0
	inBoard := false
	sawBoard := false

	for _, line := range strings.Split(kif, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "+") && strings.Contains(trimmed, "---"):
			inBoard = !inBoard
			if inBoard {
				rank = 0
			}
			continue
		case strings.HasPrefix(trimmed, "先手の持駒："), strings.HasPrefix(trimmed, "先手の持駒:"):
			if err := parseKIFHandLine(pos, shogi.Black, trimmed); err != nil {
				return nil, fmt.Errorf("notation: kif sente hand: %w", err)
			}
			continue
		case strings.HasPrefix(trimmed, "後手の持駒："), strings.HasPrefix(trimmed, "後手の持駒:"):
			if err := parseKIFHandLine(pos, shogi.White, trimmed); err != nil {
				return nil, fmt.Errorf("notation: kif gote hand: %w", err)
			}
			continue
		}

		if !inBoard || !strings.HasPrefix(line, "|") {
			continue
		}
		rank++
		if err := parseKIFBoardRow(pos, rank, line); err != nil {
			return nil, fmt.Errorf("notation: kif rank %d: %w", rank, err)
		}
		sawBoard = true
	}

	if !sawBoard {
		return nil, fmt.Errorf("notation: kif record has no boxed board section")
	}
	// KIF board sections omit the side to move; tsumeshogi records are
	// always posed with the attacker (here, conventionally Black) to move.
	pos.SetSideToMove(shogi.Black)
	return pos, nil
}

func parseKIFBoardRow(pos *shogi.Position, rank int, line string) error {
	runes := []rune(line)
	if len(runes) == 0 || runes[0] != '|' {
		return fmt.Errorf("row does not start with '|'")
	}
	runes = runes[1:]

	file := 9
	for file >= 1 {
		if len(runes) < 2 {
			return fmt.Errorf("row too short")
		}
		marker, glyph := runes[0], runes[1]
		runes = runes[2:]
		if glyph == '・' {
			file--
			continue
		}
		color := shogi.Black
		if marker == 'v' {
			color = shogi.White
		}
		pt, ok := kifBoardKanji[glyph]
		if !ok {
			return fmt.Errorf("unrecognized board glyph %q", string(glyph))
		}
		pos.SetPiece(shogi.NewSquare(file, rank), shogi.Piece{Type: pt, Color: color})
		file--
	}
	return nil
}

var kifHandKanji = map[rune]shogi.PieceType{
	'飛': shogi.Rook,
	'角': shogi.Bishop,
	'金': shogi.Gold,
	'銀': shogi.Silver,
	'桂': shogi.Knight,
	'香': shogi.Lance,
	'歩': shogi.Pawn,
}

var kifKansujiDigits = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9, '十': 10,
}

func parseKIFHandLine(pos *shogi.Position, color shogi.Color, line string) error {
	sep := '：'
	idx := strings.IndexRune(line, sep)
	if idx < 0 {
		sep = ':'
		idx = strings.IndexRune(line, sep)
	}
	if idx < 0 {
		return fmt.Errorf("missing '：' separator")
	}
	rest := []rune(line[idx+utf8.RuneLen(sep):])
	rest = []rune(strings.TrimSpace(string(rest)))
	if string(rest) == "なし" {
		return nil
	}

	for len(rest) > 0 {
		// Hand pieces are separated by ASCII or full-width spaces depending
		// on the KIF writer.
		for len(rest) > 0 && (rest[0] == ' ' || rest[0] == '　') {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
		pt, ok := kifHandKanji[rest[0]]
		if !ok {
			return fmt.Errorf("unrecognized hand piece %q", string(rest[0]))
		}
		rest = rest[1:]

		n := 1
		if len(rest) > 0 {
			if d, ok := kifKansujiDigits[rest[0]]; ok {
				n = d
				rest = rest[1:]
				// Compound counts like 十六/十八 (a hand can hold up to 18
				// pawns) are 十 followed by a units digit.
				if d == 10 && len(rest) > 0 {
					if u, ok := kifKansujiDigits[rest[0]]; ok && u < 10 {
						n += u
						rest = rest[1:]
					}
				}
			}
		}
		if pos.Hand(color).Count(pt)+n > 18 {
			return fmt.Errorf("hand holds more than 18 of one piece type")
		}
		pos.SetHandCount(color, pt, pos.Hand(color).Count(pt)+n)
	}
	return nil
}
