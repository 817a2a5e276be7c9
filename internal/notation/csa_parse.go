package notation

import (
	"fmt"
	"strings"

	"github.com/komadai/tsumedfpn/internal/shogi"
)

var csaCodeToType = map[string]shogi.PieceType{
	"FU": shogi.Pawn,
	"KY": shogi.Lance,
	"KE": shogi.Knight,
	"GI": shogi.Silver,
	"KI": shogi.Gold,
	"KA": shogi.Bishop,
	"HI": shogi.Rook,
	"OU": shogi.King,
	"TO": shogi.ProPawn,
	"NY": shogi.ProLance,
	"NK": shogi.ProKnight,
	"NG": shogi.ProSilver,
	"UM": shogi.Horse,
	"RY": shogi.Dragon,
}

// ParseCSA parses a CSA-format game record and returns its starting
// position. Only the initial position section is consulted — P1-P9 board
// rows, P+/P- hand additions, and the leading turn marker line — and any
// move list that follows is ignored, since a tsumeshogi puzzle's answer is
// computed, not read off the record. The standard "PI" initial-layout
// shorthand is not supported: tsumeshogi positions are custom and are
// always given as an explicit board, never the starting layout.
func ParseCSA(csa string) (*shogi.Position, error) {
	pos := shogi.NewEmptyPosition()
	sawBoard := false

	for _, line := range strings.Split(csa, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "'") {
			continue
		}
		switch {
		case len(line) >= 2 && line[0] == 'P' && line[1] >= '1' && line[1] <= '9':
			rank := int(line[1] - '0')
			if err := parseCSABoardRow(pos, rank, line[2:]); err != nil {
				return nil, fmt.Errorf("notation: csa rank %d: %w", rank, err)
			}
			sawBoard = true
		case strings.HasPrefix(line, "P+"), strings.HasPrefix(line, "P-"):
			color := shogi.Black
			if line[1] == '-' {
				color = shogi.White
			}
			if err := parseCSAHandRow(pos, color, line[2:]); err != nil {
				return nil, fmt.Errorf("notation: csa hand row: %w", err)
			}
		case line == "+":
			pos.SetSideToMove(shogi.Black)
		case line == "-":
			pos.SetSideToMove(shogi.White)
		}
	}

	if !sawBoard {
		return nil, fmt.Errorf("notation: csa record has no P1-P9 board section")
	}
	return pos, nil
}

func parseCSABoardRow(pos *shogi.Position, rank int, cells string) error {
	file := 9
	for len(cells) >= 3 {
		cell := cells[:3]
		cells = cells[3:]
		if cell == " * " {
			file--
			continue
		}
		if len(cell) != 3 || (cell[0] != '+' && cell[0] != '-') {
			return fmt.Errorf("bad cell %q", cell)
		}
		color := shogi.Black
		if cell[0] == '-' {
			color = shogi.White
		}
		pt, ok := csaCodeToType[cell[1:3]]
		if !ok {
			return fmt.Errorf("bad piece code %q", cell[1:3])
		}
		pos.SetPiece(shogi.NewSquare(file, rank), shogi.Piece{Type: pt, Color: color})
		file--
	}
	return nil
}

func parseCSAHandRow(pos *shogi.Position, color shogi.Color, rest string) error {
	for len(rest) >= 4 {
		sq := rest[:2]
		code := rest[2:4]
		rest = rest[4:]
		if sq != "00" {
			continue // a hand row only ever uses "00" (no square) entries
		}
		pt, ok := csaCodeToType[code]
		if !ok || !pt.Droppable() {
			return fmt.Errorf("bad hand piece code %q", code)
		}
		if pos.Hand(color).Count(pt) >= 18 {
			return fmt.Errorf("hand holds more than 18 %q", code)
		}
		pos.SetHandCount(color, pt, pos.Hand(color).Count(pt)+1)
	}
	return nil
}
