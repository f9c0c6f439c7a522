package entity

import (
	"fmt"
	"strings"
)

const BoardSize = 3

// Coordinate - zero-based (row, column) pair.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// WinLines - the 8 winning lines: rows, columns, main diagonal, anti-diagonal.
var WinLines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Position - the board plus whose turn is next.
//
// Position is a fixed-size value: assigning it copies the whole board, so a
// hypothetical continuation is explored on a copy without touching the
// original. The only mutation is ApplyMove.
//
// A position reached through ApplyMove never has winning lines for both
// marks, since play stops once a winner appears. Winner relies on that and
// does not re-check it.
type Position struct {
	Cells      [BoardSize][BoardSize]Cell `json:"cells"`
	NextPlayer Mark                       `json:"next_player"`
}

// NewPosition - returns an empty board with firstMover to play.
func NewPosition(firstMover Mark) Position {
	return Position{NextPlayer: firstMover}
}

func (that Position) At(coord Coordinate) Cell {
	return that.Cells[coord.Row][coord.Col]
}

// IsLegal - reports whether coord is on the board and its cell is empty.
func (that Position) IsLegal(coord Coordinate) bool {
	if !coord.InBounds() {
		return false
	}

	return that.At(coord).IsEmpty()
}

// ApplyMove - places NextPlayer's mark at coord and passes the turn.
// The caller must check IsLegal first; an illegal coord is not detected.
func (that *Position) ApplyMove(coord Coordinate) {
	that.Cells[coord.Row][coord.Col] = CellOf(that.NextPlayer)
	that.NextPlayer = that.NextPlayer.Opponent()
}

// Winner - returns the mark owning a full line, scanning X before O.
func (that Position) Winner() (Mark, bool) {
	for _, mark := range Marks {
		if that.hasLine(mark) {
			return mark, true
		}
	}

	return PlayerX, false
}

func (that Position) hasLine(mark Mark) bool {
	cell := CellOf(mark)
	for _, line := range WinLines {
		if that.At(line[0]) == cell && that.At(line[1]) == cell && that.At(line[2]) == cell {
			return true
		}
	}

	return false
}

func (that Position) IsFull() bool {
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// IsEnded - true when someone has won or the board is full.
func (that Position) IsEnded() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsFull()
}

// LegalMoves - empty cells in row-major order, none once the game has ended.
// The order is the search's tie-break.
func (that Position) LegalMoves() []Coordinate {
	if that.IsEnded() {
		return nil
	}

	moves := make([]Coordinate, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coordinate{Row: row, Col: col}
			if that.IsLegal(coord) {
				moves = append(moves, coord)
			}
		}
	}

	return moves
}

func (that Position) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Board {\n    Next player: %s\n    Board:\n      a b c\n", that.NextPlayer)
	for i, row := range that.Cells {
		fmt.Fprintf(&b, "    %d ", i+1)
		for _, cell := range row {
			switch cell {
			case CellX:
				b.WriteString("x ")
			case CellO:
				b.WriteString("o ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("}")

	return b.String()
}
