package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark - the symbol a side places on the board. There are exactly two marks.
type Mark uint8

const (
	PlayerX Mark = iota
	PlayerO
)

// Marks lists both marks in the order the winner scan checks them.
var Marks = [2]Mark{PlayerX, PlayerO}

// Opponent - returns the other mark. Opponent(Opponent(m)) == m.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) String() string {
	if that == PlayerO {
		return "O"
	}
	return "X"
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark - accepts "X" or "O" in either case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return PlayerX, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidInput, s)
	}
}

// Cell - a board square: empty or holding exactly one mark.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

// CellOf - returns the cell occupied by mark.
func CellOf(mark Mark) Cell {
	if mark == PlayerO {
		return CellO
	}
	return CellX
}

// Mark - returns the occupying mark, false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return PlayerX, false
	}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) String() string {
	if mark, ok := that.Mark(); ok {
		return mark.String()
	}
	return ""
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = EmptyCell
		return nil
	}

	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = CellOf(mark)

	return nil
}
