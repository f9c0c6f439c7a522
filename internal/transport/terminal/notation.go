package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// ParseCoordinate - reads "1a" style input: row digit then column letter.
// Only the length is validated here; "4d" parses to an off-board coordinate
// that Position.IsLegal rejects.
func ParseCoordinate(s string) (entity.Coordinate, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, s)
	}

	return entity.Coordinate{
		Row: int(s[0]) - '1',
		Col: int(s[1]) - 'a',
	}, nil
}

func FormatCoordinate(coord entity.Coordinate) string {
	return fmt.Sprintf("%c%c", '1'+rune(coord.Row), 'a'+rune(coord.Col))
}

// ParseBoard - reads rows separated by "/", cells as X, O and "_" or "." for
// empty, e.g. "_XO/X_X/OX_".
func ParseBoard(s string, next entity.Mark) (entity.Position, error) {
	pos := entity.NewPosition(next)

	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != entity.BoardSize {
		return pos, fmt.Errorf("%w: want %d rows, got %d", apperror.ErrInvalidBoard, entity.BoardSize, len(rows))
	}

	for i, row := range rows {
		if len(row) != entity.BoardSize {
			return pos, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, i+1, len(row))
		}

		for j, ch := range strings.ToUpper(row) {
			switch ch {
			case 'X':
				pos.Cells[i][j] = entity.CellX
			case 'O':
				pos.Cells[i][j] = entity.CellO
			case '_', '.':
				pos.Cells[i][j] = entity.EmptyCell
			default:
				return pos, fmt.Errorf("%w: unexpected %q in row %d", apperror.ErrInvalidBoard, ch, i+1)
			}
		}
	}

	if bothWin(pos) {
		return pos, fmt.Errorf("%w: both marks have three in a row", apperror.ErrInvalidBoard)
	}

	return pos, nil
}

func bothWin(pos entity.Position) bool {
	return hasLine(pos, entity.CellX) && hasLine(pos, entity.CellO)
}

func hasLine(pos entity.Position, cell entity.Cell) bool {
	for _, line := range entity.WinLines {
		if pos.At(line[0]) == cell && pos.At(line[1]) == cell && pos.At(line[2]) == cell {
			return true
		}
	}

	return false
}

func FormatBoard(pos entity.Position) string {
	rows := make([]string, 0, entity.BoardSize)
	for _, row := range pos.Cells {
		var b strings.Builder
		for _, cell := range row {
			if mark, ok := cell.Mark(); ok {
				b.WriteString(mark.String())
			} else {
				b.WriteByte('_')
			}
		}
		rows = append(rows, b.String())
	}

	return strings.Join(rows, "/")
}
