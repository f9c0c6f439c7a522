package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = EmptyCell
	x = CellX
	o = CellO
)

func TestNewPosition(t *testing.T) {
	for _, first := range Marks {
		// When: a position is created
		pos := NewPosition(first)

		// Then: every cell is empty and the first mover is to play
		assert.Equal(t, [BoardSize][BoardSize]Cell{}, pos.Cells)
		assert.Equal(t, first, pos.NextPlayer)
		assert.Len(t, pos.LegalMoves(), 9)
	}
}

func TestPosition_LegalMoves(t *testing.T) {
	t.Run("Empty cells in row-major order", func(t *testing.T) {
		// Given: a position with three empty cells
		pos := Position{
			Cells: [3][3]Cell{
				{e, x, o},
				{x, e, x},
				{o, x, e},
			},
			NextPlayer: PlayerX,
		}

		// When: legal moves are listed
		moves := pos.LegalMoves()

		// Then: exactly the empty cells come back, row by row
		assert.Equal(t, []Coordinate{{0, 0}, {1, 1}, {2, 2}}, moves)
	})

	t.Run("None when the game is won", func(t *testing.T) {
		// Given: X owns the middle row, empty cells remain
		pos := Position{
			Cells: [3][3]Cell{
				{e, x, o},
				{x, x, x},
				{o, o, e},
			},
		}

		// Then: there is nothing left to play
		assert.Empty(t, pos.LegalMoves())
	})
}

func TestPosition_IsLegal(t *testing.T) {
	pos := Position{
		Cells: [3][3]Cell{
			{e, x, o},
			{x, e, x},
			{o, x, e},
		},
	}

	// Then: out-of-board coordinates are rejected
	for _, coord := range []Coordinate{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {4, 3}} {
		assert.False(t, pos.IsLegal(coord), "coordinate %v", coord)
	}

	// Then: occupied cells are rejected and empty cells accepted
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coordinate{row, col}
			assert.Equal(t, pos.At(coord).IsEmpty(), pos.IsLegal(coord), "coordinate %v", coord)
		}
	}
}

func TestPosition_ApplyMove(t *testing.T) {
	// Given: a position with X to play
	pos := Position{
		Cells: [3][3]Cell{
			{e, x, o},
			{x, e, x},
			{o, x, e},
		},
		NextPlayer: PlayerX,
	}
	before := pos

	// When: X plays the bottom-right corner
	pos.ApplyMove(Coordinate{2, 2})

	// Then: only that cell changes and the turn passes to O
	expected := before.Cells
	expected[2][2] = x
	assert.Equal(t, expected, pos.Cells)
	assert.Equal(t, PlayerO, pos.NextPlayer)

	// Then: the copy taken before the move is untouched
	assert.Equal(t, e, before.Cells[2][2])
	assert.Equal(t, PlayerX, before.NextPlayer)
}

func TestPosition_Winner(t *testing.T) {
	for _, mark := range Marks {
		for i, line := range WinLines {
			// Given: a board where only this line belongs to the mark
			pos := NewPosition(mark.Opponent())
			for _, coord := range line {
				pos.Cells[coord.Row][coord.Col] = CellOf(mark)
			}

			// When: looking for a winner
			winner, ok := pos.Winner()

			// Then: the mark owning the line wins
			require.True(t, ok, "line %d for %s", i, mark)
			assert.Equal(t, mark, winner, "line %d for %s", i, mark)
			assert.True(t, pos.IsEnded())
		}
	}

	t.Run("Partial board without a line", func(t *testing.T) {
		pos := Position{
			Cells: [3][3]Cell{
				{x, o, e},
				{e, x, e},
				{e, e, o},
			},
		}

		_, ok := pos.Winner()
		assert.False(t, ok)
		assert.False(t, pos.IsEnded())
	})
}

func TestPosition_IsEnded(t *testing.T) {
	t.Run("Won with empty cells left", func(t *testing.T) {
		// Given: X has completed the middle row
		pos := Position{
			Cells: [3][3]Cell{
				{e, x, o},
				{x, x, x},
				{o, o, e},
			},
		}

		// Then: X is the winner and the game is over
		winner, ok := pos.Winner()
		require.True(t, ok)
		assert.Equal(t, PlayerX, winner)
		assert.True(t, pos.IsEnded())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no three in a row
		pos := Position{
			Cells: [3][3]Cell{
				{o, x, o},
				{x, o, x},
				{x, o, x},
			},
		}

		// Then: the game is over with no winner
		_, ok := pos.Winner()
		assert.False(t, ok)
		assert.True(t, pos.IsEnded())
		assert.Empty(t, pos.LegalMoves())
	})
}

func TestPosition_CopyRoundTrip(t *testing.T) {
	// Given: a position and a copy of it
	original := NewPosition(PlayerO)
	original.ApplyMove(Coordinate{1, 1})
	branch := original

	// When: the same moves are applied to both
	for _, coord := range []Coordinate{{0, 0}, {2, 2}, {0, 2}} {
		original.ApplyMove(coord)
		branch.ApplyMove(coord)
	}

	// Then: both end up identical
	assert.Equal(t, original, branch)
	assert.Equal(t, CellO, original.Cells[1][1])
	assert.Equal(t, CellX, branch.Cells[0][0])
}

func TestPosition_String(t *testing.T) {
	pos := Position{
		Cells: [3][3]Cell{
			{x, e, o},
			{e, e, e},
			{e, e, e},
		},
		NextPlayer: PlayerX,
	}

	expected := "Board {\n" +
		"    Next player: X\n" +
		"    Board:\n" +
		"      a b c\n" +
		"    1 x . o \n" +
		"    2 . . . \n" +
		"    3 . . . \n" +
		"}"

	assert.Equal(t, expected, pos.String())
}
