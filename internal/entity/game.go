package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	WinnerTie = "-"
)

// Game - a live human-versus-computer session around a Position.
type Game struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	HumanMark Mark     `json:"human_mark"`
	BotMark   Mark     `json:"bot_mark"`
	Status    string   `json:"status"`
	Winner    string   `json:"winner"`
}

func NewGame(id string, humanMark, firstMover Mark) *Game {
	return &Game{
		ID:        id,
		Position:  NewPosition(firstMover),
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		Status:    StatusOngoing,
	}
}

// MakeTurn - the checked form of Position.ApplyMove.
func (that *Game) MakeTurn(mark Mark, coord Coordinate) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !coord.InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, coord.Row, coord.Col)
	}

	if that.Position.NextPlayer != mark {
		return apperror.ErrNotYourTurn
	}

	if !that.Position.IsLegal(coord) {
		return apperror.ErrCellOccupied
	}

	that.Position.ApplyMove(coord)
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	if winner, ok := that.Position.Winner(); ok {
		that.Winner = winner.String()
		that.Status = StatusFinished
		return
	}

	if that.Position.IsFull() {
		that.Winner = WinnerTie
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsTie() bool {
	return that.Winner == WinnerTie
}

func (that *Game) IsBotTurn() bool {
	return !that.IsFinished() && that.Position.NextPlayer == that.BotMark
}

func (that *Game) IsHumanTurn() bool {
	return !that.IsFinished() && that.Position.NextPlayer == that.HumanMark
}
