package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Coordinate, error)
}

type searchFunc func(pos entity.Position, mark entity.Mark) (minimax.Result, error)

type botService struct {
	logger *slog.Logger
	search searchFunc
}

// NewBotService - parallel selects minimax.SearchParallel over minimax.Search.
// Both pick the same move.
func NewBotService(logger *slog.Logger, parallel bool) BotService {
	search := minimax.Search
	if parallel {
		search = minimax.SearchParallel
	}

	return &botService{
		logger: logger.With("component", "bot"),
		search: search,
	}
}

// MakeTurn - plays the best move for the bot's mark and returns it.
func (that *botService) MakeTurn(game *entity.Game) (entity.Coordinate, error) {
	if !game.IsBotTurn() {
		return entity.Coordinate{}, ErrNotBotTurn
	}

	result, err := that.search(game.Position, game.BotMark)
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to search best move: %w", err)
	}

	that.logger.Debug("search finished",
		"gameID", game.ID,
		"mark", game.BotMark.String(),
		"row", result.Move.Row,
		"col", result.Move.Col,
		"score", result.Score,
		"nodes", result.Nodes,
	)

	if err = game.MakeTurn(game.BotMark, result.Move); err != nil {
		return entity.Coordinate{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result.Move, nil
}
