package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
)

// TurnResult - the session after a turn, with the bot's reply if it made one.
type TurnResult struct {
	Game    *entity.Game
	BotMove *entity.Coordinate
}

type GamePlayService interface {
	StartGame(ctx context.Context, humanMark, firstMover entity.Mark) (*TurnResult, error)
	MakeTurn(ctx context.Context, gameID string, coord entity.Coordinate) (*TurnResult, error)

	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gamePlayService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, gameRepo gameRepo, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		gameRepo:   gameRepo,
		botService: botService,
	}
}

// StartGame - creates a session; the bot moves at once when it starts.
func (that *gamePlayService) StartGame(ctx context.Context, humanMark, firstMover entity.Mark) (*TurnResult, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, humanMark, firstMover)
	result := &TurnResult{Game: game}

	if game.IsBotTurn() {
		move, err := that.botService.MakeTurn(game)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
		result.BotMove = &move
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "human", humanMark.String(), "first", firstMover.String())

	return result, nil
}

// MakeTurn - plays the human's move and the bot's reply. Finished sessions
// are removed from the store; the returned game still carries the outcome.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, coord entity.Coordinate) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(game.HumanMark, coord); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	result := &TurnResult{Game: game}

	if game.IsBotTurn() {
		move, err := that.botService.MakeTurn(game)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
		result.BotMove = &move
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)

		if err = that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
			return nil, fmt.Errorf("failed to delete finished game: %w", err)
		}

		return result, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return result, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) AbandonGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", gameID)

	return nil
}
