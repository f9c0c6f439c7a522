package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newGamePlay(t *testing.T) (GamePlayService, *mockGameRepo) {
	t.Helper()

	repo := &mockGameRepo{}
	t.Cleanup(func() {
		repo.AssertExpectations(t)
	})

	return NewGamePlayService(nopLogger(), repo, NewBotService(nopLogger(), false)), repo
}

func TestGamePlayService_StartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Human moves first", func(t *testing.T) {
		// Given: a store that accepts the new game
		gamePlay, repo := newGamePlay(t)
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: a game is started with the human as first mover
		result, err := gamePlay.StartGame(ctx, entity.PlayerX, entity.PlayerX)

		// Then: the board is empty and waits for the human
		require.NoError(t, err)
		assert.NotEmpty(t, result.Game.ID)
		assert.Nil(t, result.BotMove)
		assert.True(t, result.Game.IsHumanTurn())
		assert.Equal(t, entity.NewPosition(entity.PlayerX), result.Game.Position)
	})

	t.Run("Bot moves first", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		result, err := gamePlay.StartGame(ctx, entity.PlayerO, entity.PlayerX)

		// Then: the bot opens on the first cell, every opening being a draw
		require.NoError(t, err)
		require.NotNil(t, result.BotMove)
		assert.Equal(t, entity.Coordinate{Row: 0, Col: 0}, *result.BotMove)
		assert.Equal(t, entity.CellX, result.Game.Position.Cells[0][0])
		assert.True(t, result.Game.IsHumanTurn())
	})

	t.Run("Store failure", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		_, err := gamePlay.StartGame(ctx, entity.PlayerX, entity.PlayerX)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Human move and bot reply are saved", func(t *testing.T) {
		// Given: a stored game where the human plays X
		gamePlay, repo := newGamePlay(t)
		game := entity.NewGame("42", entity.PlayerX, entity.PlayerX)
		repo.On("GetByID", mock.Anything, "42").Return(game, nil).Once()
		repo.On("CreateOrUpdate", mock.Anything, game).Return(nil).Once()

		// When: the human takes the centre
		result, err := gamePlay.MakeTurn(ctx, "42", entity.Coordinate{Row: 1, Col: 1})

		// Then: the bot answers and it is the human's turn again
		require.NoError(t, err)
		require.NotNil(t, result.BotMove)
		assert.Equal(t, entity.CellX, game.Position.Cells[1][1])
		assert.Equal(t, entity.CellO, game.Position.At(*result.BotMove))
		assert.True(t, game.IsHumanTurn())
	})

	t.Run("Finished game is deleted", func(t *testing.T) {
		// Given: the human is one move from winning
		gamePlay, repo := newGamePlay(t)
		game := entity.NewGame("42", entity.PlayerX, entity.PlayerX)
		game.Position.Cells = [3][3]entity.Cell{
			{entity.CellX, entity.CellX, entity.EmptyCell},
			{entity.CellO, entity.CellO, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}
		repo.On("GetByID", mock.Anything, "42").Return(game, nil).Once()
		repo.On("DeleteByID", mock.Anything, "42").Return(nil).Once()

		// When: the human completes the top row
		result, err := gamePlay.MakeTurn(ctx, "42", entity.Coordinate{Row: 0, Col: 2})

		// Then: the human wins, the bot does not reply and the session is gone
		require.NoError(t, err)
		assert.Nil(t, result.BotMove)
		assert.True(t, result.Game.IsFinished())
		assert.Equal(t, "X", result.Game.Winner)
	})

	t.Run("Illegal move", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		game := entity.NewGame("42", entity.PlayerX, entity.PlayerX)
		game.Position.ApplyMove(entity.Coordinate{Row: 0, Col: 0})
		game.Position.ApplyMove(entity.Coordinate{Row: 1, Col: 1})
		repo.On("GetByID", mock.Anything, "42").Return(game, nil).Once()

		_, err := gamePlay.MakeTurn(ctx, "42", entity.Coordinate{Row: 1, Col: 1})

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Unknown game", func(t *testing.T) {
		gamePlay, repo := newGamePlay(t)
		repo.On("GetByID", mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := gamePlay.MakeTurn(ctx, "nope", entity.Coordinate{})

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGamePlayService_AbandonGame(t *testing.T) {
	gamePlay, repo := newGamePlay(t)
	repo.On("DeleteByID", mock.Anything, "42").Return(nil).Once()

	require.NoError(t, gamePlay.AbandonGame(context.Background(), "42"))
}
