package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

const (
	promptAction = "Action [e.g. 1a]: "
	promptRetry  = "> "
)

var (
	errInputClosed = errors.New("input closed")
	errQuit        = errors.New("quit")
)

var quitWords = map[string]bool{"q": true, "quit": true}

type gamePlay interface {
	StartGame(ctx context.Context, humanMark, firstMover entity.Mark) (*service.TurnResult, error)
	MakeTurn(ctx context.Context, gameID string, coord entity.Coordinate) (*service.TurnResult, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string) error
}

// Options - how a session starts. SessionID resumes a stored game and
// ignores the marks. Resumable prints the session ID so a later process can
// pick the game up; leave it off when the store dies with the process.
type Options struct {
	HumanMark   entity.Mark
	FirstMover  entity.Mark
	SessionID   string
	Resumable   bool
	ClearScreen bool
}

// Driver - the interactive human-versus-computer loop on a text terminal.
type Driver struct {
	logger   *slog.Logger
	gamePlay gamePlay
	in       io.Reader
	renderer *Renderer
}

func NewDriver(logger *slog.Logger, gamePlay gamePlay, in io.Reader, renderer *Renderer) *Driver {
	return &Driver{
		logger:   logger.With("component", "terminal"),
		gamePlay: gamePlay,
		in:       in,
		renderer: renderer,
	}
}

// Run - plays one game to the end. Closing the input leaves the session in
// the store so it can be resumed; quitting abandons it.
func (that *Driver) Run(ctx context.Context, opts Options) error {
	game, err := that.openGame(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Resumable {
		that.renderer.Printf("Session: %s\n\n", game.ID)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, that.in)

	for game.IsHumanTurn() {
		that.renderer.PrintBoard(game.Position, opts.ClearScreen)
		that.renderer.Printf("\n")

		coord, err := that.readAction(ctx, lines, game.Position)
		if errors.Is(err, errInputClosed) {
			that.renderer.Printf("\n%s\n", that.renderer.Farewell("Exiting..."))
			return nil
		}
		if errors.Is(err, errQuit) {
			return that.abandon(ctx, game.ID)
		}
		if err != nil {
			return err
		}

		result, err := that.gamePlay.MakeTurn(ctx, game.ID, coord)
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		game = result.Game
		if result.BotMove != nil {
			that.renderer.Printf("Computer plays %s\n", FormatCoordinate(*result.BotMove))
		}
		that.renderer.Printf("\n")
	}

	if !game.IsFinished() {
		return fmt.Errorf("session %s waits for the computer: %w", game.ID, apperror.ErrNotYourTurn)
	}

	that.printOutcome(game)

	return nil
}

func (that *Driver) abandon(ctx context.Context, gameID string) error {
	if err := that.gamePlay.AbandonGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.renderer.Printf("Game abandoned\n%s\n", that.renderer.Farewell("Exiting..."))

	return nil
}

func (that *Driver) openGame(ctx context.Context, opts Options) (*entity.Game, error) {
	if opts.SessionID != "" {
		game, err := that.gamePlay.GetGame(ctx, opts.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to resume game: %w", err)
		}

		return game, nil
	}

	result, err := that.gamePlay.StartGame(ctx, opts.HumanMark, opts.FirstMover)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if result.BotMove != nil {
		that.renderer.Printf("Computer plays %s\n", FormatCoordinate(*result.BotMove))
	}

	return result.Game, nil
}

// readAction - prompts until the human enters a legal coordinate.
func (that *Driver) readAction(ctx context.Context, lines <-chan string, pos entity.Position) (entity.Coordinate, error) {
	that.renderer.Printf(promptAction)

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return entity.Coordinate{}, ctx.Err()
		case line, ok = <-lines:
			if !ok {
				return entity.Coordinate{}, errInputClosed
			}
		}

		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "" {
			that.renderer.Printf(promptRetry)
			continue
		}

		if quitWords[trimmed] {
			return entity.Coordinate{}, errQuit
		}

		coord, err := ParseCoordinate(line)
		if err != nil {
			that.logger.Debug("rejected input", "input", line, "error", err)
			that.renderer.Printf("Invalid action\n%s", promptRetry)
			continue
		}

		if !pos.IsLegal(coord) {
			that.renderer.Printf("Illegal action\n%s", promptRetry)
			continue
		}

		return coord, nil
	}
}

func (that *Driver) printOutcome(game *entity.Game) {
	that.renderer.Printf("%s\n\n", that.renderer.Headline("Game Ended"))

	if game.IsTie() {
		that.renderer.Printf("Game ended with a draw\n")
	} else {
		that.renderer.Printf("Winner is Player %s\n", game.Winner)
	}

	that.renderer.Printf("\nFinal board:\n\n")
	that.renderer.PrintBoard(game.Position, false)
	that.renderer.Printf("\n%s\n\n", that.renderer.Farewell("Exiting..."))
}

// readLines - feeds input lines to a channel so reads can be abandoned when
// the context ends. The channel is closed at EOF or once ctx is done. A
// reader blocked in Scan stays blocked until its next line or EOF.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
