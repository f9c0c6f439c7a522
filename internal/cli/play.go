package cli

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/terminal"
	"github.com/spf13/cobra"
)

func newPlayCmd(logger *slog.Logger, conf *config.Config, newGamePlay GamePlayFactory) *cobra.Command {
	var (
		humanMark  string
		firstMover string
		sessionID  string
		color      bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start or resume a game against the computer",
		Long: `Plays a game on the terminal. Enter moves as row and column, e.g. "2b";
enter "q" to give up and discard the session.

With session-store: redis the session ID is printed and the game can be
resumed later with --session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resumable := conf.SessionStore != config.StoreMemory
			if sessionID != "" && !resumable {
				return fmt.Errorf("cannot resume %s: %w", sessionID, apperror.ErrSessionNotKept)
			}

			human, err := entity.ParseMark(humanMark)
			if err != nil {
				return fmt.Errorf("invalid --mark: %w", err)
			}

			first, err := entity.ParseMark(firstMover)
			if err != nil {
				return fmt.Errorf("invalid --first: %w", err)
			}

			gamePlay, closeStore, err := newGamePlay(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not open session store: %w", err)
			}

			defer func() {
				if err := closeStore(); err != nil {
					logger.Error("could not close session store", "error", err)
				}
			}()

			renderer := terminal.NewRenderer(cmd.OutOrStdout(), color)
			driver := terminal.NewDriver(logger, gamePlay, cmd.InOrStdin(), renderer)

			return driver.Run(cmd.Context(), terminal.Options{
				HumanMark:   human,
				FirstMover:  first,
				SessionID:   sessionID,
				Resumable:   resumable,
				ClearScreen: color,
			})
		},
	}

	cmd.Flags().StringVarP(&humanMark, "mark", "m", conf.HumanMark, "Your mark: X or O (env: HUMAN_MARK)")
	cmd.Flags().StringVarP(&firstMover, "first", "f", conf.FirstMover, "Mark that moves first: X or O (env: FIRST_MOVER)")
	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Resume a stored session by ID (needs session-store: redis)")
	cmd.Flags().BoolVar(&color, "color", conf.Color, "Colour the board and clear the screen between turns (env: COLOR)")

	return cmd
}
