package cli

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/spf13/cobra"
)

func newAbandonCmd(logger *slog.Logger, conf *config.Config, newGamePlay GamePlayFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon SESSION",
		Short: "Discard a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if conf.SessionStore == config.StoreMemory {
				return fmt.Errorf("cannot abandon %s: %w", args[0], apperror.ErrSessionNotKept)
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

			if err = gamePlay.AbandonGame(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Session %s abandoned\n", args[0])

			return nil
		},
	}
}
