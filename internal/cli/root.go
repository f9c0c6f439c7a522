package cli

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/spf13/cobra"
)

// GamePlayFactory - opens the gameplay service and its session store. The
// returned close function releases the store.
type GamePlayFactory func(ctx context.Context) (service.GamePlayService, func() error, error)

// NewRootCmd creates the root command
func NewRootCmd(logger *slog.Logger, conf *config.Config, newGamePlay GamePlayFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a minimax opponent",
		Long: `tictactoe pits you against a computer that searches the whole game tree
before every move. It cannot be beaten; the best you can do is a draw.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPlayCmd(logger, conf, newGamePlay))
	rootCmd.AddCommand(newBestMoveCmd(logger, conf))
	rootCmd.AddCommand(newAbandonCmd(logger, conf, newGamePlay))

	return rootCmd
}
