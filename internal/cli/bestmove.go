package cli

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/terminal"
	"github.com/spf13/cobra"
)

func newBestMoveCmd(logger *slog.Logger, conf *config.Config) *cobra.Command {
	var (
		next     string
		parallel bool
	)

	cmd := &cobra.Command{
		Use:   "best-move BOARD",
		Short: "Print the computer's move for a board",
		Long: `Searches BOARD for the side to move and prints the chosen cell.

BOARD lists three rows separated by "/", using X, O and "_" for an empty
cell, e.g. "_XO/X_X/OX_".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mark, err := entity.ParseMark(next)
			if err != nil {
				return fmt.Errorf("invalid --next: %w", err)
			}

			pos, err := terminal.ParseBoard(args[0], mark)
			if err != nil {
				return err
			}

			search := minimax.Search
			if parallel {
				search = minimax.SearchParallel
			}

			result, err := search(pos, mark)
			if err != nil {
				return fmt.Errorf("board %s: %w", terminal.FormatBoard(pos), err)
			}

			logger.Debug("best move found", "board", terminal.FormatBoard(pos), "nodes", result.Nodes)

			fmt.Fprintf(cmd.OutOrStdout(), "%s plays %s (score %d, %d positions searched)\n",
				mark, terminal.FormatCoordinate(result.Move), result.Score, result.Nodes)

			return nil
		},
	}

	cmd.Flags().StringVarP(&next, "next", "n", "X", "Mark to move: X or O")
	cmd.Flags().BoolVar(&parallel, "parallel", conf.ParallelSearch, "Search candidate moves concurrently (env: PARALLEL_SEARCH)")

	return cmd
}
