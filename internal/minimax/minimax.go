// Package minimax picks moves by searching the whole remaining game tree.
//
// There is no pruning, move ordering or memoisation: every call explores its
// subtree in full. The tree below any 3x3 position is small enough for that.
package minimax

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"golang.org/x/sync/errgroup"
)

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0

	lowestScore  = -1000
	highestScore = 1000
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Result - outcome of a top-level search.
type Result struct {
	Move  entity.Coordinate
	Score int
	// Nodes counts every position evaluated, the candidates included.
	Nodes int
}

// Evaluate - game-theoretic score of pos with toMove to play, seen from
// perspective: WinScore if perspective wins, LossScore if it loses, DrawScore
// otherwise.
func Evaluate(pos entity.Position, perspective, toMove entity.Mark) int {
	var nodes int
	return evaluate(pos, perspective, toMove, 0, &nodes)
}

// evaluate carries depth down the tree but scores do not depend on it: a
// quick win and a slow win are worth the same.
func evaluate(pos entity.Position, perspective, toMove entity.Mark, depth int, nodes *int) int {
	*nodes++

	if pos.IsEnded() {
		return terminalScore(pos, perspective)
	}

	maximizing := toMove == perspective

	best := highestScore
	if maximizing {
		best = lowestScore
	}

	for _, move := range pos.LegalMoves() {
		child := pos
		child.ApplyMove(move)

		score := evaluate(child, perspective, toMove.Opponent(), depth+1, nodes)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func terminalScore(pos entity.Position, perspective entity.Mark) int {
	winner, ok := pos.Winner()
	switch {
	case !ok:
		return DrawScore
	case winner == perspective:
		return WinScore
	default:
		return LossScore
	}
}

// FindBestMove - the move with the best guaranteed outcome for mark. Among
// equally scored moves the first in row-major order wins. pos must not be
// ended; ErrNoLegalMoves is returned otherwise.
func FindBestMove(pos entity.Position, mark entity.Mark) (entity.Coordinate, error) {
	result, err := Search(pos, mark)
	if err != nil {
		return entity.Coordinate{}, err
	}

	return result.Move, nil
}

// Search - FindBestMove that also reports the score and search size.
func Search(pos entity.Position, mark entity.Mark) (Result, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	result := Result{Score: lowestScore}
	for _, move := range moves {
		child := pos
		child.ApplyMove(move)

		score := evaluate(child, mark, mark.Opponent(), 0, &result.Nodes)
		if score > result.Score {
			result.Score = score
			result.Move = move
		}
	}

	return result, nil
}

// SearchParallel - Search with each candidate move evaluated in its own
// goroutine. Results are merged in row-major order, so it returns exactly
// what Search returns.
func SearchParallel(pos entity.Position, mark entity.Mark) (Result, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	scores := make([]int, len(moves))
	nodes := make([]int, len(moves))

	g := errgroup.Group{}
	for i, move := range moves {
		g.Go(func() error {
			child := pos
			child.ApplyMove(move)
			scores[i] = evaluate(child, mark, mark.Opponent(), 0, &nodes[i])

			return nil
		})
	}

	// evaluate cannot fail; Wait only joins the goroutines.
	_ = g.Wait()

	result := Result{Score: lowestScore}
	for i, move := range moves {
		result.Nodes += nodes[i]
		if scores[i] > result.Score {
			result.Score = scores[i]
			result.Move = move
		}
	}

	return result, nil
}
