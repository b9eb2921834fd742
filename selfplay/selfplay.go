// Package selfplay drives complete games between two move providers.
package selfplay

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chinery/noughts-and-crosses-ai/agent"
	"github.com/chinery/noughts-and-crosses-ai/game"
)

// Result summarises one finished game.
type Result struct {
	GameID  string
	Moves   int
	Outcome game.Outcome
}

// Play runs one game from the empty board, asking cross and nought for
// moves in turn until the position is terminal. It checks ctx between
// plies and aborts with ctx.Err() on cancellation.
func Play(ctx context.Context, cross, nought agent.Agent) (Result, error) {
	res := Result{GameID: uuid.NewString()}
	board := game.New()

	for board.Outcome() == game.InProgress {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
		}

		mover, side := cross, board.Next()
		if side == game.Nought {
			mover = nought
		}

		move, err := mover.NextMove(board)
		if err != nil {
			return res, fmt.Errorf("move %d (%v to play): %w", res.Moves+1, side, err)
		}
		board, err = board.Apply(move)
		if err != nil {
			return res, fmt.Errorf("move %d (%v to play): %w", res.Moves+1, side, err)
		}
		res.Moves++
	}

	res.Outcome = board.Outcome()
	return res, nil
}
