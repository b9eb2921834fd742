package agent

import (
	"math/rand"
	"time"

	"github.com/chinery/noughts-and-crosses-ai/game"
)

// Position values from the root player's perspective. The bounds sit one
// outside the real value range and stand in for ±infinity.
const (
	lossValue = -1
	drawValue = 0
	winValue  = 1

	alphaInit = lossValue - 1
	betaInit  = winValue + 1
)

// Minimax plays perfectly by searching the full game tree with alpha-beta
// pruning. It keeps no state between calls: every NextMove is a fresh
// search rooted at the given board.
type Minimax struct {
	rng *rand.Rand

	// Progress, if set, is called once per root candidate evaluated.
	// Drivers use it to show thinking feedback.
	Progress func()
}

// NewMinimax returns a searcher using rng to break ties between equally
// good moves. A nil rng gets a time-seeded one.
func NewMinimax(rng *rand.Rand) *Minimax {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Minimax{rng: rng}
}

// NextMove returns a move with the best game-theoretic value for the player
// to move, chosen uniformly at random among equally valued moves. It
// returns ErrGameOver on a terminal or moveless board.
func (a *Minimax) NextMove(board game.Board) (game.Move, error) {
	if board.Outcome() != game.InProgress {
		return game.Move{}, ErrGameOver
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrGameOver
	}

	// The evaluation perspective is fixed here, at the root, and passed
	// down; it does not flip as the turns alternate below.
	me := board.Next()

	var best []game.Move
	bestValue := alphaInit
	for _, m := range moves {
		child, err := board.Apply(m)
		if err != nil {
			return game.Move{}, err
		}
		v := search(child, me, true, alphaInit, betaInit)
		if a.Progress != nil {
			a.Progress()
		}
		switch {
		case v > bestValue:
			bestValue = v
			best = append(best[:0], m)
		case v == bestValue:
			best = append(best, m)
		}
	}
	return best[a.rng.Intn(len(best))], nil
}

// search returns the value of board for player me assuming perfect play on
// both sides. minimizing is true on the opponent's turns. alpha is the best
// value the maximizer is guaranteed on this path, beta the minimizer's; a
// candidate outside that window cuts off the remaining siblings.
func search(board game.Board, me game.Cell, minimizing bool, alpha, beta int) int {
	switch out := board.Outcome(); {
	case out.Winner() == me:
		return winValue
	case out.Winner() == me.Opponent():
		return lossValue
	case out == game.Draw:
		return drawValue
	}

	if minimizing {
		best := betaInit
		for _, m := range board.LegalMoves() {
			child, _ := board.Apply(m)
			v := search(child, me, false, alpha, beta)
			if v <= alpha {
				return v
			}
			if v < beta {
				beta = v
			}
			if v < best {
				best = v
			}
		}
		return best
	}

	best := alphaInit
	for _, m := range board.LegalMoves() {
		child, _ := board.Apply(m)
		v := search(child, me, true, alpha, beta)
		if v >= beta {
			return v
		}
		if v > alpha {
			alpha = v
		}
		if v > best {
			best = v
		}
	}
	return best
}
