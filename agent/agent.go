// Package agent provides the move providers for noughts and crosses: a
// perfect-play alpha-beta minimax searcher and a line-oriented human input
// reader. Both satisfy the Agent interface consumed by the game drivers.
package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chinery/noughts-and-crosses-ai/game"
)

// Agent selects the next move to play on a board.
type Agent interface {
	NextMove(board game.Board) (game.Move, error)
}

// Human reads moves as "row,col" lines from an input stream, prompting on
// the output stream. Malformed or illegal input is never an error: Human
// keeps asking until it gets a playable move. The only error it returns is
// io.EOF when the input stream ends mid-prompt.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman returns a Human reading from r and prompting on w.
func NewHuman(r io.Reader, w io.Writer) *Human {
	return &Human{in: bufio.NewScanner(r), out: w}
}

func (h *Human) NextMove(board game.Board) (game.Move, error) {
	for {
		fmt.Fprintln(h.out, "What's your next move? In format row,col")
		fmt.Fprint(h.out, "> ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Move{}, err
			}
			return game.Move{}, io.EOF
		}

		move, ok := parseMove(h.in.Text())
		if !ok {
			fmt.Fprintln(h.out, "Please enter a valid space as row,col between 0,0 and 2,2")
			continue
		}
		if !board.IsEmpty(move.Row, move.Col) {
			fmt.Fprintln(h.out, "Space must be empty.")
			continue
		}
		return move, nil
	}
}

// parseMove parses "row,col" with both coordinates in [0,2].
func parseMove(s string) (game.Move, bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return game.Move{}, false
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return game.Move{}, false
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return game.Move{}, false
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return game.Move{}, false
	}
	return game.Move{Row: row, Col: col}, true
}

// ErrGameOver is returned by Minimax.NextMove when the board is terminal or
// has no legal moves. A correct driver checks Outcome before asking for a
// move, so hitting this indicates a caller bug.
var ErrGameOver = errors.New("no move to choose: game is over")
