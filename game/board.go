// Package game models the noughts and crosses board.
//
// Board is a plain value type: applying a move returns a new Board and never
// touches the original, so search code can hold parent positions as
// continuation points without aliasing hazards. Board is also comparable,
// which lets tests use it directly as a map key.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Cross
	Nought
)

func (c Cell) String() string {
	switch c {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's symbol. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return Empty
	}
}

// Move is a board coordinate, row and column each in [0,2].
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// Outcome classifies a position. It is always derived from the cells,
// never stored.
type Outcome uint8

const (
	InProgress Outcome = iota
	CrossWin
	NoughtWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case CrossWin:
		return "cross wins"
	case NoughtWin:
		return "nought wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Winner returns the winning symbol, or Empty for a draw or a game still
// in progress.
func (o Outcome) Winner() Cell {
	switch o {
	case CrossWin:
		return Cross
	case NoughtWin:
		return Nought
	default:
		return Empty
	}
}

// ErrOccupied is returned by Apply when the target cell is already taken.
// It is always recoverable: a driver presenting human input should treat it
// as "try again".
var ErrOccupied = errors.New("cell is occupied")

// Board is a 3x3 grid plus the player whose turn is next. The zero value is
// not valid; use New.
type Board struct {
	cells [3][3]Cell
	next  Cell
}

// New returns the empty board with Cross to move first.
func New() Board {
	return Board{next: Cross}
}

// Next returns the player to move.
func (b Board) Next() Cell {
	return b.next
}

// Cell returns the content of the given square. Out-of-range indices panic.
func (b Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

// IsEmpty reports whether the given square is empty. Out-of-range indices
// panic; callers validating user input must bounds-check first.
func (b Board) IsEmpty(row, col int) bool {
	return b.cells[row][col] == Empty
}

// Apply places the next player's symbol at m and returns the resulting
// board with the turn flipped. The receiver is unchanged. Apply returns an
// error wrapping ErrOccupied if the target cell is not empty.
func (b Board) Apply(m Move) (Board, error) {
	if b.cells[m.Row][m.Col] != Empty {
		return Board{}, fmt.Errorf("move %s: %w", m, ErrOccupied)
	}
	next := b
	next.cells[m.Row][m.Col] = b.next
	next.next = b.next.Opponent()
	return next, nil
}

// LegalMoves returns the empty squares in row-major order. The fixed order
// matters: it keeps search traces reproducible and makes tie-break
// behaviour testable.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if b.cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Outcome classifies the position: a completed line wins for its symbol, a
// full board with no line is a draw, anything else is still in progress.
func (b Board) Outcome() Outcome {
	for i := 0; i < 3; i++ {
		if c := b.cells[i][0]; c != Empty && c == b.cells[i][1] && c == b.cells[i][2] {
			return winFor(c)
		}
		if c := b.cells[0][i]; c != Empty && c == b.cells[1][i] && c == b.cells[2][i] {
			return winFor(c)
		}
	}
	// Both diagonals use the same empty-exclusion check.
	if c := b.cells[0][0]; c != Empty && c == b.cells[1][1] && c == b.cells[2][2] {
		return winFor(c)
	}
	if c := b.cells[2][0]; c != Empty && c == b.cells[1][1] && c == b.cells[0][2] {
		return winFor(c)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if b.cells[row][col] == Empty {
				return InProgress
			}
		}
	}
	return Draw
}

func winFor(c Cell) Outcome {
	if c == Cross {
		return CrossWin
	}
	return NoughtWin
}

// String renders the board with 0-2 axis labels:
//
//	  0   1   2
//	0 X │   │ O
//	 ───┼───┼───
//	1   │ X │
//	 ───┼───┼───
//	2   │   │ O
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0   1   2\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, "%d %s │ %s │ %s\n", row, b.cells[row][0], b.cells[row][1], b.cells[row][2])
		if row < 2 {
			sb.WriteString(" ───┼───┼───\n")
		}
	}
	return sb.String()
}
