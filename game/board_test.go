package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// playout applies the given moves in order, failing the test on any error.
func playout(t *testing.T, moves ...Move) Board {
	t.Helper()
	b := New()
	for _, m := range moves {
		var err error
		b, err = b.Apply(m)
		if err != nil {
			t.Fatalf("apply %s: %v", m, err)
		}
	}
	return b
}

func countSymbols(b Board) (crosses, noughts int) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			switch b.Cell(row, col) {
			case Cross:
				crosses++
			case Nought:
				noughts++
			}
		}
	}
	return crosses, noughts
}

func TestNewBoard(t *testing.T) {
	b := New()
	if b.Next() != Cross {
		t.Fatalf("next=%v want Cross", b.Next())
	}
	if got := len(b.LegalMoves()); got != 9 {
		t.Fatalf("legal moves=%d want=9", got)
	}
	if b.Outcome() != InProgress {
		t.Fatalf("outcome=%v want in progress", b.Outcome())
	}
}

func TestLegalMovesRowMajor(t *testing.T) {
	b := playout(t, Move{0, 0}, Move{1, 1}, Move{2, 2})
	want := []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
	got := b.LegalMoves()
	if len(got) != len(want) {
		t.Fatalf("legal moves len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("legal moves[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}

// Random playouts: legal moves are exactly the empty cells, their count plus
// occupied cells is 9, and the cross/nought count difference stays in {0,1}.
func TestInvariantsDuringRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		b := New()
		for b.Outcome() == InProgress {
			moves := b.LegalMoves()
			empties := 0
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					if b.IsEmpty(row, col) {
						empties++
					}
				}
			}
			if len(moves) != empties {
				t.Fatalf("legal moves=%d empties=%d", len(moves), empties)
			}
			crosses, noughts := countSymbols(b)
			if len(moves)+crosses+noughts != 9 {
				t.Fatalf("moves+occupied=%d want=9", len(moves)+crosses+noughts)
			}
			if d := crosses - noughts; d != 0 && d != 1 {
				t.Fatalf("cross-nought=%d want 0 or 1", d)
			}
			for _, m := range moves {
				if !b.IsEmpty(m.Row, m.Col) {
					t.Fatalf("legal move %s is not empty", m)
				}
			}

			var err error
			b, err = b.Apply(moves[rng.Intn(len(moves))])
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
	}
}

func TestApplyDoesNotMutateParent(t *testing.T) {
	parent := playout(t, Move{0, 0}, Move{1, 1})
	before := parent

	child, err := parent.Apply(Move{2, 2})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if parent != before {
		t.Fatalf("parent board changed by Apply")
	}
	if child == parent {
		t.Fatalf("child board equals parent")
	}
	if child.Cell(2, 2) != Cross {
		t.Fatalf("child cell=%v want Cross", child.Cell(2, 2))
	}
	if child.Next() != Nought {
		t.Fatalf("child next=%v want Nought", child.Next())
	}
}

func TestApplyOccupiedCell(t *testing.T) {
	b := playout(t, Move{1, 1})
	if _, err := b.Apply(Move{1, 1}); !errors.Is(err, ErrOccupied) {
		t.Fatalf("err=%v want ErrOccupied", err)
	}
}

func TestOutcomeLines(t *testing.T) {
	cases := []struct {
		name  string
		moves []Move
		want  Outcome
	}{
		{
			name:  "cross wins top row",
			moves: []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}},
			want:  CrossWin,
		},
		{
			name:  "nought wins middle column",
			moves: []Move{{0, 0}, {0, 1}, {2, 2}, {1, 1}, {1, 0}, {2, 1}},
			want:  NoughtWin,
		},
		{
			name:  "cross wins main diagonal",
			moves: []Move{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {2, 2}},
			want:  CrossWin,
		},
		{
			name:  "cross wins anti diagonal",
			moves: []Move{{2, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 2}},
			want:  CrossWin,
		},
		{
			// X X O
			// O O X
			// X X O
			name:  "full board draw",
			moves: []Move{{0, 0}, {0, 2}, {0, 1}, {1, 0}, {1, 2}, {1, 1}, {2, 0}, {2, 2}, {2, 1}},
			want:  Draw,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := playout(t, tc.moves...)
			if got := b.Outcome(); got != tc.want {
				t.Fatalf("outcome=%v want=%v\n%s", got, tc.want, b)
			}
		})
	}
}

// Diagonal ends occupied by the same symbol must not count as a line while
// the centre is still empty.
func TestOutcomeDiagonalNeedsCentre(t *testing.T) {
	b := playout(t, Move{0, 0}, Move{0, 1}, Move{2, 2})
	if got := b.Outcome(); got != InProgress {
		t.Fatalf("main diagonal without centre: outcome=%v want in progress", got)
	}
	b = playout(t, Move{2, 0}, Move{0, 1}, Move{0, 2})
	if got := b.Outcome(); got != InProgress {
		t.Fatalf("anti diagonal without centre: outcome=%v want in progress", got)
	}
}

func TestOutcomeWinner(t *testing.T) {
	if w := CrossWin.Winner(); w != Cross {
		t.Fatalf("winner=%v want Cross", w)
	}
	if w := NoughtWin.Winner(); w != Nought {
		t.Fatalf("winner=%v want Nought", w)
	}
	if w := Draw.Winner(); w != Empty {
		t.Fatalf("winner=%v want Empty", w)
	}
	if w := InProgress.Winner(); w != Empty {
		t.Fatalf("winner=%v want Empty", w)
	}
}

func TestBoardString(t *testing.T) {
	b := playout(t, Move{0, 0}, Move{1, 1})
	s := b.String()
	want := "" +
		"  0   1   2\n" +
		"0 X │   │  \n" +
		" ───┼───┼───\n" +
		"1   │ O │  \n" +
		" ───┼───┼───\n" +
		"2   │   │  \n"
	if s != want {
		t.Fatalf("render mismatch\ngot:\n%s\nwant:\n%s", s, want)
	}
	if !strings.HasPrefix(s, "  0   1   2") {
		t.Fatalf("missing column labels:\n%s", s)
	}
}
