package main

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chinery/noughts-and-crosses-ai/agent"
	"github.com/chinery/noughts-and-crosses-ai/game"
)

// aiMoveMsg delivers the search result back into the update loop.
type aiMoveMsg struct {
	move game.Move
	err  error
}

type tuiModel struct {
	board    game.Board
	cursor   game.Move
	human    game.Cell
	ai       *agent.Minimax
	thinking bool
	err      error
}

func newTUIModel(rng *rand.Rand, human game.Cell) tuiModel {
	m := tuiModel{
		board:  game.New(),
		cursor: game.Move{Row: 1, Col: 1},
		human:  human,
		ai:     agent.NewMinimax(rng),
	}
	m.thinking = m.aiTurn()
	return m
}

func (m tuiModel) aiTurn() bool {
	return m.board.Outcome() == game.InProgress && m.board.Next() != m.human
}

// thinkCmd runs the search off the update loop and reports back as a message.
func (m tuiModel) thinkCmd() tea.Cmd {
	board, ai := m.board, m.ai
	return func() tea.Msg {
		move, err := ai.NextMove(board)
		return aiMoveMsg{move: move, err: err}
	}
}

func (m tuiModel) Init() tea.Cmd {
	if m.thinking {
		return m.thinkCmd()
	}
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.board = game.New()
			m.err = nil
			m.thinking = m.aiTurn()
			if m.thinking {
				return m, m.thinkCmd()
			}
			return m, nil
		case "up", "k":
			if m.cursor.Row > 0 {
				m.cursor.Row--
			}
		case "down", "j":
			if m.cursor.Row < 2 {
				m.cursor.Row++
			}
		case "left", "h":
			if m.cursor.Col > 0 {
				m.cursor.Col--
			}
		case "right", "l":
			if m.cursor.Col < 2 {
				m.cursor.Col++
			}
		case "enter", " ":
			if m.thinking || m.board.Outcome() != game.InProgress || m.board.Next() != m.human {
				return m, nil
			}
			next, err := m.board.Apply(m.cursor)
			if err != nil {
				// Occupied cell: ignore the keypress.
				return m, nil
			}
			m.board = next
			if m.aiTurn() {
				m.thinking = true
				return m, m.thinkCmd()
			}
		}

	case aiMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		next, err := m.board.Apply(msg.move)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.board = next
	}

	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "noughts and crosses (you are %s)\n\n", m.human)

	showCursor := !m.thinking && m.board.Outcome() == game.InProgress && m.board.Next() == m.human
	b.WriteString("   0   1   2\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&b, "%d ", row)
		for col := 0; col < 3; col++ {
			cell := m.board.Cell(row, col).String()
			if showCursor && m.cursor == (game.Move{Row: row, Col: col}) {
				fmt.Fprintf(&b, "[%s]", cell)
			} else {
				fmt.Fprintf(&b, " %s ", cell)
			}
			if col < 2 {
				b.WriteString("│")
			}
		}
		b.WriteString("\n")
		if row < 2 {
			b.WriteString("  ───┼───┼───\n")
		}
	}
	b.WriteString("\n")

	switch result := m.board.Outcome(); {
	case m.err != nil:
		fmt.Fprintf(&b, "error: %v\n", m.err)
	case result == game.Draw:
		b.WriteString("It's a draw. Press r for a rematch.\n")
	case result.Winner() == m.human:
		b.WriteString("You win! Press r for a rematch.\n")
	case result != game.InProgress:
		b.WriteString("The computer wins. Press r for a rematch.\n")
	case m.thinking:
		b.WriteString("The computer is thinking...\n")
	default:
		b.WriteString("Your move: arrows to aim, enter to place.\n")
	}

	b.WriteString("\nq quits, r restarts.\n")
	return b.String()
}

func playTUI(rng *rand.Rand, human game.Cell) error {
	p := tea.NewProgram(newTUIModel(rng, human))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tuiModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
