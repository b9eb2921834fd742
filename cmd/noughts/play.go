package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/chinery/noughts-and-crosses-ai/agent"
	"github.com/chinery/noughts-and-crosses-ai/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game against the computer",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Bool("plain", false, "Use the line-based prompt interface instead of the TUI")
	playCmd.Flags().Bool("second", false, "Let the computer open the game (you play noughts)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rng := newRNG(cfg.Seed)

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		// Plain mode asks about move order itself, and offers rematches.
		return playPlain(rng, os.Stdin, os.Stdout)
	}

	human := game.Cross
	if second, _ := cmd.Flags().GetBool("second"); second {
		human = game.Nought
	}
	return playTUI(rng, human)
}

// playPlain is the line-oriented driver: prompt, print the board, repeat.
func playPlain(rng *rand.Rand, in io.Reader, out io.Writer) error {
	prompts := bufio.NewScanner(in)
	fmt.Fprintln(out, "Let's play noughts and crosses!")

	for {
		first, err := yesNo(prompts, out, "Would you like to play first?")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		human := game.Nought
		if first {
			human = game.Cross
		}
		if err := runPlainGame(rng, human, in, out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		again, err := yesNo(prompts, out, "Would you like to play again?")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}

func runPlainGame(rng *rand.Rand, humanSide game.Cell, in io.Reader, out io.Writer) error {
	human := agent.NewHuman(in, out)
	ai := agent.NewMinimax(rng)
	ai.Progress = func() { fmt.Fprint(out, ".") }

	board := game.New()
	fmt.Fprintln(out, board)

	for board.Outcome() == game.InProgress {
		var move game.Move
		var err error
		if board.Next() == humanSide {
			move, err = human.NextMove(board)
		} else {
			fmt.Fprint(out, "The computer is thinking")
			move, err = ai.NextMove(board)
			fmt.Fprintln(out)
		}
		if err != nil {
			return err
		}

		board, err = board.Apply(move)
		if err != nil {
			// Human moves are pre-validated and the agent only returns
			// legal moves, so this is a driver bug.
			return err
		}
		fmt.Fprintln(out, board)
	}

	switch result := board.Outcome(); {
	case result == game.Draw:
		fmt.Fprintln(out, "It's a draw.")
	case result.Winner() == humanSide:
		fmt.Fprintln(out, "You win!")
	default:
		fmt.Fprintln(out, "The computer wins.")
	}
	return nil
}

// yesNo asks a y/n question, re-prompting until it gets one of the two.
func yesNo(in *bufio.Scanner, out io.Writer, question string) (bool, error) {
	for {
		fmt.Fprintln(out, question+" (y/n)")
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return false, err
			}
			return false, io.EOF
		}
		switch in.Text() {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(out, "Please enter y for yes or n for no.")
	}
}
