package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chinery/noughts-and-crosses-ai/config"
)

var rootCmd = &cobra.Command{
	Use:   "noughts",
	Short: "Noughts and crosses against a perfect alpha-beta minimax opponent",
	Long: `Noughts and crosses (tic-tac-toe) played against a computer agent that
searches the full game tree with alpha-beta pruned minimax. The agent plays
perfectly; the best you can do is a draw.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to an optional YAML settings file")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed for move tie-breaking (0 seeds from the clock)")
}

// loadConfig resolves the settings file plus flag overrides for a command.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if seed, err := cmd.Flags().GetInt64("seed"); err == nil && seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

// newRNG builds the tie-break RNG, falling back to the clock for seed 0.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
