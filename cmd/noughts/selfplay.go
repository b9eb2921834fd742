package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chinery/noughts-and-crosses-ai/agent"
	"github.com/chinery/noughts-and-crosses-ai/game"
	"github.com/chinery/noughts-and-crosses-ai/selfplay"
)

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Play the search agent against itself",
	Long: `Runs full games between two minimax agents across a pool of workers.
Perfect play on both sides must always draw, so any decisive game in the
summary indicates a search bug.`,
	RunE: runSelfplay,
}

func init() {
	selfplayCmd.Flags().Int("games", 0, "Number of games to play (overrides config)")
	selfplayCmd.Flags().Int("workers", 0, "Number of worker goroutines (overrides config)")
	rootCmd.AddCommand(selfplayCmd)
}

func runSelfplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if games, _ := cmd.Flags().GetInt("games"); games > 0 {
		cfg.SelfPlay.Games = games
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.SelfPlay.Workers = workers
	}

	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var claimed atomic.Int64
	var draws, crossWins, noughtWins atomic.Int64

	log.Info("starting selfplay",
		zap.Int("games", cfg.SelfPlay.Games),
		zap.Int("workers", cfg.SelfPlay.Workers),
		zap.Int64("seed", baseSeed))

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < cfg.SelfPlay.Workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(baseSeed + int64(id)))
			cross := agent.NewMinimax(rng)
			nought := agent.NewMinimax(rng)

			for claimed.Add(1) <= int64(cfg.SelfPlay.Games) {
				res, err := selfplay.Play(ctx, cross, nought)
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					log.Error("game aborted", zap.Int("worker", id), zap.Error(err))
					return
				}

				switch res.Outcome {
				case game.Draw:
					draws.Add(1)
				case game.CrossWin:
					crossWins.Add(1)
				case game.NoughtWin:
					noughtWins.Add(1)
				}

				log.Info("game finished",
					zap.Int("worker", id),
					zap.String("game_id", res.GameID),
					zap.Stringer("outcome", res.Outcome),
					zap.Int("moves", res.Moves))
			}
		}(w)
	}
	wg.Wait()

	total := draws.Load() + crossWins.Load() + noughtWins.Load()
	log.Info("selfplay complete",
		zap.Int64("games", total),
		zap.Int64("draws", draws.Load()),
		zap.Int64("cross_wins", crossWins.Load()),
		zap.Int64("nought_wins", noughtWins.Load()),
		zap.Duration("elapsed", time.Since(start)))

	if crossWins.Load()+noughtWins.Load() > 0 {
		log.Warn("decisive games observed: perfect self-play should always draw")
	}
	return nil
}
