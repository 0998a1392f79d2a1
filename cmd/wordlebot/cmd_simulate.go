package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/results"
	"github.com/robalobadob/wordlebot/internal/sim"
)

var (
	simGames   int
	simSeed    int64
	simWorkers int
	simTargets []string
	simDB      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run many automated games and report win statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		openers, err := loadOpeners(cmd.Context(), dict, true)
		if err != nil {
			return err
		}

		seed := simSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		rep, err := sim.Run(cmd.Context(), dict, openers, sim.Config{
			Games:              simGames,
			Seed:               seed,
			Workers:            simWorkers,
			HardMode:           flagHardMode,
			Targets:            simTargets,
			PoolFromCandidates: flagFastPool,
		})
		if err != nil {
			return err
		}

		for i, n := range rep.Histogram {
			fmt.Printf("Solved in %d moves: %0.1f%%\n", i+1, float64(n)*100/float64(rep.Games))
		}
		fmt.Printf("Unsolved: %0.1f%%\n", float64(rep.Unsolved)*100/float64(rep.Games))
		fmt.Printf("Win rate: %0.1f%%  average %0.2f moves  (seed %d)\n", rep.WinRate*100, rep.AvgTurns, seed)

		if dsn := historyDSN(); dsn != "" {
			db, err := results.Open(dsn)
			if err != nil {
				log.Warn().Err(err).Msg("open history db")
				return nil
			}
			defer db.Close()
			if err := results.NewStore(db).InsertRun(cmd.Context(), dict.ID(), seed, flagHardMode, rep); err != nil {
				log.Warn().Err(err).Msg("record run")
			}
		}
		return nil
	},
}

// historyDSN resolves the optional history database location.
func historyDSN() string {
	if simDB != "" {
		return simDB
	}
	return getEnv("WORDLEBOT_DB", "")
}

func init() {
	simulateCmd.Flags().IntVarP(&simGames, "games", "n", 100, "number of games to simulate")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed (default: time-based)")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 1, "concurrent sessions")
	simulateCmd.Flags().StringSliceVar(&simTargets, "target", nil, "pin target word(s) instead of random draws")
	simulateCmd.Flags().StringVar(&simDB, "db", "", "record the run in this sqlite database (or WORDLEBOT_DB)")
	simulateCmd.Flags().BoolVar(&flagHardMode, "hard", false, "hard mode: every guess must respect revealed constraints")
	simulateCmd.Flags().BoolVar(&flagFastPool, "fast", false, "after turn 1, score only remaining candidates")
}
