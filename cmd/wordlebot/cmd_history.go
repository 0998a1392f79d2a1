package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/results"
)

var (
	historyLimit int
	historyDB    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded simulation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn := historyDB
		if dsn == "" {
			dsn = getEnv("WORDLEBOT_DB", "")
		}
		if dsn == "" {
			return errors.New("no history database configured (--db or WORDLEBOT_DB)")
		}
		db, err := results.Open(dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		runs, err := results.NewStore(db).ListRuns(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}
		for _, r := range runs {
			mode := "normal"
			if r.HardMode {
				mode = "hard"
			}
			fmt.Printf("#%d  %s  dict %s  %d games  seed %d  %s  win %0.1f%%  avg %0.2f  %v\n",
				r.ID, r.CreatedAt, r.DictID, r.Games, r.Seed, mode, r.WinRate*100, r.AvgTurns, r.Histogram)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "max runs to list")
	historyCmd.Flags().StringVar(&historyDB, "db", "", "history sqlite database (or WORDLEBOT_DB)")
}
