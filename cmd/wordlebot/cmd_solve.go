package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/feedback"
	"github.com/robalobadob/wordlebot/internal/session"
)

var solveTarget string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve automatically against a known target word",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		target := strings.ToLower(strings.TrimSpace(solveTarget))
		if !dict.Contains(target) {
			return fmt.Errorf("target %q is not in the dictionary", solveTarget)
		}
		openers, err := loadOpeners(cmd.Context(), dict, true)
		if err != nil {
			return err
		}

		sess := session.New(dict, session.Options{
			HardMode:           flagHardMode,
			Openers:            openers,
			PoolFromCandidates: flagFastPool,
		})
		for sess.Status() == session.InProgress {
			guess, err := sess.NextGuess()
			if err != nil {
				return err
			}
			pattern := feedback.Evaluate(guess, target)
			fmt.Printf("Move %d: %s  %s\n", sess.Turn(), guess, pattern.String())
			if _, err := sess.Apply(guess, pattern); err != nil {
				return err
			}
		}

		switch sess.Status() {
		case session.Solved:
			fmt.Printf("Solved in %d moves\n", len(sess.Turns()))
		default:
			fmt.Printf("Failed; the answer was %q\n", target)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveTarget, "target", "", "the answer word (required)")
	solveCmd.Flags().BoolVar(&flagHardMode, "hard", false, "hard mode: every guess must respect revealed constraints")
	solveCmd.Flags().BoolVar(&flagFastPool, "fast", false, "after turn 1, score only remaining candidates")
	_ = solveCmd.MarkFlagRequired("target")
}
