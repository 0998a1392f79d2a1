package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/feedback"
	"github.com/robalobadob/wordlebot/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively: the agent guesses, you report the colors",
	Long: "The agent prints a guess each turn; answer with five characters from\n" +
		"+ (right letter, right spot), * (right letter, wrong spot), and\n" +
		"- (letter not in the word). Example: +-*--",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
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
		in := bufio.NewScanner(os.Stdin)

		for sess.Status() == session.InProgress {
			guess, err := sess.NextGuess()
			if err != nil {
				return err
			}
			fmt.Printf("Move %d: %s\n", sess.Turn(), guess)

			var pattern feedback.Pattern
			for {
				fmt.Print("Enter result: ")
				if !in.Scan() {
					return errors.New("input closed")
				}
				pattern, err = feedback.Parse(strings.TrimSpace(in.Text()))
				if err == nil {
					break
				}
				fmt.Println(err)
			}

			status, err := sess.Apply(guess, pattern)
			var ie *session.InconsistentError
			if errors.As(err, &ie) {
				fmt.Println("I'm all out of possibilities! Double check your input.")
				for _, t := range ie.History {
					fmt.Printf("  %s  %s\n", t.Guess, t.Pattern.String())
				}
				return err
			}
			if err != nil {
				return err
			}

			switch status {
			case session.Solved:
				fmt.Printf("Solved in %d moves! Answer is %q\n", len(sess.Turns()), guess)
			case session.Exhausted:
				fmt.Printf("Sorry, no solution was reached in %d moves\n", len(sess.Turns()))
			default:
				fmt.Printf("%d possibilities left\n\n", sess.CandidatesLeft())
			}
		}
		return nil
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagHardMode, "hard", false, "hard mode: every guess must respect revealed constraints")
	playCmd.Flags().BoolVar(&flagFastPool, "fast", false, "after turn 1, score only remaining candidates (faster on big dictionaries)")
}
