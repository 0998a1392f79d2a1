package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openersForce bool

var openersCmd = &cobra.Command{
	Use:   "openers",
	Short: "Build or refresh the first-move cache for the dictionary",
	Long: "Scores every dictionary word as an opening guess over the whole\n" +
		"dictionary and persists the best 100. Runs once per dictionary; later\n" +
		"commands pick their opening move from the cached list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		cache := openerCache(true)

		var openers []string
		if openersForce {
			openers, err = cache.Generate(cmd.Context(), dict)
		} else {
			openers, err = cache.LoadOrGenerate(cmd.Context(), dict)
		}
		if err != nil {
			return err
		}

		fmt.Printf("%d openers cached at %s\n", len(openers), cache.Path(dict))
		top := openers
		if len(top) > 10 {
			top = top[:10]
		}
		for i, w := range top {
			fmt.Printf("%2d. %s\n", i+1, w)
		}
		return nil
	},
}

func init() {
	openersCmd.Flags().BoolVar(&openersForce, "force", false, "regenerate even if a valid cache exists")
}
