package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagDict     string
	flagAlphabet string
	flagCacheDir string
	flagHardMode bool
	flagFastPool bool
)

var rootCmd = &cobra.Command{
	Use:   "wordlebot",
	Short: "An agent that plays Wordle by expected information gain",
	Long: "Wordlebot maintains the set of words still consistent with observed\n" +
		"feedback and, each turn, plays the guess expected to eliminate the most\n" +
		"of them. Opening guesses are precomputed once per dictionary and cached.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "dictionary file, one word per line (default: built-in list, or WORDLEBOT_DICT)")
	rootCmd.PersistentFlags().StringVar(&flagAlphabet, "alphabet", "letters", "word alphabet: letters or digits")
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "directory for the first-move cache (default: current dir, or WORDLEBOT_CACHE_DIR)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(openersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
