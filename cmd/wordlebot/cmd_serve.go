package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/httpserver"
	"github.com/robalobadob/wordlebot/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the solver over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		openers, err := loadOpeners(cmd.Context(), dict, true)
		if err != nil {
			return err
		}

		srv := httpserver.New(store.NewMemoryStore(), dict, openers)
		port := servePort
		if port == "" {
			port = getEnv("PORT", "5175")
		}
		log.Info().Str("port", port).Int("words", dict.Len()).Str("dict", dict.ID()).Msg("starting wordlebot server")
		return srv.Start(":" + port)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default: PORT env or 5175)")
}
