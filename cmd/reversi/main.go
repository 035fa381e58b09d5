package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isTerminal(os.Stderr)}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	root := Root(os.Stdin, os.Stdout)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("reversi")
	}
}
