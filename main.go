package main

import (
	"mancala/cmd"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := mancala(); err != nil {
		log.Fatal().Err(err).Msg("mancala failed")
	}
}

func mancala() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
