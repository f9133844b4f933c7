package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/trieview/pkg/cli"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("TRIEVIEW_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	err := ctx.Run(&cli.Context{Logger: logger, Out: os.Stdout})
	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
