// Command qrencode is a thin CLI over the qrencode library: it parses
// flags, renders the resulting symbol as ASCII/PNG/SVG, and leaves all
// encoding semantics to the library itself.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCommand(&logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("qrencode failed")
		os.Exit(1)
	}
}
