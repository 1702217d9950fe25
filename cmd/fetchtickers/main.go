// Command fetchtickers refreshes the ticker snapshot served by /stocks/list
// from the public S&P 500 constituents list.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"sentinance/client"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	out := flag.String("out", "data/tickers.json", "snapshot file to write")
	source := flag.String("url", client.SP500ConstituentsURL, "constituents CSV URL")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	records, err := client.NewSP500Client(*source).FetchConstituents(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch constituents")
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode snapshot")
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal().Err(err).Msg("create output directory")
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		log.Fatal().Err(err).Msg("write snapshot")
	}

	log.Info().Int("tickers", len(records)).Str("path", *out).Msg("ticker snapshot written")
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
