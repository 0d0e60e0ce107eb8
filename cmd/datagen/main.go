package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"sentinel-recon/internal/gateway"
)

// datagen writes the synthetic sales log and bank feed used for QA runs.
func main() {
	dir := flag.String("dir", "data", "Directory to write the mock datasets into")
	flag.Parse()

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
	logger := zerolog.New(writer).With().Timestamp().Logger()

	salesPath, bankPath, err := gateway.NewDatasetGenerator().Generate(*dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("mock data generation failed")
	}

	logger.Info().Str("path", salesPath).Msg("generated sales log")
	logger.Info().Str("path", bankPath).Msg("generated bank feed")
	logger.Info().Msg("seeded anomalies: TXN-1005 missing payment, TXN-1003 $500 variance, TXN-1008 control match")
}
