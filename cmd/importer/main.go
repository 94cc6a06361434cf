// Package main provides the fuel price CSV importer.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fuelroute/fuelroute/internal/database"
	"github.com/fuelroute/fuelroute/internal/fuel"
)

func main() {
	var (
		csvPath    = flag.String("csv", "fuel-prices.csv", "path to the truckstop price CSV")
		batchSize  = flag.Int("batch-size", 500, "stations per insert batch")
		initSchema = flag.Bool("init-schema", true, "create the fuel_stations table if missing")
		timeout    = flag.Duration("timeout", 5*time.Minute, "overall import timeout")
	)
	flag.Parse()

	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", "fuelroute-importer").
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	repo := fuel.NewPostgresRepository(pool)
	if *initSchema {
		if err := repo.InitSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize schema")
		}
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *csvPath).Msg("failed to open CSV")
	}
	defer file.Close()

	importer := fuel.NewImporter(fuel.ImporterConfig{
		Repository: repo,
		BatchSize:  *batchSize,
		Logger:     log,
	})

	stats, err := importer.Run(ctx, file)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().
		Str("path", *csvPath).
		Int64("inserted", stats.Inserted).
		Int64("conflicts", stats.Conflicts).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("import finished")
}
