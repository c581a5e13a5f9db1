package main

import (
	"context"

	"kabirclub/internal/config"
	"kabirclub/internal/db"
	"kabirclub/internal/logging"
	"kabirclub/internal/seed"
)

func main() {
	logger := logging.New("seed")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply seed data")
	}

	logger.Info().Msg("seed data applied")
}
