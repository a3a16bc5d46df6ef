package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/safar/ecommerce-api/internal/api"
	"github.com/safar/ecommerce-api/internal/config"
	"github.com/safar/ecommerce-api/internal/database"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("create schema")
	}

	logger.Info().Str("port", cfg.Server.Port).Msg("starting server")

	e := api.NewRouter(db, cfg)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := e.StartServer(server); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
