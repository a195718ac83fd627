package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"bus-route-service/internal/adapters/csvfile"
	"bus-route-service/internal/adapters/repositories"
	"bus-route-service/internal/cli"
	"bus-route-service/internal/config"
	"bus-route-service/internal/platform/db"
	"bus-route-service/internal/ports"
)

// main is the application composition root.
// It wires a concrete route store (CSV file or SQL database) behind the
// RouteStore port and hands it to the CLI.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if cfg.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open route store")
	}
	defer closeStore()

	app := cli.App(store)
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func buildStore(cfg config.Config) (ports.RouteStore, func(), error) {
	if cfg.DatabaseURL == "" {
		return csvfile.NewStore(cfg.RouteFile), func() {}, nil
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(database); err != nil {
		database.Close()
		return nil, nil, err
	}
	store := repositories.NewSQLRouteStore(database, db.DialectFor(cfg.DatabaseURL))
	return store, func() { database.Close() }, nil
}
