package main

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"bus-route-service/internal/adapters/repositories"
	"bus-route-service/internal/platform/db"
	"bus-route-service/internal/services"
)

// dbtool initializes the route database schema and, with --seed, stores the
// built-in sample route.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	log.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal().Err(err).Msg("Schema initialization failed")
	}
	log.Info().Msg("Schema ready.")

	if len(os.Args) > 1 && os.Args[1] == "--seed" {
		store := repositories.NewSQLRouteStore(database, db.DialectFor(databaseURL))
		route := services.SampleRoute()
		if _, err := services.ExportRoute(context.Background(), route, store); err != nil {
			log.Fatal().Err(err).Msg("Seeding failed")
		}
		log.Info().Int("stops", route.Len()).Msg("Sample route seeded.")
	}
}
