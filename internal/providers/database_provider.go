package providers

import (
	"context"
	"time"

	"wsd/internal/migrate"
	"wsd/internal/repository/postgres"
	"wsd/internal/structures"
)

// NewDatabaseProvider opens the Postgres pool, optionally applies pending
// migrations, and verifies reachability before the server starts taking
// traffic.
func NewDatabaseProvider(conf *structures.Config, logger Logger) (*postgres.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if conf.Database.Migrate {
		if err := migrate.Up(ctx, conf.Database.DSN); err != nil {
			return nil, err
		}
		logger.Infof(TypeApp, "Migrations applied")
	}

	db, err := postgres.New(ctx, conf.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Infof(TypeApp, "Database connection established")
	return db, nil
}
