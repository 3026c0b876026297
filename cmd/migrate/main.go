package main

import (
	"context"
	"os"

	"github.com/tunewave/tunewave-go/internal/config"
	"github.com/tunewave/tunewave-go/internal/db"
	"github.com/tunewave/tunewave-go/internal/logger"
	"github.com/tunewave/tunewave-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	database, err := db.New(cfg.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to open db: %v", err)
		os.Exit(1)
	}
	defer func(database *db.Database) {
		err := database.Close()
		if err != nil {
			return
		}
	}(database)

	if err := migration.MigrateUp(database.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Migrations applied successfully")
}
