package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lifequest/lifequest-api/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations executes the requested goose migration command against
// the embedded migration files.
func runMigrations(db *sql.DB, command string, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	logger.Info("Running migrations", "command", command)

	var err error
	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	slog.Info("Migrations completed", "command", command)
	return nil
}
