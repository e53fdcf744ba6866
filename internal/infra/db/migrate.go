package db

import (
	"errors"
	"log/slog"

	"billboard-booking/internal/infra/db/migrations"
	"billboard-booking/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var ErrDirtyDatabase = errors.New("database is in dirty state")

// Migrate applies every embedded up migration that has not run yet.
func Migrate(cfg config.DBConfig) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, cfg.BuildDSN())
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return ErrDirtyDatabase
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	slog.Info("database migrations applied", "version", migrations.Version)
	return nil
}
