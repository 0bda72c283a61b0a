package infra

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres migrate driver
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"  // sqlite3 migrate driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/migrations"
)

// MigratePostgres applies embedded postgres migrations
func MigratePostgres(cfg config.PostgresCfg) error {
	return migrateUp(migrations.Postgres, "postgres", cfg.URL())
}

// MigrateSQLite applies embedded sqlite migrations
func MigrateSQLite(cfg config.SQLiteCfg) error {
	return migrateUp(migrations.SQLite, "sqlite", fmt.Sprintf("sqlite3://%s", cfg.Path))
}

func migrateUp(fsys fs.FS, dir string, databaseURL string) (err error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read %s migrations - %w", dir, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize %s migrations - %w", dir, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil && srcErr != nil {
			err = srcErr
		}
		if err == nil && dbErr != nil {
			err = dbErr
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Infof("%s schema is up to date", dir)
			return nil
		}
		return fmt.Errorf("failed to apply %s migrations - %w", dir, err)
	}

	logrus.Infof("%s migrations applied", dir)
	return nil
}
