package infra

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 database/sql driver
	"github.com/umalmyha/customer-directory/internal/config"
)

// SQLite opens sqlite database file, single connection is used so writers never hit busy database
func SQLite(ctx context.Context, cfg config.SQLiteCfg) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s - %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to access sqlite database %s - %w", cfg.Path, err)
	}
	return db, nil
}
