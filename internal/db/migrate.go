package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/KikiG13/travelife/migrations"
)

// Migrate applies every pending migration from the embedded migrations.FS.
func Migrate(dbConn *sqlx.DB) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(dbConn.DB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
