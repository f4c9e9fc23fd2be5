package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

//go:embed schema.sql
var schemaSQL string

func Connect() (*sqlx.DB, error) {
	dsn := viper.GetString("DB_DSN")
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if n := viper.GetInt("DB_MAX_OPEN_CONNS"); n > 0 {
		db.SetMaxOpenConns(n)
	}
	if n := viper.GetInt("DB_MAX_IDLE_CONNS"); n > 0 {
		db.SetMaxIdleConns(n)
	}
	return db, nil
}

// Statements returns the DDL for every table, constraint and index, one
// statement per element, in dependency order.
func Statements() []string {
	var out []string
	for _, chunk := range strings.Split(schemaSQL, ";") {
		if stmt := stripComments(chunk); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// ApplySchema creates any missing tables in one transaction. Existing tables
// are left untouched.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("apply schema: begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %s: %w", firstLine(stmt), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("apply schema: commit: %w", err)
	}
	return nil
}

func stripComments(chunk string) string {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return strings.TrimSpace(stmt[:i])
	}
	return stmt
}
