package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate Создает таблицы, если их еще нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
