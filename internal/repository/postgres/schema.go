package postgres

import (
	"context"
	"fmt"
)

// Идемпотентный bootstrap схемы. Списковые и объектные поля лежат в JSONB.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS destinations (
		id TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		display_city TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		lat FLOAT8 NOT NULL,
		lon FLOAT8 NOT NULL,
		weather JSONB NOT NULL DEFAULT '{}',
		points_of_interest JSONB NOT NULL DEFAULT '[]',
		restaurants JSONB NOT NULL DEFAULT '[]',
		weather_favorable BOOLEAN NOT NULL DEFAULT FALSE,
		user_note TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS custom_locations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat FLOAT8 NOT NULL,
		lon FLOAT8 NOT NULL
	)`,
}

// Bootstrap создает таблицы, если их нет. Ошибка фатальна для старта:
// процесс без схемы не должен принимать трафик.
func (db *DB) Bootstrap(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}

	db.logger.Info("Database schema ready")
	return nil
}
