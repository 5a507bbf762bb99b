package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id           TEXT PRIMARY KEY,
		platform     TEXT NOT NULL,
		account_id   TEXT NOT NULL,
		account_name TEXT NOT NULL DEFAULT '',
		currency     TEXT NOT NULL DEFAULT '',
		secret_name  TEXT NOT NULL,
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (platform, account_id)
	)`,
	`CREATE TABLE IF NOT EXISTS attribution_events (
		tracking_id TEXT PRIMARY KEY,
		event_name  TEXT NOT NULL,
		post_id     TEXT NOT NULL,
		source      TEXT NOT NULL,
		medium      TEXT NOT NULL,
		campaign    TEXT NOT NULL,
		content     TEXT NOT NULL,
		website_url TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ad_metrics_snapshots (
		id         BIGSERIAL PRIMARY KEY,
		date       DATE NOT NULL,
		date_range TEXT NOT NULL,
		accounts   INTEGER NOT NULL,
		metrics    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (date, date_range)
	)`,
}

// Migrate cria as tabelas que ainda não existem. Pode ser executado a cada inicialização.
func Migrate(ctx context.Context, q Queryer) error {
	for i, stmt := range schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar migração %d: %w", i+1, err)
		}
	}
	return nil
}
