package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/social-media-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AdMetricsSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.AdMetricsSnapshot) error
}

type adMetricsSnapshotRepository struct {
	conn postgres.Queryer
}

func NewAdMetricsSnapshotRepository(conn postgres.Queryer) AdMetricsSnapshotRepository {
	return &adMetricsSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate mantém um snapshot por dia e período, sobrescrevendo reexecuções
func (r *adMetricsSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.AdMetricsSnapshot) error {
	if snapshot.Metrics == nil {
		return fmt.Errorf("snapshot de %s sem métricas", snapshot.Date)
	}

	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_metrics_snapshots").
		Columns("date", "date_range", "accounts", "metrics").
		Values(
			snapshot.Date,
			snapshot.DateRange,
			snapshot.Accounts,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (date, date_range) DO UPDATE SET
				accounts = EXCLUDED.accounts,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}
