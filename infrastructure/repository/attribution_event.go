package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/social-media-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

type AttributionEventRepository interface {
	Save(ctx context.Context, event *domain.AttributionEvent) error
}

type attributionEventRepository struct {
	conn postgres.Queryer
}

func NewAttributionEventRepository(conn postgres.Queryer) AttributionEventRepository {
	return &attributionEventRepository{
		conn: conn,
	}
}

// Save grava o evento; reenvios com o mesmo tracking_id são ignorados
func (r *attributionEventRepository) Save(ctx context.Context, event *domain.AttributionEvent) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("attribution_events").
		Columns("tracking_id", "event_name", "post_id", "source", "medium", "campaign", "content", "website_url", "occurred_at").
		Values(
			event.TrackingID,
			event.EventName,
			event.PostID,
			event.Source,
			event.Medium,
			event.Campaign,
			event.Content,
			event.WebsiteURL,
			event.OccurredAt,
		).
		Suffix("ON CONFLICT (tracking_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}
