package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/social-media-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

const (
	adAccountsTable = "ad_accounts aa"
)

type AdAccountRepository interface {
	ListActive(ctx context.Context) ([]*domain.AdAccountRecord, error)
}

type adAccountRepository struct {
	conn postgres.Queryer
}

func NewAdAccountRepository(conn postgres.Queryer) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) ListActive(ctx context.Context) ([]*domain.AdAccountRecord, error) {
	query, args, err := squirrel.
		Select("aa.id, aa.platform, aa.account_id, aa.account_name, aa.currency, aa.secret_name").
		From(adAccountsTable).
		Where(squirrel.Eq{"aa.is_active": true}).
		OrderBy("aa.platform ASC", "aa.account_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccountRecord, 0)
	for rows.Next() {
		acc := &domain.AdAccountRecord{}
		if err := rows.Scan(
			&acc.ID,
			&acc.Platform,
			&acc.AccountID,
			&acc.AccountName,
			&acc.Currency,
			&acc.SecretName,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}
