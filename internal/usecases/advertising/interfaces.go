package advertising

import (
	"context"

	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// PlatformIntegrator busca as métricas de uma conta em uma plataforma de anúncios.
// Retorna nil em qualquer falha.
type PlatformIntegrator interface {
	Platform() domain.AdPlatform
	GetAccountMetrics(ctx context.Context, account domain.AdAccount, dateRange string) *domain.AdMetrics
}

// CampaignLister é implementado pelas plataformas que listam campanhas
type CampaignLister interface {
	GetCampaigns(ctx context.Context, account domain.AdAccount) []domain.CampaignData
}

// MetricsCache é opcional; falhas do cache nunca impedem a consulta à plataforma
type MetricsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

type Advertiser interface {
	GetAccountMetrics(ctx context.Context, account domain.AdAccount, dateRange string) *domain.AdMetrics
	GetCampaigns(ctx context.Context, account domain.AdAccount) []domain.CampaignData
	GetConsolidatedMetrics(ctx context.Context, accounts []domain.AdAccount, dateRange string) *domain.ConsolidatedMetrics
}
