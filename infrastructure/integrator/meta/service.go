package meta

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

func (s *MetaIntegrator) Platform() domain.AdPlatform {
	return domain.AdPlatformMeta
}

// GetAccountMetrics retorna nil em qualquer falha; o motivo fica apenas no log
func (s *MetaIntegrator) GetAccountMetrics(ctx context.Context, account domain.AdAccount, dateRange string) *domain.AdMetrics {
	resp, err := s.Client.GetAdAccountInsights(ctx, account.AccountID, account.AccessToken, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":    account.ID,
			"token_expired": errors.Is(err, metaclient.ErrTokenExpired),
			"error":         err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"account_name": resp.Name,
	}).Debug("insights: successfully retrieved ad account metrics")

	return FactoryAdMetrics(resp, dateRange)
}

func (s *MetaIntegrator) GetCampaigns(ctx context.Context, account domain.AdAccount) []domain.CampaignData {
	campaigns, err := s.Client.GetAdCampaigns(ctx, account.AccountID, account.AccessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":    account.ID,
			"token_expired": errors.Is(err, metaclient.ErrTokenExpired),
			"error":         err.Error(),
		}).Error("insights: failed to get campaigns for ad account")
		return []domain.CampaignData{}
	}

	result := make([]domain.CampaignData, 0, len(campaigns))
	for i := range campaigns {
		result = append(result, FactoryCampaignData(&campaigns[i]))
	}

	return result
}

// FactoryAdMetrics converte a linha de insights; a Graph API já entrega ctr em percentual
func FactoryAdMetrics(insight *metadomain.AdAccountInsight, dateRange string) *domain.AdMetrics {
	return &domain.AdMetrics{
		Spend:       insight.Spend.Float(),
		Clicks:      insight.Clicks.Int(),
		Impressions: insight.Impressions.Int(),
		CTR:         insight.CTR.Float(),
		CPM:         insight.CPM.Float(),
		Conversions: utils.Numeric(insight.Conversions).Int(),
		DateRange:   dateRange,
	}
}

func FactoryCampaignData(campaign *metadomain.Campaign) domain.CampaignData {
	insight := campaign.Insight()

	data := domain.CampaignData{
		ID:          campaign.ID,
		Name:        campaign.Name,
		Status:      domain.NormalizeCampaignStatus(campaign.Status),
		Spend:       insight.Spend.Float(),
		Clicks:      insight.Clicks.Int(),
		Impressions: insight.Impressions.Int(),
		CTR:         insight.CTR.Float(),
		StartDate:   campaign.StartTime,
	}

	if stop := strings.TrimSpace(campaign.StopTime); stop != "" {
		data.EndDate = &stop
	}

	return data
}
