package googleads

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// noEndDate é a data que a API usa para campanhas sem término
const noEndDate = "2037-12-30"

type GoogleAdsIntegrator struct {
	Client googleadsclient.Client
	now    func() time.Time
}

func New(client googleadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *GoogleAdsIntegrator) Platform() domain.AdPlatform {
	return domain.AdPlatformGoogle
}

func (s *GoogleAdsIntegrator) GetAccountMetrics(ctx context.Context, account domain.AdAccount, dateRange string) *domain.AdMetrics {
	query := googleadsclient.AccountMetricsQuery(dateRange, s.now())

	resp, err := s.Client.Search(ctx, account.AccountID, account.AccessToken, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("google ads: failed to get account metrics")
		return nil
	}

	// Apenas a primeira linha é considerada; sem linhas o período não teve entrega
	var metrics googleadsdomain.Metrics
	if len(resp.Results) > 0 {
		metrics = resp.Results[0].Metrics
	}

	return FactoryAdMetrics(metrics, dateRange)
}

func (s *GoogleAdsIntegrator) GetCampaigns(ctx context.Context, account domain.AdAccount) []domain.CampaignData {
	resp, err := s.Client.Search(ctx, account.AccountID, account.AccessToken, googleadsclient.CampaignsQuery())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("google ads: failed to get campaigns")
		return []domain.CampaignData{}
	}

	campaigns := make([]domain.CampaignData, 0, len(resp.Results))
	for _, row := range resp.Results {
		if row.Campaign == nil {
			continue
		}
		campaigns = append(campaigns, FactoryCampaignData(row))
	}

	return campaigns
}

// FactoryAdMetrics normaliza micros para a moeda da conta e ctr de fração para percentual
func FactoryAdMetrics(metrics googleadsdomain.Metrics, dateRange string) *domain.AdMetrics {
	return &domain.AdMetrics{
		Spend:       metrics.CostMicros.FromMicros(),
		Clicks:      metrics.Clicks.Int(),
		Impressions: metrics.Impressions.Int(),
		CTR:         metrics.CTR.AsPercent(),
		CPM:         metrics.AverageCPM.FromMicros(),
		Conversions: metrics.Conversions.Int(),
		DateRange:   dateRange,
	}
}

func FactoryCampaignData(row googleadsdomain.Row) domain.CampaignData {
	data := domain.CampaignData{
		ID:          string(row.Campaign.ID),
		Name:        row.Campaign.Name,
		Status:      domain.NormalizeCampaignStatus(row.Campaign.Status),
		Spend:       row.Metrics.CostMicros.FromMicros(),
		Clicks:      row.Metrics.Clicks.Int(),
		Impressions: row.Metrics.Impressions.Int(),
		CTR:         row.Metrics.CTR.AsPercent(),
		StartDate:   row.Campaign.StartDate,
	}

	if end := row.Campaign.EndDate; end != "" && end != noEndDate {
		data.EndDate = &end
	}

	return data
}
