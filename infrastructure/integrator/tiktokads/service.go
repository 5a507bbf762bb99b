package tiktokads

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/tiktokads/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/tiktokads/tiktokclient"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

// defaultWindowDays é usado quando o rótulo do período não pode ser resolvido em datas
const defaultWindowDays = 7

var reportMetrics = []string{"spend", "clicks", "impressions", "ctr", "cpm", "conversion"}

// TikTokAdsIntegrator só expõe métricas da conta: a listagem de campanhas ainda não é suportada
type TikTokAdsIntegrator struct {
	Client tiktokclient.Client
	now    func() time.Time
}

func New(client tiktokclient.Client) *TikTokAdsIntegrator {
	return &TikTokAdsIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *TikTokAdsIntegrator) Platform() domain.AdPlatform {
	return domain.AdPlatformTikTok
}

// ReportWindow converte o rótulo em datas; rótulos não reconhecidos usam os últimos 7 dias
func ReportWindow(dateRange string, now time.Time) utils.DateWindow {
	if window, ok := utils.ResolveDateWindow(dateRange, now); ok {
		return window
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return utils.DateWindow{Start: end.AddDate(0, 0, -defaultWindowDays), End: end}
}

func (s *TikTokAdsIntegrator) GetAccountMetrics(ctx context.Context, account domain.AdAccount, dateRange string) *domain.AdMetrics {
	window := ReportWindow(dateRange, s.now())

	resp, err := s.Client.GetIntegratedReport(ctx, account.AccessToken, tiktokdomain.ReportRequest{
		AdvertiserID: account.AccountID,
		ReportType:   "BASIC",
		DataLevel:    "AUCTION_ADVERTISER",
		Dimensions:   []string{"advertiser_id"},
		Metrics:      reportMetrics,
		StartDate:    window.Since(),
		EndDate:      window.Until(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"start_date": window.Since(),
			"end_date":   window.Until(),
			"error":      err.Error(),
		}).Error("tiktok ads: failed to get integrated report")
		return nil
	}

	var metrics tiktokdomain.Metrics
	if len(resp.Data.List) > 0 {
		metrics = resp.Data.List[0].Metrics
	}

	return FactoryAdMetrics(metrics, dateRange)
}

// FactoryAdMetrics mantém as unidades da Business API, que já entrega ctr em percentual
func FactoryAdMetrics(metrics tiktokdomain.Metrics, dateRange string) *domain.AdMetrics {
	return &domain.AdMetrics{
		Spend:       metrics.Spend.Float(),
		Clicks:      metrics.Clicks.Int(),
		Impressions: metrics.Impressions.Int(),
		CTR:         metrics.CTR.Float(),
		CPM:         metrics.CPM.Float(),
		Conversions: metrics.Conversions.Int(),
		DateRange:   dateRange,
	}
}
