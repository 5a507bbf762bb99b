package advertising

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/pkg/metrics"
)

var (
	ErrUnsupportedPlatform = errors.New("plataforma de anúncios não suportada")
	ErrNoMetrics           = errors.New("plataforma não retornou métricas")
)

type Service struct {
	integrators map[domain.AdPlatform]PlatformIntegrator
	cache       MetricsCache
	callTimeout time.Duration
	metrics     *metrics.Metrics
}

type Option func(*Service)

// WithCache habilita o cache de métricas por plataforma, conta e período
func WithCache(cache MetricsCache) Option {
	return func(s *Service) { s.cache = cache }
}

func NewService(cfg *config.Config, integrators []PlatformIntegrator, opts ...Option) Advertiser {
	s := &Service{
		integrators: make(map[domain.AdPlatform]PlatformIntegrator, len(integrators)),
		callTimeout: cfg.Publishing.CallTimeout,
		metrics:     metrics.Get(),
	}
	for _, integrator := range integrators {
		s.integrators[integrator.Platform()] = integrator
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizePlatform(platform domain.AdPlatform) domain.AdPlatform {
	return domain.AdPlatform(strings.ToLower(strings.TrimSpace(string(platform))))
}

func cacheKey(account domain.AdAccount, dateRange string) string {
	return fmt.Sprintf("ad_metrics:%s:%s:%s", normalizePlatform(account.Platform), account.AccountID, dateRange)
}

func (s *Service) GetAccountMetrics(ctx context.Context, account domain.AdAccount, dateRange string) *domain.AdMetrics {
	return s.fetch(ctx, account, dateRange).OrElse(nil)
}

// fetch concentra o despacho por plataforma; a camada pública só expõe o valor ou nil
func (s *Service) fetch(ctx context.Context, account domain.AdAccount, dateRange string) domain.Outcome[*domain.AdMetrics] {
	if dateRange == "" {
		dateRange = domain.DefaultAdDateRange
	}

	platform := normalizePlatform(account.Platform)
	integrator, ok := s.integrators[platform]
	if !ok {
		s.metrics.AdMetricsFetchTotal.WithLabelValues(string(platform), "unsupported").Inc()
		return domain.Capture[*domain.AdMetrics](nil, ErrUnsupportedPlatform)
	}

	key := cacheKey(account, dateRange)
	if cached, ok := s.fromCache(ctx, key); ok {
		s.metrics.AdMetricsFetchTotal.WithLabelValues(string(platform), "cache_hit").Inc()
		return domain.Capture(cached, nil)
	}

	callCtx := ctx
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	result := integrator.GetAccountMetrics(callCtx, account, dateRange)
	s.metrics.AdMetricsFetchTotal.WithLabelValues(string(platform), metrics.Outcome(result != nil)).Inc()

	if result == nil {
		return domain.Capture[*domain.AdMetrics](nil, ErrNoMetrics)
	}

	s.toCache(ctx, key, result)

	return domain.Capture(result, nil)
}

func (s *Service) fromCache(ctx context.Context, key string) (*domain.AdMetrics, bool) {
	if s.cache == nil {
		return nil, false
	}

	var cached domain.AdMetrics
	found, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Erro ao ler métricas do cache")
		return nil, false
	}
	if !found {
		return nil, false
	}

	return &cached, true
}

func (s *Service) toCache(ctx context.Context, key string, value *domain.AdMetrics) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetJSON(ctx, key, value); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Erro ao gravar métricas no cache")
	}
}

// GetCampaigns não é suportado para TikTok: retorna lista vazia, assim como para plataformas desconhecidas
func (s *Service) GetCampaigns(ctx context.Context, account domain.AdAccount) []domain.CampaignData {
	integrator, ok := s.integrators[normalizePlatform(account.Platform)]
	if !ok {
		return []domain.CampaignData{}
	}

	lister, ok := integrator.(CampaignLister)
	if !ok {
		logrus.WithField("platform", account.Platform).Debug("Plataforma não lista campanhas")
		return []domain.CampaignData{}
	}

	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	campaigns := lister.GetCampaigns(ctx, account)
	if campaigns == nil {
		return []domain.CampaignData{}
	}

	return campaigns
}

// GetConsolidatedMetrics consulta todas as contas em paralelo.
// Contas sem métricas não entram nas somas nem no denominador das médias.
func (s *Service) GetConsolidatedMetrics(ctx context.Context, accounts []domain.AdAccount, dateRange string) *domain.ConsolidatedMetrics {
	outcomes := make([]domain.Outcome[*domain.AdMetrics], len(accounts))

	var wg sync.WaitGroup
	for i, account := range accounts {
		wg.Add(1)
		go func(i int, account domain.AdAccount) {
			defer wg.Done()
			outcomes[i] = s.fetch(ctx, account, dateRange)
		}(i, account)
	}
	wg.Wait()

	return Consolidate(accounts, outcomes)
}

// Consolidate soma os contadores e calcula a média simples de ctr e cpm.
// Quando mais de uma conta da mesma plataforma responde, o detalhamento guarda a última.
func Consolidate(accounts []domain.AdAccount, outcomes []domain.Outcome[*domain.AdMetrics]) *domain.ConsolidatedMetrics {
	consolidated := &domain.ConsolidatedMetrics{
		PlatformBreakdown: make(map[string]*domain.AdMetrics),
	}

	var ctrSum, cpmSum float64
	count := 0

	for i, outcome := range outcomes {
		if !outcome.OK() || outcome.Value == nil {
			continue
		}
		m := outcome.Value

		consolidated.TotalSpend += m.Spend
		consolidated.TotalClicks += m.Clicks
		consolidated.TotalImpressions += m.Impressions
		consolidated.TotalConversions += m.Conversions
		ctrSum += m.CTR
		cpmSum += m.CPM
		count++

		consolidated.PlatformBreakdown[string(normalizePlatform(accounts[i].Platform))] = m
	}

	if count > 0 {
		consolidated.AverageCTR = ctrSum / float64(count)
		consolidated.AverageCPM = cpmSum / float64(count)
	}

	return consolidated
}
