package publishing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/social"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/pkg/metrics"
)

const (
	coreUnsupportedMessage     = "Unsupported platform"
	extendedUnsupportedMessage = "Platform not supported by additional platforms service"
)

// Aggregator distribui uma publicação entre contas de várias plataformas
type Aggregator struct {
	name               string
	registry           *social.Registry
	unsupportedMessage string
	callTimeout        time.Duration
	maxConcurrent      int

	tracker         Tracker
	websiteURL      string
	trackingTimeout time.Duration
	tracking        sync.WaitGroup

	metrics *metrics.Metrics
}

func newAggregator(name string, cfg *config.Config, registry *social.Registry, unsupportedMessage string) *Aggregator {
	maxConcurrent := cfg.Publishing.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Aggregator{
		name:               name,
		registry:           registry,
		unsupportedMessage: unsupportedMessage,
		callTimeout:        cfg.Publishing.CallTimeout,
		maxConcurrent:      maxConcurrent,
		metrics:            metrics.Get(),
	}
}

// NewCoreAggregator atende as plataformas principais, sem rastreamento de tráfego
func NewCoreAggregator(cfg *config.Config, registry *social.Registry) *Aggregator {
	return newAggregator("core", cfg, registry, coreUnsupportedMessage)
}

// NewExtendedAggregator atende as plataformas adicionais e registra a atribuição de cada publicação
func NewExtendedAggregator(cfg *config.Config, registry *social.Registry, tracker Tracker) *Aggregator {
	a := newAggregator("extended", cfg, registry, extendedUnsupportedMessage)
	a.tracker = tracker
	a.websiteURL = cfg.Publishing.TrackingWebsite
	a.trackingTimeout = cfg.Publishing.TrackingTimeout
	return a
}

func (a *Aggregator) Supports(platform string) bool {
	return a.registry.Supports(platform)
}

// PublishToAllPlatforms publica em paralelo, limitado por maxConcurrent.
// Contas inativas não geram resultado; as demais mantêm a ordem de entrada.
func (a *Aggregator) PublishToAllPlatforms(ctx context.Context, accounts []domain.SocialMediaAccount, content domain.PostContent) []domain.PostResult {
	slots := make([]*domain.PostResult, len(accounts))

	semaphore := make(chan struct{}, a.maxConcurrent)
	var wg sync.WaitGroup

	for i, account := range accounts {
		if !account.IsActive {
			logrus.WithFields(logrus.Fields{
				"aggregator": a.name,
				"account_id": account.ID,
				"platform":   account.Platform,
			}).Debug("Conta inativa ignorada")
			continue
		}

		wg.Add(1)
		go func(i int, account domain.SocialMediaAccount) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				result := domain.Failed(account.Platform, ctx.Err().Error())
				slots[i] = &result
				return
			}

			result := a.publishOne(ctx, account, content)
			slots[i] = &result
		}(i, account)
	}

	wg.Wait()

	results := make([]domain.PostResult, 0, len(accounts))
	for _, result := range slots {
		if result != nil {
			results = append(results, *result)
		}
	}

	return results
}

func (a *Aggregator) publishOne(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (result domain.PostResult) {
	publisher, ok := a.registry.Lookup(account.Platform)
	if !ok {
		a.metrics.PublishTotal.WithLabelValues(account.NormalizedPlatform(), "unsupported").Inc()
		return domain.Failed(account.Platform, a.unsupportedMessage)
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"aggregator": a.name,
				"account_id": account.ID,
				"platform":   publisher.Platform(),
				"panic":      fmt.Sprint(r),
			}).Error("Panic ao publicar na plataforma")
			result = domain.Failed(account.Platform, "internal error")
		}
		a.metrics.PublishTotal.WithLabelValues(publisher.Platform(), metrics.Outcome(result.Success)).Inc()
	}()

	callCtx := ctx
	if a.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.callTimeout)
		defer cancel()
	}

	result = publisher.PublishPost(callCtx, account, content)

	if result.Success && result.PostID != "" && a.tracker != nil {
		a.bestEffort(ctx, result.PostID, account.Platform)
	}

	return result
}

// bestEffort registra a atribuição em segundo plano; a falha nunca altera o resultado da publicação
func (a *Aggregator) bestEffort(parent context.Context, postID, platform string) {
	a.tracking.Add(1)

	go func() {
		defer a.tracking.Done()
		defer func() {
			if r := recover(); r != nil {
				logrus.WithFields(logrus.Fields{
					"post_id":  postID,
					"platform": platform,
					"panic":    fmt.Sprint(r),
				}).Error("Panic ao registrar atribuição")
			}
		}()

		ctx := context.WithoutCancel(parent)
		if a.trackingTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.trackingTimeout)
			defer cancel()
		}

		tracked := a.tracker.TrackSocialTraffic(ctx, postID, platform, a.websiteURL)
		if !tracked.Success {
			logrus.WithFields(logrus.Fields{
				"post_id":  postID,
				"platform": platform,
				"error":    tracked.Error,
			}).Warn("Falha ao registrar atribuição de tráfego")
		}
	}()
}

// Wait aguarda os registros de atribuição pendentes
func (a *Aggregator) Wait() {
	a.tracking.Wait()
}

func (a *Aggregator) GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any {
	publisher, ok := a.registry.Lookup(account.Platform)
	if !ok {
		return nil
	}

	reader, ok := publisher.(social.MetricsReader)
	if !ok {
		return nil
	}

	if a.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.callTimeout)
		defer cancel()
	}

	return reader.GetAccountMetrics(ctx, account)
}
