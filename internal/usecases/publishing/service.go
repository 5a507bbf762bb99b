package publishing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// Service separa as contas entre o agregador principal e o de plataformas adicionais
type Service struct {
	core     *Aggregator
	extended *Aggregator
}

func NewService(core, extended *Aggregator) Publisher {
	return &Service{
		core:     core,
		extended: extended,
	}
}

// Publish devolve primeiro os resultados das plataformas principais e depois os das adicionais
func (s *Service) Publish(ctx context.Context, accounts []domain.SocialMediaAccount, content domain.PostContent) []domain.PostResult {
	coreAccounts := make([]domain.SocialMediaAccount, 0, len(accounts))
	extendedAccounts := make([]domain.SocialMediaAccount, 0)

	for _, account := range accounts {
		if s.extended.Supports(account.Platform) {
			extendedAccounts = append(extendedAccounts, account)
			continue
		}
		coreAccounts = append(coreAccounts, account)
	}

	logrus.WithFields(logrus.Fields{
		"accounts":          len(accounts),
		"core_accounts":     len(coreAccounts),
		"extended_accounts": len(extendedAccounts),
	}).Info("Iniciando publicação em múltiplas plataformas")

	var coreResults, extendedResults []domain.PostResult

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		coreResults = s.core.PublishToAllPlatforms(ctx, coreAccounts, content)
	}()

	go func() {
		defer wg.Done()
		extendedResults = s.extended.PublishToAllPlatforms(ctx, extendedAccounts, content)
	}()

	wg.Wait()

	return append(coreResults, extendedResults...)
}

func (s *Service) GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any {
	if s.extended.Supports(account.Platform) {
		return s.extended.GetAccountMetrics(ctx, account)
	}
	return s.core.GetAccountMetrics(ctx, account)
}

// Wait aguarda os registros de atribuição em andamento; usado no desligamento
func (s *Service) Wait() {
	s.core.Wait()
	s.extended.Wait()
}
