package publishing

import (
	"context"

	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// Tracker registra a atribuição de tráfego de uma publicação bem-sucedida
type Tracker interface {
	TrackSocialTraffic(ctx context.Context, postID, platform, websiteURL string) domain.TrackingResult
}

// Publisher é a fachada usada pela camada HTTP
type Publisher interface {
	// Publish publica o conteúdo em todas as contas ativas; o resultado de cada conta vem na ordem de entrada
	Publish(ctx context.Context, accounts []domain.SocialMediaAccount, content domain.PostContent) []domain.PostResult

	// GetAccountMetrics retorna a resposta crua da plataforma ou nil quando não há leitor ou a consulta falha
	GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any

	Wait()
}
