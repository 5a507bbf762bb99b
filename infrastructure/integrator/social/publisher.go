package social

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// Publisher publica um conteúdo em uma conta de uma plataforma.
// Nunca retorna erro: toda falha vira um PostResult com Success=false.
type Publisher interface {
	Platform() string
	PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult
}

// MetricsReader é implementado pelas plataformas que expõem métricas da conta.
// Retorna a resposta crua da plataforma ou nil em qualquer erro.
type MetricsReader interface {
	GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any
}

// Registry resolve o nome da plataforma (com aliases) para o Publisher correspondente
type Registry struct {
	publishers map[string]Publisher
}

func NewRegistry() *Registry {
	return &Registry{publishers: make(map[string]Publisher)}
}

// Register associa o publisher ao seu nome canônico e aos aliases informados
func (r *Registry) Register(p Publisher, aliases ...string) *Registry {
	r.publishers[canonicalize(p.Platform())] = p
	for _, alias := range aliases {
		r.publishers[canonicalize(alias)] = p
	}
	return r
}

func (r *Registry) Lookup(platform string) (Publisher, bool) {
	p, ok := r.publishers[canonicalize(platform)]
	return p, ok
}

func (r *Registry) Supports(platform string) bool {
	_, ok := r.Lookup(platform)
	return ok
}

func canonicalize(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// toResult converte o retorno interno do adapter no PostResult exposto
func toResult(account domain.SocialMediaAccount, platform, postID string, err error) domain.PostResult {
	label := account.Platform
	if label == "" {
		label = platform
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":        platform,
			"account_id":      account.ID,
			"vendor_rejected": vendorhttp.IsVendorRejection(err),
			"error":           err.Error(),
		}).Warn("Falha ao publicar na plataforma")
		return domain.Failed(label, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"platform":   platform,
		"account_id": account.ID,
		"post_id":    postID,
	}).Info("Publicação realizada com sucesso")

	return domain.Succeeded(label, postID)
}

// fetchRaw executa uma consulta de métricas e devolve o JSON decodificado, ou nil em falha
func fetchRaw(ctx context.Context, client vendorhttp.Doer, account domain.SocialMediaAccount, req *vendorhttp.Request) map[string]any {
	resp, err := client.Do(ctx, req)
	if err == nil {
		err = resp.Check(req.Vendor, req.Vendor+" API error")
	}

	var raw map[string]any
	if err == nil {
		err = resp.Decode(&raw)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform":   req.Vendor,
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao obter métricas da conta")
		return nil
	}

	return raw
}

// hashtagList remove o "#" inicial das hashtags e descarta vazias
func hashtagList(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

// truncateRunes corta o texto em n caracteres sem quebrar UTF-8
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
