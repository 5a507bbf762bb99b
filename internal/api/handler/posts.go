package handler

import (
	"net/http"

	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/internal/usecases/publishing"
	"github.com/vfg2006/social-media-os-api/pkg/log"
)

type PublishRequest struct {
	Accounts []domain.SocialMediaAccount `json:"accounts" validate:"dive"`
	Content  domain.PostContent          `json:"content"`
}

type SocialMetricsRequest struct {
	Account domain.SocialMediaAccount `json:"account"`
}

// PublishPost sempre responde 200: o sucesso de cada conta vem no próprio resultado
func PublishPost(publisher publishing.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req PublishRequest
		if !decodeBody(w, r, &req) {
			return
		}

		results := publisher.Publish(r.Context(), req.Accounts, req.Content)

		succeeded := 0
		for _, result := range results {
			if result.Success {
				succeeded++
			}
		}
		log.ForContext(r.Context()).WithFields(log.Fields{
			"accounts":  len(req.Accounts),
			"results":   len(results),
			"succeeded": succeeded,
		}).Info("Publicação processada")

		writeJSON(w, r, http.StatusOK, results)
	})
}

// SocialAccountMetrics devolve a resposta da plataforma como veio, ou null
func SocialAccountMetrics(publisher publishing.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SocialMetricsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeJSON(w, r, http.StatusOK, publisher.GetAccountMetrics(r.Context(), req.Account))
	})
}
