package handler

import (
	"net/http"

	"github.com/vfg2006/social-media-os-api/internal/usecases/attributing"
	"github.com/vfg2006/social-media-os-api/pkg/apiErrors"
)

type TrackRequest struct {
	PostID     string `json:"post_id" validate:"required"`
	Platform   string `json:"platform" validate:"required"`
	WebsiteURL string `json:"website_url" validate:"required,url"`
}

// TrackSocialTraffic responde 200 com success=false quando a gravação falha
func TrackSocialTraffic(attributor attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req TrackRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeJSON(w, r, http.StatusOK, attributor.TrackSocialTraffic(r.Context(), req.PostID, req.Platform, req.WebsiteURL))
	})
}

func SocialTrafficReport(attributor attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := attributor.GetSocialTrafficReport(r.Context(), r.URL.Query().Get("date_range"))
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Relatório indisponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
