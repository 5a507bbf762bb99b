package handler

import (
	"net/http"

	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/internal/usecases/advertising"
)

type AdMetricsRequest struct {
	Account   domain.AdAccount `json:"account"`
	DateRange string           `json:"date_range"`
}

type AdCampaignsRequest struct {
	Account domain.AdAccount `json:"account"`
}

type ConsolidatedMetricsRequest struct {
	Accounts  []domain.AdAccount `json:"accounts" validate:"dive"`
	DateRange string             `json:"date_range"`
}

func AdAccountMetrics(advertiser advertising.Advertiser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AdMetricsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeJSON(w, r, http.StatusOK, advertiser.GetAccountMetrics(r.Context(), req.Account, req.DateRange))
	})
}

func AdCampaigns(advertiser advertising.Advertiser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AdCampaignsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaigns := advertiser.GetCampaigns(r.Context(), req.Account)
		if campaigns == nil {
			campaigns = []domain.CampaignData{}
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func AdConsolidatedMetrics(advertiser advertising.Advertiser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ConsolidatedMetricsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		writeJSON(w, r, http.StatusOK, advertiser.GetConsolidatedMetrics(r.Context(), req.Accounts, req.DateRange))
	})
}
