package tiktokdomain

import "github.com/vfg2006/social-media-os-api/pkg/utils"

// ReportRequest é o corpo do relatório integrado no nível do anunciante
type ReportRequest struct {
	AdvertiserID string   `json:"advertiser_id"`
	ReportType   string   `json:"report_type"`
	DataLevel    string   `json:"data_level"`
	Dimensions   []string `json:"dimensions"`
	Metrics      []string `json:"metrics"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

type Metrics struct {
	Spend       utils.Numeric `json:"spend"`
	Clicks      utils.Numeric `json:"clicks"`
	Impressions utils.Numeric `json:"impressions"`
	CTR         utils.Numeric `json:"ctr"`
	CPM         utils.Numeric `json:"cpm"`
	Conversions utils.Numeric `json:"conversion"`
}

type ReportRow struct {
	Dimensions map[string]string `json:"dimensions"`
	Metrics    Metrics           `json:"metrics"`
}

// ReportResponse segue o envelope da Business API: code 0 indica sucesso mesmo com HTTP 200 em erros
type ReportResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Data      struct {
		List []ReportRow `json:"list"`
	} `json:"data"`
}
