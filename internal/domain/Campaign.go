package domain

import "strings"

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type CampaignData struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Spend       float64        `json:"spend"`
	Clicks      int64          `json:"clicks"`
	Impressions int64          `json:"impressions"`
	CTR         float64        `json:"ctr"`
	StartDate   string         `json:"startDate"`
	EndDate     *string        `json:"endDate,omitempty"`
}

// NormalizeCampaignStatus converte o status do fornecedor para o modelo de três estados.
// Status desconhecidos são tratados como pausados.
func NormalizeCampaignStatus(vendorStatus string) CampaignStatus {
	switch strings.ToUpper(strings.TrimSpace(vendorStatus)) {
	case "ACTIVE", "ENABLED", "ENABLE", "CAMPAIGN_STATUS_ENABLE":
		return CampaignStatusActive
	case "PAUSED", "DISABLE", "CAMPAIGN_STATUS_DISABLE":
		return CampaignStatusPaused
	case "DELETED", "ARCHIVED", "REMOVED", "ENDED", "COMPLETED", "CAMPAIGN_STATUS_DELETE":
		return CampaignStatusCompleted
	default:
		return CampaignStatusPaused
	}
}
