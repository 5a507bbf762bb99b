package domain

type AdPlatform string

const (
	AdPlatformMeta   AdPlatform = "meta"
	AdPlatformGoogle AdPlatform = "google"
	AdPlatformTikTok AdPlatform = "tiktok"
)

// DefaultAdDateRange é usado quando o chamador não informa um período
const DefaultAdDateRange = "LAST_30_DAYS"

type AdAccount struct {
	ID          string     `json:"id" validate:"required"`
	Platform    AdPlatform `json:"platform" validate:"required"`
	AccountID   string     `json:"accountId" validate:"required"`
	AccountName string     `json:"accountName"`
	AccessToken string     `json:"accessToken,omitempty" validate:"required"`
	Currency    string     `json:"currency"`
}

// AdMetrics já normalizado: valores monetários na moeda da conta e taxas em percentual
type AdMetrics struct {
	Spend       float64 `json:"spend"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	Conversions int64   `json:"conversions"`
	DateRange   string  `json:"dateRange"`
}

type ConsolidatedMetrics struct {
	TotalSpend        float64               `json:"totalSpend"`
	TotalClicks       int64                 `json:"totalClicks"`
	TotalImpressions  int64                 `json:"totalImpressions"`
	AverageCTR        float64               `json:"averageCtr"`
	AverageCPM        float64               `json:"averageCpm"`
	TotalConversions  int64                 `json:"totalConversions"`
	PlatformBreakdown map[string]*AdMetrics `json:"platformBreakdown"`
}

// AdMetricsSnapshot é o registro diário das métricas consolidadas
type AdMetricsSnapshot struct {
	ID        int64                `json:"id"`
	Date      string               `json:"date"`
	DateRange string               `json:"dateRange"`
	Accounts  int                  `json:"accounts"`
	Metrics   *ConsolidatedMetrics `json:"metrics"`
}

// AdAccountRecord é a conta cadastrada no banco. O token não é armazenado:
// SecretName aponta para a variável de ambiente que o contém.
type AdAccountRecord struct {
	ID          string
	Platform    AdPlatform
	AccountID   string
	AccountName string
	Currency    string
	SecretName  string
}

func (r AdAccountRecord) ToAdAccount(accessToken string) AdAccount {
	return AdAccount{
		ID:          r.ID,
		Platform:    r.Platform,
		AccountID:   r.AccountID,
		AccountName: r.AccountName,
		AccessToken: accessToken,
		Currency:    r.Currency,
	}
}
