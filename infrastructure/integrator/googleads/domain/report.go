package googleadsdomain

import (
	"strings"

	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

// ID aceita o identificador como número ou string
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" {
		raw = ""
	}
	*id = ID(raw)
	return nil
}

// Metrics segue o JSON da API: int64 chegam como string, custos em micros e ctr como fração
type Metrics struct {
	CostMicros  utils.Numeric `json:"costMicros"`
	Clicks      utils.Numeric `json:"clicks"`
	Impressions utils.Numeric `json:"impressions"`
	CTR         utils.Numeric `json:"ctr"`
	AverageCPM  utils.Numeric `json:"averageCpm"`
	Conversions utils.Numeric `json:"conversions"`
}

type Campaign struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Row struct {
	Campaign *Campaign `json:"campaign,omitempty"`
	Metrics  Metrics   `json:"metrics"`
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken"`
}
