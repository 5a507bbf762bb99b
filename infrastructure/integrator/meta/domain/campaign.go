package metadomain

import "github.com/vfg2006/social-media-os-api/pkg/utils"

type Campaign struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	StartTime string           `json:"start_time"`
	StopTime  string           `json:"stop_time"`
	Insights  CampaignInsights `json:"insights"`
}

type CampaignInsights struct {
	Data []CampaignInsight `json:"data"`
}

type CampaignInsight struct {
	Spend       utils.Numeric `json:"spend"`
	Clicks      utils.Numeric `json:"clicks"`
	Impressions utils.Numeric `json:"impressions"`
	CTR         utils.Numeric `json:"ctr"`
}

// Insight retorna a primeira linha de insights ou zero quando a campanha não teve entrega
func (c *Campaign) Insight() CampaignInsight {
	if len(c.Insights.Data) == 0 {
		return CampaignInsight{}
	}
	return c.Insights.Data[0]
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type ResponseAdCampaign struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}
