package metadomain

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Action struct {
	ActionType string        `json:"action_type"`
	Value      utils.Numeric `json:"value"`
}

// Conversions aceita tanto o número direto quanto a lista de ações que a Graph API devolve
type Conversions float64

func (c *Conversions) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var actions []Action
		if err := json.Unmarshal(trimmed, &actions); err != nil {
			*c = 0
			return nil
		}

		var total float64
		for _, action := range actions {
			total += action.Value.Float()
		}
		*c = Conversions(total)
		return nil
	}

	var n utils.Numeric
	if err := n.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	*c = Conversions(n)
	return nil
}

type AdAccountInsight struct {
	AccountID   string        `json:"account_id"`
	Name        string        `json:"account_name"`
	Spend       utils.Numeric `json:"spend"`
	Clicks      utils.Numeric `json:"clicks"`
	Impressions utils.Numeric `json:"impressions"`
	CTR         utils.Numeric `json:"ctr"`
	CPM         utils.Numeric `json:"cpm"`
	Conversions Conversions   `json:"conversions"`
	DateStart   string        `json:"date_start"`
	DateStop    string        `json:"date_stop"`
}

type ResponseAdAccountInsights struct {
	Data []AdAccountInsight `json:"data"`
}
