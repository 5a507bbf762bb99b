package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

const insightFields = "account_id,account_name,spend,clicks,impressions,ctr,cpm,conversions"

// datePresets traduz os rótulos aceitos pela API para os presets da Graph API
var datePresets = map[string]string{
	"today":        "today",
	"yesterday":    "yesterday",
	"last_3_days":  "last_3d",
	"last_7_days":  "last_7d",
	"last_14_days": "last_14d",
	"last_28_days": "last_28d",
	"last_30_days": "last_30d",
	"last_90_days": "last_90d",
	"this_month":   "this_month",
	"last_month":   "last_month",
	"this_year":    "this_year",
	"last_year":    "last_year",
	"maximum":      "maximum",
}

// PeriodParams usa date_preset quando o rótulo tem equivalente e time_range caso contrário
func PeriodParams(dateRange string, now time.Time) url.Values {
	params := url.Values{}

	normalized := strings.ToLower(strings.TrimSpace(dateRange))
	if preset, ok := datePresets[normalized]; ok {
		params.Set("date_preset", preset)
		return params
	}

	if window, ok := utils.ResolveDateWindow(dateRange, now); ok {
		params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, window.Since(), window.Until()))
		return params
	}

	params.Set("date_preset", datePresets["last_30_days"])
	return params
}

func (c *MetaClient) GetAdAccountInsights(ctx context.Context, accountID, accessToken, dateRange string) (*metadomain.AdAccountInsight, error) {
	params := PeriodParams(dateRange, time.Now())
	params.Set("fields", insightFields)
	params.Set("access_token", accessToken)

	resp, err := c.doer.Do(ctx, &vendorhttp.Request{
		Vendor: vendorName,
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/act_%s/insights", c.baseURL, url.PathEscape(accountID)),
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	if err := c.HandleResponse(resp); err != nil {
		return nil, err
	}

	var response metadomain.ResponseAdAccountInsights
	if err := resp.Decode(&response); err != nil {
		return nil, err
	}

	// Conta sem entrega no período: a Graph API devolve data vazio
	if len(response.Data) == 0 {
		return &metadomain.AdAccountInsight{AccountID: accountID}, nil
	}

	return &response.Data[0], nil
}
