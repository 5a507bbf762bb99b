package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	metadomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
)

const campaignFields = "id,name,status,start_time,stop_time,insights{spend,clicks,impressions,ctr}"

// TODO seguir paging.next quando as contas passarem de uma página de campanhas
func (c *MetaClient) GetAdCampaigns(ctx context.Context, accountID, accessToken string) ([]metadomain.Campaign, error) {
	resp, err := c.doer.Do(ctx, &vendorhttp.Request{
		Vendor: vendorName,
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/act_%s/campaigns", c.baseURL, url.PathEscape(accountID)),
		Query: url.Values{
			"fields":       {campaignFields},
			"access_token": {accessToken},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := c.HandleResponse(resp); err != nil {
		return nil, err
	}

	var response metadomain.ResponseAdCampaign
	if err := resp.Decode(&response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
