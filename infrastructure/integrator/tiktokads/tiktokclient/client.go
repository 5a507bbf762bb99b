package tiktokclient

import (
	"context"
	"net/http"

	tiktokdomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/tiktokads/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/config"
)

const vendorName = "tiktok_ads"

type Client interface {
	GetIntegratedReport(ctx context.Context, accessToken string, request tiktokdomain.ReportRequest) (*tiktokdomain.ReportResponse, error)
}

type TikTokClient struct {
	baseURL string
	doer    vendorhttp.Doer
}

func NewClient(cfg *config.Config, doer vendorhttp.Doer) Client {
	return &TikTokClient{
		baseURL: cfg.Vendors.TikTokBusinessURL,
		doer:    doer,
	}
}

func (c *TikTokClient) GetIntegratedReport(ctx context.Context, accessToken string, request tiktokdomain.ReportRequest) (*tiktokdomain.ReportResponse, error) {
	resp, err := c.doer.Do(ctx, &vendorhttp.Request{
		Vendor: vendorName,
		Method: http.MethodPost,
		URL:    c.baseURL + "/report/integrated/get/",
		Header: http.Header{"Access-Token": {accessToken}},
		JSON:   request,
	})
	if err != nil {
		return nil, err
	}

	if err := resp.Check(vendorName, "TikTok Ads API error"); err != nil {
		return nil, err
	}

	var response tiktokdomain.ReportResponse
	if err := resp.Decode(&response); err != nil {
		return nil, err
	}

	if response.Code != 0 {
		message := response.Message
		if message == "" {
			message = "TikTok Ads API error"
		}
		return nil, &vendorhttp.VendorError{Vendor: vendorName, StatusCode: resp.StatusCode, Message: message}
	}

	return &response, nil
}
