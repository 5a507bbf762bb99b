package googleadsclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	googleadsdomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/config"
)

const vendorName = "google_ads"

type Client interface {
	Search(ctx context.Context, customerID, accessToken, query string) (*googleadsdomain.SearchResponse, error)
}

type GoogleAdsClient struct {
	baseURL         string
	developerToken  string
	loginCustomerID string
	doer            vendorhttp.Doer
}

func NewClient(cfg *config.Config, doer vendorhttp.Doer) Client {
	return &GoogleAdsClient{
		baseURL:         cfg.Vendors.GoogleAdsURL,
		developerToken:  cfg.GoogleAds.DeveloperToken,
		loginCustomerID: NormalizeCustomerID(cfg.GoogleAds.LoginCustomerID),
		doer:            doer,
	}
}

// NormalizeCustomerID remove os hífens do formato exibido no painel (123-456-7890)
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
}

func (c *GoogleAdsClient) Search(ctx context.Context, customerID, accessToken, query string) (*googleadsdomain.SearchResponse, error) {
	header := http.Header{}
	if c.developerToken != "" {
		header.Set("developer-token", c.developerToken)
	}
	if c.loginCustomerID != "" {
		header.Set("login-customer-id", c.loginCustomerID)
	}

	resp, err := c.doer.Do(ctx, &vendorhttp.Request{
		Vendor:      vendorName,
		Method:      http.MethodPost,
		URL:         fmt.Sprintf("%s/customers/%s/googleAds:search", c.baseURL, NormalizeCustomerID(customerID)),
		BearerToken: accessToken,
		Header:      header,
		JSON:        map[string]string{"query": query},
	})
	if err != nil {
		return nil, err
	}

	if err := resp.Check(vendorName, "Google Ads API error"); err != nil {
		return nil, err
	}

	var response googleadsdomain.SearchResponse
	if err := resp.Decode(&response); err != nil {
		return nil, err
	}

	return &response, nil
}
