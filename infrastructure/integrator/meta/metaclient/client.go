package metaclient

import (
	"context"
	"errors"
	"fmt"

	metadomain "github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/config"
)

const vendorName = "meta_ads"

var ErrTokenExpired = errors.New("token do Meta expirado ou revogado")

type Client interface {
	GetAdAccountInsights(ctx context.Context, accountID, accessToken, dateRange string) (*metadomain.AdAccountInsight, error)
	GetAdCampaigns(ctx context.Context, accountID, accessToken string) ([]metadomain.Campaign, error)
}

type MetaClient struct {
	baseURL string
	doer    vendorhttp.Doer
}

func NewClient(cfg *config.Config, doer vendorhttp.Doer) Client {
	return &MetaClient{
		baseURL: cfg.Vendors.GraphURL,
		doer:    doer,
	}
}

// HandleResponse verifica o envelope de erro da Graph API, separando token expirado das demais rejeições
func (c *MetaClient) HandleResponse(resp *vendorhttp.Response) error {
	var envelope metadomain.ErrorResponse
	if err := resp.Decode(&envelope); err == nil && envelope.Error.IsTokenExpired() {
		return fmt.Errorf("%w: %s", ErrTokenExpired, envelope.Error.Message)
	}

	return resp.Check(vendorName, "Meta Ads API error")
}
