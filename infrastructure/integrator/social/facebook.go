package social

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// FacebookInstagram atende contas do Facebook e do Instagram pela Graph API.
// O token vai no corpo da publicação e na query das métricas.
type FacebookInstagram struct {
	baseURL string
	client  vendorhttp.Doer
}

func NewFacebookInstagram(baseURL string, client vendorhttp.Doer) *FacebookInstagram {
	return &FacebookInstagram{baseURL: baseURL, client: client}
}

func (f *FacebookInstagram) Platform() string {
	return domain.PlatformFacebook
}

func (f *FacebookInstagram) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := f.publish(ctx, account, content)
	return toResult(account, f.Platform(), postID, err)
}

func (f *FacebookInstagram) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	isInstagram := account.NormalizedPlatform() == domain.PlatformInstagram

	endpoint := fmt.Sprintf("%s/%s/feed", f.baseURL, url.PathEscape(account.AccountID))
	if isInstagram {
		endpoint = fmt.Sprintf("%s/%s/media", f.baseURL, url.PathEscape(account.AccountID))
	}

	payload := map[string]any{
		"message":      content.Text,
		"access_token": account.AccessToken,
	}
	if image, ok := content.FirstImage(); ok {
		payload["url"] = image
	}
	if content.ScheduledFor != nil {
		payload["scheduled_publish_time"] = content.ScheduledFor.Unix()
		if !isInstagram {
			payload["published"] = false
		}
	}

	resp, err := f.client.Do(ctx, &vendorhttp.Request{
		Vendor: account.NormalizedPlatform(),
		Method: http.MethodPost,
		URL:    endpoint,
		JSON:   payload,
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(account.NormalizedPlatform(), "Facebook API error"); err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (f *FacebookInstagram) GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any {
	return fetchRaw(ctx, f.client, account, &vendorhttp.Request{
		Vendor: account.NormalizedPlatform(),
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/%s/insights", f.baseURL, url.PathEscape(account.AccountID)),
		Query: url.Values{
			"metric":       {"impressions,reach,engagement"},
			"access_token": {account.AccessToken},
		},
	})
}
