package social

import (
	"context"
	"net/http"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// Twitter publica tweets pela API v2.
// ImageURLs são enviados como media_ids: a mídia precisa ter sido enviada antes pelo fluxo de upload da conta.
type Twitter struct {
	baseURL string
	client  vendorhttp.Doer
}

func NewTwitter(baseURL string, client vendorhttp.Doer) *Twitter {
	return &Twitter{baseURL: baseURL, client: client}
}

func (t *Twitter) Platform() string {
	return domain.PlatformTwitter
}

func (t *Twitter) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := t.publish(ctx, account, content)
	return toResult(account, t.Platform(), postID, err)
}

func (t *Twitter) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	payload := map[string]any{"text": content.Text}
	if len(content.ImageURLs) > 0 {
		payload["media"] = map[string]any{"media_ids": content.ImageURLs}
	}

	resp, err := t.client.Do(ctx, &vendorhttp.Request{
		Vendor:      t.Platform(),
		Method:      http.MethodPost,
		URL:         t.baseURL + "/tweets",
		BearerToken: account.AccessToken,
		JSON:        payload,
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(t.Platform(), "Twitter API error"); err != nil {
		return "", err
	}

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", err
	}

	return result.Data.ID, nil
}
