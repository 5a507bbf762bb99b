package social

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var ErrPinterestImageRequired = errors.New("Image required for Pinterest")

const pinterestTitleLimit = 100

// Pinterest cria pins no board identificado pelo accountId da conta
type Pinterest struct {
	baseURL string
	client  vendorhttp.Doer
}

func NewPinterest(baseURL string, client vendorhttp.Doer) *Pinterest {
	return &Pinterest{baseURL: baseURL, client: client}
}

func (p *Pinterest) Platform() string {
	return domain.PlatformPinterest
}

func (p *Pinterest) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := p.publish(ctx, account, content)
	return toResult(account, p.Platform(), postID, err)
}

func (p *Pinterest) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	image, ok := content.FirstImage()
	if !ok {
		return "", ErrPinterestImageRequired
	}

	resp, err := p.client.Do(ctx, &vendorhttp.Request{
		Vendor:      p.Platform(),
		Method:      http.MethodPost,
		URL:         p.baseURL + "/pins",
		BearerToken: account.AccessToken,
		JSON: map[string]any{
			"link":        image,
			"title":       truncateRunes(content.Text, pinterestTitleLimit),
			"description": content.Text,
			"board_id":    account.AccountID,
			"media_source": map[string]string{
				"source_type": "image_url",
				"url":         image,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(p.Platform(), "Pinterest API error"); err != nil {
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
