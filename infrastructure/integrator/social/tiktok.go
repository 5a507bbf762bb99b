package social

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var ErrTikTokVideoRequired = errors.New("Video content required for TikTok")

type TikTok struct {
	baseURL string
	client  vendorhttp.Doer
}

func NewTikTok(baseURL string, client vendorhttp.Doer) *TikTok {
	return &TikTok{baseURL: baseURL, client: client}
}

func (t *TikTok) Platform() string {
	return domain.PlatformTikTok
}

func (t *TikTok) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := t.publish(ctx, account, content)
	return toResult(account, t.Platform(), postID, err)
}

func (t *TikTok) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	if !content.HasVideo() {
		return "", ErrTikTokVideoRequired
	}

	resp, err := t.client.Do(ctx, &vendorhttp.Request{
		Vendor:      t.Platform(),
		Method:      http.MethodPost,
		URL:         t.baseURL + "/share/video/upload/",
		BearerToken: account.AccessToken,
		JSON: map[string]any{
			"video_url": *content.VideoURL,
			"caption":   content.Text,
			"hashtags":  hashtagList(content.Hashtags),
		},
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(t.Platform(), "TikTok API error"); err != nil {
		return "", err
	}

	var result struct {
		ShareID string `json:"share_id"`
		Data    struct {
			ShareID   string `json:"share_id"`
			PublishID string `json:"publish_id"`
		} `json:"data"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", err
	}

	switch {
	case result.ShareID != "":
		return result.ShareID, nil
	case result.Data.ShareID != "":
		return result.Data.ShareID, nil
	default:
		return result.Data.PublishID, nil
	}
}
