package social

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

type LinkedIn struct {
	baseURL string
	client  vendorhttp.Doer
}

func NewLinkedIn(baseURL string, client vendorhttp.Doer) *LinkedIn {
	return &LinkedIn{baseURL: baseURL, client: client}
}

func (l *LinkedIn) Platform() string {
	return domain.PlatformLinkedIn
}

func (l *LinkedIn) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := l.publish(ctx, account, content)
	return toResult(account, l.Platform(), postID, err)
}

func organizationURN(accountID string) string {
	return "urn:li:organization:" + accountID
}

func (l *LinkedIn) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	mediaCategory := "NONE"
	media := make([]map[string]any, 0, len(content.ImageURLs))
	for _, imageURL := range content.ImageURLs {
		media = append(media, map[string]any{
			"status":      "READY",
			"description": map[string]string{"text": ""},
			"media":       imageURL,
			"title":       map[string]string{"text": ""},
		})
	}
	if len(media) > 0 {
		mediaCategory = "IMAGE"
	}

	shareContent := map[string]any{
		"shareCommentary":    map[string]string{"text": content.Text},
		"shareMediaCategory": mediaCategory,
	}
	if len(media) > 0 {
		shareContent["media"] = media
	}

	payload := map[string]any{
		"author":         organizationURN(account.AccountID),
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]any{
			"com.linkedin.ugc.ShareContent": shareContent,
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	resp, err := l.client.Do(ctx, &vendorhttp.Request{
		Vendor:      l.Platform(),
		Method:      http.MethodPost,
		URL:         l.baseURL + "/ugcPosts",
		BearerToken: account.AccessToken,
		Header:      http.Header{"X-Restli-Protocol-Version": {"2.0.0"}},
		JSON:        payload,
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(l.Platform(), "LinkedIn API error"); err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", err
	}

	// Em algumas versões o id só vem no header
	if result.ID == "" {
		result.ID = resp.Header.Get("X-RestLi-Id")
	}

	return result.ID, nil
}

func (l *LinkedIn) GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any {
	return fetchRaw(ctx, l.client, account, &vendorhttp.Request{
		Vendor:      l.Platform(),
		Method:      http.MethodGet,
		URL:         l.baseURL + "/organizationalEntityShareStatistics",
		BearerToken: account.AccessToken,
		Query: url.Values{
			"q":                    {"organizationalEntity"},
			"organizationalEntity": {organizationURN(account.AccountID)},
		},
	})
}
