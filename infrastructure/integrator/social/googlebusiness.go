package social

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// GoogleBusiness publica localPosts no perfil da empresa.
// O accountId pode vir como "conta/local" ou como um único id usado para ambos.
type GoogleBusiness struct {
	baseURL string
	client  vendorhttp.Doer
}

func NewGoogleBusiness(baseURL string, client vendorhttp.Doer) *GoogleBusiness {
	return &GoogleBusiness{baseURL: baseURL, client: client}
}

func (g *GoogleBusiness) Platform() string {
	return domain.PlatformGoogleBusiness
}

func (g *GoogleBusiness) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := g.publish(ctx, account, content)
	return toResult(account, g.Platform(), postID, err)
}

func locationPath(accountID string) string {
	trimmed := strings.TrimPrefix(accountID, "accounts/")
	if account, location, found := strings.Cut(trimmed, "/"); found {
		location = strings.TrimPrefix(location, "locations/")
		return fmt.Sprintf("accounts/%s/locations/%s", account, location)
	}
	return fmt.Sprintf("accounts/%s/locations/%s", trimmed, trimmed)
}

func (g *GoogleBusiness) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	payload := map[string]any{
		"summary":      content.Text,
		"languageCode": "pt-BR",
		"topicType":    "STANDARD",
	}
	if len(content.ImageURLs) > 0 {
		media := make([]map[string]string, 0, len(content.ImageURLs))
		for _, imageURL := range content.ImageURLs {
			media = append(media, map[string]string{"mediaFormat": "PHOTO", "sourceUrl": imageURL})
		}
		payload["media"] = media
	}

	resp, err := g.client.Do(ctx, &vendorhttp.Request{
		Vendor:      g.Platform(),
		Method:      http.MethodPost,
		URL:         fmt.Sprintf("%s/%s/localPosts", g.baseURL, locationPath(account.AccountID)),
		BearerToken: account.AccessToken,
		JSON:        payload,
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(g.Platform(), "Google Business Profile API error"); err != nil {
		return "", err
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", err
	}

	return result.Name, nil
}
