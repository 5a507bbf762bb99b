package social

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

const twitchAnnouncementID = "twitch_announcement"

// Twitch publica anúncios no chat do canal. O Client-Id vem da configuração do processo.
type Twitch struct {
	baseURL  string
	clientID string
	client   vendorhttp.Doer
}

func NewTwitch(baseURL, clientID string, client vendorhttp.Doer) *Twitch {
	return &Twitch{baseURL: baseURL, clientID: clientID, client: client}
}

func (t *Twitch) Platform() string {
	return domain.PlatformTwitch
}

func (t *Twitch) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := t.publish(ctx, account, content)
	return toResult(account, t.Platform(), postID, err)
}

func (t *Twitch) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	resp, err := t.client.Do(ctx, &vendorhttp.Request{
		Vendor: t.Platform(),
		Method: http.MethodPost,
		URL:    t.baseURL + "/chat/announcements",
		Query: url.Values{
			"broadcaster_id": {account.AccountID},
			"moderator_id":   {account.AccountID},
		},
		BearerToken: account.AccessToken,
		Header:      http.Header{"Client-Id": {t.clientID}},
		JSON: map[string]string{
			"message": content.Text,
			"color":   "primary",
		},
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(t.Platform(), "Twitch API error"); err != nil {
		return "", err
	}

	return twitchAnnouncementID, nil
}

// GetAccountMetrics retorna as informações do canal
func (t *Twitch) GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any {
	return fetchRaw(ctx, t.client, account, &vendorhttp.Request{
		Vendor:      t.Platform(),
		Method:      http.MethodGet,
		URL:         t.baseURL + "/channels",
		Query:       url.Values{"broadcaster_id": {account.AccountID}},
		BearerToken: account.AccessToken,
		Header:      http.Header{"Client-Id": {t.clientID}},
	})
}
