package social

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var ErrYouTubeVideoRequired = errors.New("Video content required for YouTube")

const (
	youtubeTitleLimit    = 100
	youtubePeopleBlogsID = "22"
)

// VideoSource abre o vídeo de origem para envio em streaming
type VideoSource func(ctx context.Context, videoURL string) (body io.ReadCloser, contentType string, size int64, err error)

// YouTube publica via upload resumable: cria a sessão com os metadados e envia o vídeo para a URL retornada
type YouTube struct {
	baseURL   string
	uploadURL string
	client    vendorhttp.Doer
	source    VideoSource
}

func NewYouTube(baseURL, uploadURL string, client vendorhttp.Doer, httpClient *http.Client) *YouTube {
	return &YouTube{
		baseURL:   baseURL,
		uploadURL: uploadURL,
		client:    client,
		source:    httpVideoSource(httpClient),
	}
}

func (y *YouTube) Platform() string {
	return domain.PlatformYouTube
}

func (y *YouTube) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := y.publish(ctx, account, content)
	return toResult(account, y.Platform(), postID, err)
}

func (y *YouTube) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	if !content.HasVideo() {
		return "", ErrYouTubeVideoRequired
	}

	status := map[string]any{"privacyStatus": "public"}
	if content.ScheduledFor != nil {
		status["privacyStatus"] = "private"
		status["publishAt"] = content.ScheduledFor.UTC().Format(time.RFC3339)
	}

	metadata := map[string]any{
		"snippet": map[string]any{
			"title":       truncateRunes(content.Text, youtubeTitleLimit),
			"description": content.Text,
			"tags":        hashtagList(content.Hashtags),
			"categoryId":  youtubePeopleBlogsID,
		},
		"status": status,
	}

	session, err := y.client.Do(ctx, &vendorhttp.Request{
		Vendor:      y.Platform(),
		Method:      http.MethodPost,
		URL:         y.uploadURL + "/videos",
		Query:       url.Values{"uploadType": {"resumable"}, "part": {"snippet,status"}},
		BearerToken: account.AccessToken,
		Header:      http.Header{"X-Upload-Content-Type": {"video/*"}},
		JSON:        metadata,
	})
	if err != nil {
		return "", err
	}
	if err := session.Check(y.Platform(), "YouTube API error"); err != nil {
		return "", err
	}

	location := session.Header.Get("Location")
	if location == "" {
		return "", &vendorhttp.VendorError{Vendor: y.Platform(), StatusCode: session.StatusCode, Message: "YouTube API error"}
	}

	video, contentType, size, err := y.source(ctx, *content.VideoURL)
	if err != nil {
		return "", err
	}
	defer video.Close()

	if contentType == "" {
		contentType = "video/*"
	}

	uploaded, err := y.client.Do(ctx, &vendorhttp.Request{
		Vendor:        y.Platform(),
		Method:        http.MethodPut,
		URL:           location,
		BearerToken:   account.AccessToken,
		Body:          video,
		ContentType:   contentType,
		ContentLength: size,
	})
	if err != nil {
		return "", err
	}
	if err := uploaded.Check(y.Platform(), "YouTube API error"); err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := uploaded.Decode(&result); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (y *YouTube) GetAccountMetrics(ctx context.Context, account domain.SocialMediaAccount) map[string]any {
	return fetchRaw(ctx, y.client, account, &vendorhttp.Request{
		Vendor:      y.Platform(),
		Method:      http.MethodGet,
		URL:         y.baseURL + "/channels",
		BearerToken: account.AccessToken,
		Query:       url.Values{"part": {"statistics"}, "id": {account.AccountID}},
	})
}

func httpVideoSource(httpClient *http.Client) VideoSource {
	return func(ctx context.Context, videoURL string) (io.ReadCloser, string, int64, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
		if err != nil {
			return nil, "", 0, pkgerrors.Wrap(err, "erro ao criar requisição do vídeo")
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, "", 0, pkgerrors.Wrap(err, "erro ao baixar o vídeo")
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, "", 0, pkgerrors.Errorf("erro ao baixar o vídeo: status %d", resp.StatusCode)
		}

		return resp.Body, resp.Header.Get("Content-Type"), resp.ContentLength, nil
	}
}
