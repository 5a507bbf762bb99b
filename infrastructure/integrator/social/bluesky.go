package social

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

const (
	blueskyPostCollection = "app.bsky.feed.post"
	blueskyTagFeature     = "app.bsky.richtext.facet#tag"
)

type Bluesky struct {
	baseURL string
	client  vendorhttp.Doer
	now     func() time.Time
}

func NewBluesky(baseURL string, client vendorhttp.Doer) *Bluesky {
	return &Bluesky{baseURL: baseURL, client: client, now: time.Now}
}

func (b *Bluesky) Platform() string {
	return domain.PlatformBluesky
}

func (b *Bluesky) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := b.publish(ctx, account, content)
	return toResult(account, b.Platform(), postID, err)
}

type blueskyFacet struct {
	Index struct {
		ByteStart int `json:"byteStart"`
		ByteEnd   int `json:"byteEnd"`
	} `json:"index"`
	Features []map[string]string `json:"features"`
}

// hashtagFacets localiza cada hashtag no texto e devolve os offsets em bytes UTF-8
func hashtagFacets(text string, hashtags []string) []blueskyFacet {
	facets := make([]blueskyFacet, 0, len(hashtags))
	for _, tag := range hashtags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		needle := tag
		if !strings.HasPrefix(needle, "#") {
			needle = "#" + tag
		}

		start := strings.Index(text, needle)
		if start == -1 {
			needle = tag
			start = strings.Index(text, needle)
		}
		if start == -1 {
			continue
		}

		facet := blueskyFacet{
			Features: []map[string]string{{
				"$type": blueskyTagFeature,
				"tag":   strings.TrimPrefix(tag, "#"),
			}},
		}
		facet.Index.ByteStart = start
		facet.Index.ByteEnd = start + len(needle)
		facets = append(facets, facet)
	}
	return facets
}

func (b *Bluesky) publish(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) (string, error) {
	record := map[string]any{
		"$type":     blueskyPostCollection,
		"text":      content.Text,
		"createdAt": b.now().UTC().Format(time.RFC3339Nano),
	}
	if len(content.Hashtags) > 0 {
		record["facets"] = hashtagFacets(content.Text, content.Hashtags)
	}

	resp, err := b.client.Do(ctx, &vendorhttp.Request{
		Vendor:      b.Platform(),
		Method:      http.MethodPost,
		URL:         b.baseURL + "/com.atproto.repo.createRecord",
		BearerToken: account.AccessToken,
		JSON: map[string]any{
			"repo":       account.AccountID,
			"collection": blueskyPostCollection,
			"record":     record,
		},
	})
	if err != nil {
		return "", err
	}

	if err := resp.Check(b.Platform(), "Bluesky API error"); err != nil {
		return "", err
	}

	var result struct {
		URI string `json:"uri"`
	}
	if err := resp.Decode(&result); err != nil {
		return "", err
	}

	return result.URI, nil
}
