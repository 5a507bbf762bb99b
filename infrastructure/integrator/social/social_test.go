package social

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type capturedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   map[string]any
}

// vendorServer sobe um servidor fake que responde sempre com status/corpo fixos e guarda a última requisição
func vendorServer(t *testing.T, status int, body string, headers map[string]string) (*httptest.Server, *int32, *capturedRequest) {
	t.Helper()

	var hits int32
	captured := &capturedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)

		raw, _ := io.ReadAll(r.Body)
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Query = r.URL.Query()
		captured.Header = r.Header.Clone()
		captured.Body = nil
		_ = json.Unmarshal(raw, &captured.Body)

		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, &hits, captured
}

func account(platform string) domain.SocialMediaAccount {
	return domain.SocialMediaAccount{
		ID:          "acc-1",
		Platform:    platform,
		AccountID:   "12345",
		AccountName: "Loja Centro",
		AccessToken: "token-abc",
		IsActive:    true,
	}
}

func strPtr(s string) *string { return &s }

func TestPreconditions_NoNetworkCall(t *testing.T) {
	server, hits, _ := vendorServer(t, http.StatusOK, `{}`, nil)
	client := vendorhttp.New(time.Second)

	tests := []struct {
		name      string
		publisher Publisher
		platform  string
		content   domain.PostContent
		wantError string
	}{
		{
			name:      "TikTok sem vídeo",
			publisher: NewTikTok(server.URL, client),
			platform:  "tiktok",
			content:   domain.PostContent{Text: "novo produto", ImageURLs: []string{"https://cdn/img.png"}},
			wantError: "Video content required for TikTok",
		},
		{
			name:      "YouTube sem vídeo",
			publisher: NewYouTube(server.URL, server.URL, client, http.DefaultClient),
			platform:  "youtube",
			content:   domain.PostContent{Text: "novo produto", VideoURL: strPtr("")},
			wantError: "Video content required for YouTube",
		},
		{
			name:      "Pinterest sem imagem",
			publisher: NewPinterest(server.URL, client),
			platform:  "pinterest",
			content:   domain.PostContent{Text: "novo produto"},
			wantError: "Image required for Pinterest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.publisher.PublishPost(context.Background(), account(tt.platform), tt.content)

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantError, result.Error)
			assert.Equal(t, tt.platform, result.Platform)
			assert.Empty(t, result.PostID)
		})
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestFacebookInstagram_PublishPost(t *testing.T) {
	t.Run("Facebook publica no feed com token no corpo", func(t *testing.T) {
		server, _, captured := vendorServer(t, http.StatusOK, `{"id":"12345_678"}`, nil)
		scheduled := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

		result := NewFacebookInstagram(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(),
			account("Facebook"),
			domain.PostContent{Text: "Promoção", ImageURLs: []string{"https://cdn/a.png", "https://cdn/b.png"}, ScheduledFor: &scheduled},
		)

		assert.True(t, result.Success)
		assert.Equal(t, "12345_678", result.PostID)
		assert.Equal(t, "Facebook", result.Platform)
		assert.Equal(t, "/12345/feed", captured.Path)
		assert.Equal(t, "token-abc", captured.Body["access_token"])
		assert.Equal(t, "https://cdn/a.png", captured.Body["url"])
		assert.Equal(t, float64(scheduled.Unix()), captured.Body["scheduled_publish_time"])
		assert.Equal(t, false, captured.Body["published"])
		assert.Empty(t, captured.Header.Get("Authorization"))
	})

	t.Run("Instagram publica em media", func(t *testing.T) {
		server, _, captured := vendorServer(t, http.StatusOK, `{"id":"ig_1"}`, nil)

		result := NewFacebookInstagram(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("instagram"), domain.PostContent{Text: "Oi"},
		)

		assert.True(t, result.Success)
		assert.Equal(t, "/12345/media", captured.Path)
	})

	t.Run("Envelope de erro da Graph API", func(t *testing.T) {
		server, _, _ := vendorServer(t, http.StatusBadRequest, `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`, nil)

		result := NewFacebookInstagram(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("facebook"), domain.PostContent{Text: "Oi"},
		)

		assert.False(t, result.Success)
		assert.Equal(t, "Invalid OAuth access token.", result.Error)
	})
}

func TestLinkedIn_PublishPost(t *testing.T) {
	t.Run("Id vem do header quando o corpo está vazio", func(t *testing.T) {
		server, _, captured := vendorServer(t, http.StatusCreated, ``, map[string]string{"X-RestLi-Id": "urn:li:share:999"})

		result := NewLinkedIn(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("linkedin"), domain.PostContent{Text: "Vagas abertas", ImageURLs: []string{"https://cdn/a.png"}},
		)

		require.True(t, result.Success, result.Error)
		assert.Equal(t, "urn:li:share:999", result.PostID)
		assert.Equal(t, "/ugcPosts", captured.Path)
		assert.Equal(t, "Bearer token-abc", captured.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", captured.Header.Get("X-Restli-Protocol-Version"))
		assert.Equal(t, "urn:li:organization:12345", captured.Body["author"])

		share := captured.Body["specificContent"].(map[string]any)["com.linkedin.ugc.ShareContent"].(map[string]any)
		assert.Equal(t, "IMAGE", share["shareMediaCategory"])
	})

	t.Run("Falha sem mensagem usa o padrão", func(t *testing.T) {
		server, _, _ := vendorServer(t, http.StatusInternalServerError, `{}`, nil)

		result := NewLinkedIn(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("linkedin"), domain.PostContent{Text: "Oi"},
		)

		assert.False(t, result.Success)
		assert.Equal(t, "LinkedIn API error", result.Error)
	})
}

func TestTwitter_PublishPost(t *testing.T) {
	t.Run("Sucesso retorna data.id", func(t *testing.T) {
		server, _, captured := vendorServer(t, http.StatusCreated, `{"data":{"id":"1789","text":"Oi"}}`, nil)

		result := NewTwitter(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("X"), domain.PostContent{Text: "Oi", ImageURLs: []string{"media-1"}},
		)

		assert.True(t, result.Success)
		assert.Equal(t, "1789", result.PostID)
		assert.Equal(t, "X", result.Platform)
		assert.Equal(t, []any{"media-1"}, captured.Body["media"].(map[string]any)["media_ids"])
	})

	t.Run("Erro usa errors[0].detail", func(t *testing.T) {
		server, _, _ := vendorServer(t, http.StatusForbidden, `{"errors":[{"detail":"You are not allowed to create a Tweet with duplicate content."}],"title":"Forbidden"}`, nil)

		result := NewTwitter(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("twitter"), domain.PostContent{Text: "Oi"},
		)

		assert.False(t, result.Success)
		assert.Equal(t, "You are not allowed to create a Tweet with duplicate content.", result.Error)
	})
}

func TestTikTok_PublishPost(t *testing.T) {
	server, _, captured := vendorServer(t, http.StatusOK, `{"share_id":"share_77","error":{"code":"ok","message":""}}`, nil)

	result := NewTikTok(server.URL, vendorhttp.New(time.Second)).PublishPost(
		context.Background(), account("tiktok"),
		domain.PostContent{Text: "Bastidores", VideoURL: strPtr("https://cdn/v.mp4"), Hashtags: []string{"#moda", "verão"}},
	)

	assert.True(t, result.Success)
	assert.Equal(t, "share_77", result.PostID)
	assert.Equal(t, "/share/video/upload/", captured.Path)
	assert.Equal(t, []any{"moda", "verão"}, captured.Body["hashtags"])
}

func TestPinterest_PublishPost(t *testing.T) {
	server, _, captured := vendorServer(t, http.StatusCreated, `{"id":"pin_1"}`, nil)

	result := NewPinterest(server.URL, vendorhttp.New(time.Second)).PublishPost(
		context.Background(), account("pinterest"), domain.PostContent{Text: "Decoração", ImageURLs: []string{"https://cdn/p.png"}},
	)

	assert.True(t, result.Success)
	assert.Equal(t, "pin_1", result.PostID)
	assert.Equal(t, "12345", captured.Body["board_id"])
	assert.Equal(t, "https://cdn/p.png", captured.Body["link"])
}

func TestYouTube_PublishPost_ResumableUpload(t *testing.T) {
	var uploadedBytes []byte
	var sessionMetadata map[string]any

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/video.mp4", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("binary-video"))
	})
	mux.HandleFunc("/upload/videos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "resumable", r.URL.Query().Get("uploadType"))
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &sessionMetadata)
		w.Header().Set("Location", "http://"+r.Host+"/session/abc")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/session/abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "video/mp4", r.Header.Get("Content-Type"))
		uploadedBytes, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":"yt_video_1"}`))
	})

	scheduled := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	youtube := NewYouTube(server.URL, server.URL+"/upload", vendorhttp.New(time.Second), server.Client())

	result := youtube.PublishPost(context.Background(), account("youtube"), domain.PostContent{
		Text:         "Tour pela loja",
		VideoURL:     strPtr(server.URL + "/video.mp4"),
		Hashtags:     []string{"#tour"},
		ScheduledFor: &scheduled,
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "yt_video_1", result.PostID)
	assert.Equal(t, "binary-video", string(uploadedBytes))

	status := sessionMetadata["status"].(map[string]any)
	assert.Equal(t, "private", status["privacyStatus"])
	assert.Equal(t, "2024-06-01T15:00:00Z", status["publishAt"])
	assert.Equal(t, "22", sessionMetadata["snippet"].(map[string]any)["categoryId"])
}

func TestBluesky_HashtagFacets(t *testing.T) {
	facets := hashtagFacets("Olá mundo #golang e #go", []string{"golang", "#go", "ausente"})

	require.Len(t, facets, 2)
	assert.Equal(t, 11, facets[0].Index.ByteStart)
	assert.Equal(t, 18, facets[0].Index.ByteEnd)
	assert.Equal(t, "golang", facets[0].Features[0]["tag"])
	assert.Equal(t, "app.bsky.richtext.facet#tag", facets[0].Features[0]["$type"])
	assert.Equal(t, "go", facets[1].Features[0]["tag"])
}

func TestBluesky_PublishPost(t *testing.T) {
	t.Run("Sucesso retorna a uri", func(t *testing.T) {
		server, _, captured := vendorServer(t, http.StatusOK, `{"uri":"at://did:plc:xyz/app.bsky.feed.post/3k","cid":"bafy"}`, nil)

		result := NewBluesky(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("bluesky"), domain.PostContent{Text: "Oi #go", Hashtags: []string{"go"}},
		)

		assert.True(t, result.Success)
		assert.Equal(t, "at://did:plc:xyz/app.bsky.feed.post/3k", result.PostID)
		assert.Equal(t, "/com.atproto.repo.createRecord", captured.Path)
		assert.Equal(t, "app.bsky.feed.post", captured.Body["collection"])
	})

	t.Run("Erro em string usa a mensagem", func(t *testing.T) {
		server, _, _ := vendorServer(t, http.StatusBadRequest, `{"error":"InvalidRequest","message":"Record is invalid"}`, nil)

		result := NewBluesky(server.URL, vendorhttp.New(time.Second)).PublishPost(
			context.Background(), account("bluesky"), domain.PostContent{Text: "Oi"},
		)

		assert.False(t, result.Success)
		assert.Equal(t, "Record is invalid", result.Error)
	})
}

func TestTwitch_PublishPost(t *testing.T) {
	server, _, captured := vendorServer(t, http.StatusNoContent, ``, nil)

	result := NewTwitch(server.URL, "client-xyz", vendorhttp.New(time.Second)).PublishPost(
		context.Background(), account("twitch"), domain.PostContent{Text: "Live às 20h"},
	)

	assert.True(t, result.Success)
	assert.Equal(t, "twitch_announcement", result.PostID)
	assert.Equal(t, "client-xyz", captured.Header.Get("Client-Id"))
	assert.Equal(t, []string{"12345"}, captured.Query["broadcaster_id"])
	assert.Equal(t, "primary", captured.Body["color"])
}

func TestGoogleBusiness_PublishPost(t *testing.T) {
	server, _, captured := vendorServer(t, http.StatusOK, `{"name":"accounts/1/locations/2/localPosts/3"}`, nil)

	acc := account("google_business_profile")
	acc.AccountID = "1/2"

	result := NewGoogleBusiness(server.URL, vendorhttp.New(time.Second)).PublishPost(
		context.Background(), acc, domain.PostContent{Text: "Aberto no feriado", ImageURLs: []string{"https://cdn/f.png"}},
	)

	assert.True(t, result.Success)
	assert.Equal(t, "accounts/1/locations/2/localPosts/3", result.PostID)
	assert.Equal(t, "/accounts/1/locations/2/localPosts", captured.Path)
	assert.Equal(t, "accounts/9/locations/9", locationPath("9"))
}

func TestThreadsSimulator(t *testing.T) {
	fixedNow := time.UnixMilli(1717000000000)

	t.Run("Sorteio acima da taxa de falha gera id simulado", func(t *testing.T) {
		sim := NewThreadsSimulator(0.1, 0, WithRandomSource(func() float64 { return 0.5 }), WithClock(func() time.Time { return fixedNow }))

		result := sim.PublishPost(context.Background(), account("threads"), domain.PostContent{Text: "Oi"})

		assert.True(t, result.Success)
		assert.Equal(t, "threads_sim_1717000000000", result.PostID)
	})

	t.Run("Sorteio dentro da taxa de falha", func(t *testing.T) {
		sim := NewThreadsSimulator(0.1, 0, WithRandomSource(func() float64 { return 0.05 }))

		result := sim.PublishPost(context.Background(), account("threads"), domain.PostContent{Text: "Oi"})

		assert.False(t, result.Success)
		assert.Equal(t, "Threads API temporarily unavailable", result.Error)
	})

	t.Run("Contexto cancelado interrompe o atraso", func(t *testing.T) {
		sim := NewThreadsSimulator(0, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := sim.PublishPost(ctx, account("threads"), domain.PostContent{Text: "Oi"})

		assert.False(t, result.Success)
		assert.Equal(t, context.Canceled.Error(), result.Error)
	})
}

func TestRegistry_Aliases(t *testing.T) {
	client := vendorhttp.New(time.Second)
	fb := NewFacebookInstagram("http://graph", client)
	tw := NewTwitter("http://twitter", client)

	registry := NewRegistry().Register(fb, "instagram").Register(tw, "x")

	for _, name := range []string{"facebook", "Instagram", " FACEBOOK "} {
		p, ok := registry.Lookup(name)
		require.True(t, ok, name)
		assert.Same(t, fb, p)
	}

	p, ok := registry.Lookup("X")
	require.True(t, ok)
	assert.Same(t, tw, p)

	assert.False(t, registry.Supports("myspace"))
}

func TestGetAccountMetrics(t *testing.T) {
	t.Run("Retorna a resposta crua da plataforma", func(t *testing.T) {
		server, _, captured := vendorServer(t, http.StatusOK, `{"data":[{"name":"impressions","values":[{"value":10}]}]}`, nil)

		raw := NewFacebookInstagram(server.URL, vendorhttp.New(time.Second)).GetAccountMetrics(context.Background(), account("facebook"))

		require.NotNil(t, raw)
		assert.Contains(t, raw, "data")
		assert.Equal(t, "/12345/insights", captured.Path)
		assert.Equal(t, []string{"impressions,reach,engagement"}, captured.Query["metric"])
	})

	t.Run("Erro da plataforma retorna nil", func(t *testing.T) {
		server, _, _ := vendorServer(t, http.StatusUnauthorized, `{"message":"expired"}`, nil)

		raw := NewLinkedIn(server.URL, vendorhttp.New(time.Second)).GetAccountMetrics(context.Background(), account("linkedin"))

		assert.Nil(t, raw)
	})
}
