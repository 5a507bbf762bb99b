package publishing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/social"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/social/mocks"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type trackedCall struct {
	PostID     string
	Platform   string
	WebsiteURL string
}

type fakeTracker struct {
	mu     sync.Mutex
	calls  []trackedCall
	result domain.TrackingResult
}

func (f *fakeTracker) TrackSocialTraffic(ctx context.Context, postID, platform, websiteURL string) domain.TrackingResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, trackedCall{PostID: postID, Platform: platform, WebsiteURL: websiteURL})
	return f.result
}

func (f *fakeTracker) Calls() []trackedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]trackedCall(nil), f.calls...)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Publishing.CallTimeout = time.Second
	cfg.Publishing.MaxConcurrent = 4
	cfg.Publishing.TrackingWebsite = "https://loja.example.com"
	cfg.Publishing.TrackingTimeout = time.Second
	return cfg
}

func mockPublisher(ctrl *gomock.Controller, platform string) *mocks.MockPublisher {
	p := mocks.NewMockPublisher(ctrl)
	p.EXPECT().Platform().Return(platform).AnyTimes()
	return p
}

func socialAccount(id, platform string, active bool) domain.SocialMediaAccount {
	return domain.SocialMediaAccount{
		ID:          id,
		Platform:    platform,
		AccountID:   "ext-" + id,
		AccessToken: "token-" + id,
		IsActive:    active,
	}
}

func TestAggregator_PublishToAllPlatforms(t *testing.T) {
	content := domain.PostContent{Text: "Promoção de inverno"}

	tests := []struct {
		name     string
		accounts []domain.SocialMediaAccount
		setup    func(ctrl *gomock.Controller) *social.Registry
		cfg      func(cfg *config.Config)
		validate func(t *testing.T, results []domain.PostResult)
	}{
		{
			name: "Mantém a ordem de entrada e descarta contas inativas",
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "facebook", true),
				socialAccount("B", "linkedin", false),
				socialAccount("C", "linkedin", true),
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				facebook := mockPublisher(ctrl, "facebook")
				linkedin := mockPublisher(ctrl, "linkedin")

				// A termina depois de C para garantir que a ordem não depende da conclusão
				facebook.EXPECT().
					PublishPost(gomock.Any(), gomock.Any(), content).
					DoAndReturn(func(ctx context.Context, account domain.SocialMediaAccount, _ domain.PostContent) domain.PostResult {
						time.Sleep(30 * time.Millisecond)
						return domain.Succeeded(account.Platform, "fb_1")
					})
				linkedin.EXPECT().
					PublishPost(gomock.Any(), socialAccount("C", "linkedin", true), content).
					Return(domain.Succeeded("linkedin", "li_1"))

				return social.NewRegistry().Register(facebook).Register(linkedin)
			},
			validate: func(t *testing.T, results []domain.PostResult) {
				require.Len(t, results, 2)
				assert.Equal(t, "fb_1", results[0].PostID)
				assert.Equal(t, "li_1", results[1].PostID)
			},
		},
		{
			name: "Plataforma desconhecida vira resultado de falha",
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "MySpace", true),
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				return social.NewRegistry()
			},
			validate: func(t *testing.T, results []domain.PostResult) {
				require.Len(t, results, 1)
				assert.False(t, results[0].Success)
				assert.Equal(t, "Unsupported platform", results[0].Error)
				assert.Equal(t, "MySpace", results[0].Platform)
			},
		},
		{
			name: "Chamada lenta é interrompida pelo timeout sem travar o lote",
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "youtube", true),
				socialAccount("B", "twitter", true),
			},
			cfg: func(cfg *config.Config) {
				cfg.Publishing.CallTimeout = 20 * time.Millisecond
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				youtube := mockPublisher(ctrl, "youtube")
				twitter := mockPublisher(ctrl, "twitter")

				youtube.EXPECT().
					PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, account domain.SocialMediaAccount, _ domain.PostContent) domain.PostResult {
						<-ctx.Done()
						return domain.Failed(account.Platform, ctx.Err().Error())
					})
				twitter.EXPECT().
					PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Succeeded("twitter", "tw_1"))

				return social.NewRegistry().Register(youtube).Register(twitter)
			},
			validate: func(t *testing.T, results []domain.PostResult) {
				require.Len(t, results, 2)
				assert.False(t, results[0].Success)
				assert.Equal(t, context.DeadlineExceeded.Error(), results[0].Error)
				assert.True(t, results[1].Success)
			},
		},
		{
			name: "Panic no adapter não derruba o lote",
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "pinterest", true),
				socialAccount("B", "tiktok", true),
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				pinterest := mockPublisher(ctrl, "pinterest")
				tiktok := mockPublisher(ctrl, "tiktok")

				pinterest.EXPECT().
					PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, domain.SocialMediaAccount, domain.PostContent) domain.PostResult {
						panic("nil map")
					})
				tiktok.EXPECT().
					PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Failed("tiktok", "Video content required for TikTok"))

				return social.NewRegistry().Register(pinterest).Register(tiktok)
			},
			validate: func(t *testing.T, results []domain.PostResult) {
				require.Len(t, results, 2)
				assert.Equal(t, "internal error", results[0].Error)
				assert.Equal(t, "Video content required for TikTok", results[1].Error)
			},
		},
		{
			name:     "Lista vazia retorna lista vazia",
			accounts: nil,
			setup: func(ctrl *gomock.Controller) *social.Registry {
				return social.NewRegistry()
			},
			validate: func(t *testing.T, results []domain.PostResult) {
				assert.NotNil(t, results)
				assert.Empty(t, results)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := testConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}

			aggregator := NewCoreAggregator(cfg, tt.setup(ctrl))
			results := aggregator.PublishToAllPlatforms(t.Context(), tt.accounts, content)

			tt.validate(t, results)
		})
	}
}

func TestExtendedAggregator_Tracking(t *testing.T) {
	content := domain.PostContent{Text: "Live hoje"}

	tests := []struct {
		name     string
		tracker  *fakeTracker
		setup    func(ctrl *gomock.Controller) *social.Registry
		accounts []domain.SocialMediaAccount
		validate func(t *testing.T, results []domain.PostResult, tracker *fakeTracker)
	}{
		{
			name:    "Registra atribuição apenas para sucesso com postId",
			tracker: &fakeTracker{result: domain.TrackingResult{Success: true, TrackingID: "track_1"}},
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "Bluesky", true),
				socialAccount("B", "threads", true),
				socialAccount("C", "twitch", true),
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				bluesky := mockPublisher(ctrl, "bluesky")
				threads := mockPublisher(ctrl, "threads")
				twitch := mockPublisher(ctrl, "twitch")

				bluesky.EXPECT().PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Succeeded("Bluesky", "at://post/1"))
				threads.EXPECT().PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Failed("threads", "Threads API temporarily unavailable"))
				twitch.EXPECT().PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.PostResult{Success: true, Platform: "twitch"})

				return social.NewRegistry().Register(bluesky).Register(threads).Register(twitch)
			},
			validate: func(t *testing.T, results []domain.PostResult, tracker *fakeTracker) {
				require.Len(t, results, 3)

				calls := tracker.Calls()
				require.Len(t, calls, 1)
				assert.Equal(t, trackedCall{PostID: "at://post/1", Platform: "Bluesky", WebsiteURL: "https://loja.example.com"}, calls[0])
			},
		},
		{
			name:    "Falha no rastreamento não altera o resultado",
			tracker: &fakeTracker{result: domain.TrackingResult{Success: false, Error: "nats: connection closed"}},
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "google_business_profile", true),
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				google := mockPublisher(ctrl, "google_business")
				google.EXPECT().PublishPost(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.Succeeded("google_business_profile", "accounts/1/locations/1/localPosts/9"))

				return social.NewRegistry().Register(google, "google_business_profile")
			},
			validate: func(t *testing.T, results []domain.PostResult, tracker *fakeTracker) {
				require.Len(t, results, 1)
				assert.True(t, results[0].Success)
				assert.Empty(t, results[0].Error)
				assert.Len(t, tracker.Calls(), 1)
			},
		},
		{
			name:    "Plataforma fora do serviço adicional",
			tracker: &fakeTracker{},
			accounts: []domain.SocialMediaAccount{
				socialAccount("A", "facebook", true),
			},
			setup: func(ctrl *gomock.Controller) *social.Registry {
				return social.NewRegistry()
			},
			validate: func(t *testing.T, results []domain.PostResult, tracker *fakeTracker) {
				require.Len(t, results, 1)
				assert.Equal(t, "Platform not supported by additional platforms service", results[0].Error)
				assert.Empty(t, tracker.Calls())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			aggregator := NewExtendedAggregator(testConfig(), tt.setup(ctrl), tt.tracker)
			results := aggregator.PublishToAllPlatforms(t.Context(), tt.accounts, content)
			aggregator.Wait()

			tt.validate(t, results, tt.tracker)
		})
	}
}

type readerPublisher struct {
	*mocks.MockPublisher
	*mocks.MockMetricsReader
}

func TestAggregator_GetAccountMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withReader := readerPublisher{
		MockPublisher:     mockPublisher(ctrl, "youtube"),
		MockMetricsReader: mocks.NewMockMetricsReader(ctrl),
	}
	withoutReader := mockPublisher(ctrl, "pinterest")

	account := socialAccount("A", "youtube", true)
	withReader.MockMetricsReader.EXPECT().
		GetAccountMetrics(gomock.Any(), account).
		Return(map[string]any{"items": []any{}})

	aggregator := NewCoreAggregator(testConfig(), social.NewRegistry().Register(withReader).Register(withoutReader))

	assert.Equal(t, map[string]any{"items": []any{}}, aggregator.GetAccountMetrics(t.Context(), account))
	assert.Nil(t, aggregator.GetAccountMetrics(t.Context(), socialAccount("B", "pinterest", true)))
	assert.Nil(t, aggregator.GetAccountMetrics(t.Context(), socialAccount("C", "orkut", true)))
}
