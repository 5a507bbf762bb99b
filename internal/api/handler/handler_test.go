package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-media-os-api/internal/api/handler/router"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	advertisingmocks "github.com/vfg2006/social-media-os-api/internal/usecases/advertising/mocks"
	attributingmocks "github.com/vfg2006/social-media-os-api/internal/usecases/attributing/mocks"
	publishingmocks "github.com/vfg2006/social-media-os-api/internal/usecases/publishing/mocks"
	"github.com/vfg2006/social-media-os-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func serve(t *testing.T, routes []router.Route, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestPublishPost(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(publisher *publishingmocks.MockPublisher)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Resultado misto responde 200",
			body: `{"accounts":[
				{"id":"1","platform":"facebook","accountId":"fb-1","accessToken":"tok-fb","isActive":true},
				{"id":"2","platform":"tiktok","accountId":"tt-1","accessToken":"tok-tt","isActive":true}
			],"content":{"text":"Olá"}}`,
			setup: func(publisher *publishingmocks.MockPublisher) {
				publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, accounts []domain.SocialMediaAccount, content domain.PostContent) []domain.PostResult {
						assert.Len(t, accounts, 2)
						assert.Equal(t, "tok-fb", accounts[0].AccessToken)
						assert.Equal(t, "Olá", content.Text)
						return []domain.PostResult{
							domain.Succeeded("facebook", "123_456"),
							domain.Failed("tiktok", "TikTok requires video content"),
						}
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				results := decode[[]domain.PostResult](t, rec)
				require.Len(t, results, 2)
				assert.True(t, results[0].Success)
				assert.Equal(t, "123_456", results[0].PostID)
				assert.Equal(t, "TikTok requires video content", results[1].Error)
				assert.NotContains(t, rec.Body.String(), "tok-fb")
			},
		},
		{
			name: "JSON inválido",
			body: `{"accounts":`,
			setup: func(publisher *publishingmocks.MockPublisher) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name: "Conta sem plataforma é rejeitada",
			body: `{"accounts":[{"id":"1","accountId":"x"}],"content":{"text":"Olá"}}`,
			setup: func(publisher *publishingmocks.MockPublisher) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decode[apiErrors.APIError](t, rec)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
				assert.Contains(t, rec.Body.String(), "Platform")
			},
		},
		{
			name: "Lista vazia de contas devolve lista vazia",
			body: `{"accounts":[],"content":{"text":"Olá"}}`,
			setup: func(publisher *publishingmocks.MockPublisher) {
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.PostResult{})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			publisher := publishingmocks.NewMockPublisher(ctrl)
			tt.setup(publisher)

			tt.validate(t, serve(t, Posts(publisher), http.MethodPost, "/v1/posts/publish", tt.body))
		})
	}
}

func TestSocialAccountMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"account":{"id":"1","platform":"threads","accountId":"th-1"}}`

	t.Run("Sem leitor responde null", func(t *testing.T) {
		publisher := publishingmocks.NewMockPublisher(ctrl)
		publisher.EXPECT().GetAccountMetrics(gomock.Any(), gomock.Any()).Return(nil)

		rec := serve(t, Posts(publisher), http.MethodPost, "/v1/social/metrics", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `null`, rec.Body.String())
	})

	t.Run("Resposta da plataforma passa sem alteração", func(t *testing.T) {
		publisher := publishingmocks.NewMockPublisher(ctrl)
		publisher.EXPECT().GetAccountMetrics(gomock.Any(), gomock.Any()).Return(map[string]any{"followers_count": float64(42)})

		rec := serve(t, Posts(publisher), http.MethodPost, "/v1/social/metrics", body)

		assert.JSONEq(t, `{"followers_count":42}`, rec.Body.String())
	})
}

func TestAdsHandlers(t *testing.T) {
	account := `{"id":"a1","platform":"meta","accountId":"111","accessToken":"tok"}`

	tests := []struct {
		name     string
		path     string
		body     string
		setup    func(advertiser *advertisingmocks.MockAdvertiser)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Métricas da conta com período informado",
			path: "/v1/ads/metrics",
			body: `{"account":` + account + `,"date_range":"LAST_7_DAYS"}`,
			setup: func(advertiser *advertisingmocks.MockAdvertiser) {
				advertiser.EXPECT().
					GetAccountMetrics(gomock.Any(), gomock.Any(), "LAST_7_DAYS").
					Return(&domain.AdMetrics{Spend: 12.5, Clicks: 3, DateRange: "LAST_7_DAYS"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				metrics := decode[domain.AdMetrics](t, rec)
				assert.Equal(t, 12.5, metrics.Spend)
			},
		},
		{
			name: "Falha da plataforma responde null",
			path: "/v1/ads/metrics",
			body: `{"account":` + account + `}`,
			setup: func(advertiser *advertisingmocks.MockAdvertiser) {
				advertiser.EXPECT().GetAccountMetrics(gomock.Any(), gomock.Any(), "").Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `null`, rec.Body.String())
			},
		},
		{
			name:  "Conta sem token é rejeitada",
			path:  "/v1/ads/metrics",
			body:  `{"account":{"id":"a1","platform":"meta","accountId":"111"}}`,
			setup: func(advertiser *advertisingmocks.MockAdvertiser) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name: "Campanhas nil viram lista vazia",
			path: "/v1/ads/campaigns",
			body: `{"account":` + account + `}`,
			setup: func(advertiser *advertisingmocks.MockAdvertiser) {
				advertiser.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name: "Consolidado de várias contas",
			path: "/v1/ads/consolidated",
			body: `{"accounts":[` + account + `],"date_range":"YESTERDAY"}`,
			setup: func(advertiser *advertisingmocks.MockAdvertiser) {
				advertiser.EXPECT().
					GetConsolidatedMetrics(gomock.Any(), gomock.Len(1), "YESTERDAY").
					Return(&domain.ConsolidatedMetrics{TotalSpend: 30, PlatformBreakdown: map[string]*domain.AdMetrics{}})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, 30.0, decode[domain.ConsolidatedMetrics](t, rec).TotalSpend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			advertiser := advertisingmocks.NewMockAdvertiser(ctrl)
			tt.setup(advertiser)

			tt.validate(t, serve(t, Ads(advertiser), http.MethodPost, tt.path, tt.body))
		})
	}
}

func TestAttributionHandlers(t *testing.T) {
	t.Run("Rastreia o clique", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attributor := attributingmocks.NewMockAttributor(ctrl)
		attributor.EXPECT().
			TrackSocialTraffic(gomock.Any(), "987", "instagram", "https://loja.com.br").
			Return(domain.TrackingResult{Success: true, TrackingID: "track_abc"})

		rec := serve(t, Attribution(attributor), http.MethodPost, "/v1/attribution/track",
			`{"post_id":"987","platform":"instagram","website_url":"https://loja.com.br"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"trackingId":"track_abc"}`, rec.Body.String())
	})

	t.Run("URL inválida é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attributor := attributingmocks.NewMockAttributor(ctrl)

		rec := serve(t, Attribution(attributor), http.MethodPost, "/v1/attribution/track",
			`{"post_id":"987","platform":"instagram","website_url":"não é url"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decode[apiErrors.APIError](t, rec).Code)
	})

	t.Run("Relatório usa o período da query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attributor := attributingmocks.NewMockAttributor(ctrl)
		attributor.EXPECT().
			GetSocialTrafficReport(gomock.Any(), "last_7_days").
			Return(&domain.SocialTrafficReport{DateRange: "last_7_days", TotalSessions: 10})

		rec := serve(t, Attribution(attributor), http.MethodGet, "/v1/attribution/report?date_range=last_7_days", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "last_7_days", decode[domain.SocialTrafficReport](t, rec).DateRange)
	})

	t.Run("Relatório indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attributor := attributingmocks.NewMockAttributor(ctrl)
		attributor.EXPECT().GetSocialTrafficReport(gomock.Any(), "").Return(nil)

		rec := serve(t, Attribution(attributor), http.MethodGet, "/v1/attribution/report", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

type fakeCronJob struct {
	started bool
	calls   int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.started}
}

func TestCronHandlers(t *testing.T) {
	tests := []struct {
		name         string
		services     func() (CronJobServices, *fakeCronJob)
		method       string
		path         string
		expectedCode int
		expectedBody string
		expectCalls  int
	}{
		{
			name: "Disparo manual aceito",
			services: func() (CronJobServices, *fakeCronJob) {
				job := &fakeCronJob{started: true}
				return CronJobServices{CronJobTypeAdMetrics: job}, job
			},
			method:       http.MethodPost,
			path:         "/v1/cron/ad-metrics/run",
			expectedCode: http.StatusAccepted,
			expectCalls:  1,
		},
		{
			name: "Sincronização em andamento",
			services: func() (CronJobServices, *fakeCronJob) {
				job := &fakeCronJob{started: false}
				return CronJobServices{CronJobTypeAdMetrics: job}, job
			},
			method:       http.MethodPost,
			path:         "/v1/cron/ad-metrics/run",
			expectedCode: http.StatusConflict,
			expectCalls:  1,
		},
		{
			name: "Tipo desconhecido",
			services: func() (CronJobServices, *fakeCronJob) {
				job := &fakeCronJob{started: true}
				return CronJobServices{CronJobTypeAdMetrics: job}, job
			},
			method:       http.MethodPost,
			path:         "/v1/cron/monthly-report/run",
			expectedCode: http.StatusBadRequest,
			expectedBody: "ad-metrics, all",
		},
		{
			name: "Agendador não configurado",
			services: func() (CronJobServices, *fakeCronJob) {
				return CronJobServices{CronJobTypeAdMetrics: nil}, &fakeCronJob{}
			},
			method:       http.MethodPost,
			path:         "/v1/cron/ad-metrics/run",
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "Todas as cron jobs",
			services: func() (CronJobServices, *fakeCronJob) {
				job := &fakeCronJob{started: true}
				return CronJobServices{CronJobTypeAdMetrics: job, "outra": nil}, job
			},
			method:       http.MethodPost,
			path:         "/v1/cron/all/run",
			expectedCode: http.StatusAccepted,
			expectedBody: `"ad-metrics":true`,
			expectCalls:  1,
		},
		{
			name: "Status das cron jobs",
			services: func() (CronJobServices, *fakeCronJob) {
				job := &fakeCronJob{started: true}
				return CronJobServices{CronJobTypeAdMetrics: job, "outra": nil}, job
			},
			method:       http.MethodGet,
			path:         "/v1/cron/status",
			expectedCode: http.StatusOK,
			expectedBody: `"outra":null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, job := tt.services()

			rec := serve(t, CronJobs(services), tt.method, tt.path, "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			assert.Equal(t, tt.expectCalls, job.calls)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}
