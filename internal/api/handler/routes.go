package handler

import (
	"net/http"

	"github.com/vfg2006/social-media-os-api/internal/api/handler/router"
	"github.com/vfg2006/social-media-os-api/internal/usecases/advertising"
	"github.com/vfg2006/social-media-os-api/internal/usecases/attributing"
	"github.com/vfg2006/social-media-os-api/internal/usecases/publishing"
)

// Middleware é aplicado por rota, depois dos middlewares globais do servidor
type Middleware = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Posts(publisher publishing.Publisher, middlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/posts/publish",
			Method:      http.MethodPost,
			Handler:     PublishPost(publisher),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/social/metrics",
			Method:      http.MethodPost,
			Handler:     SocialAccountMetrics(publisher),
			Middlewares: middlewares,
		},
	}
}

func Ads(advertiser advertising.Advertiser, middlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads/metrics",
			Method:      http.MethodPost,
			Handler:     AdAccountMetrics(advertiser),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/ads/campaigns",
			Method:      http.MethodPost,
			Handler:     AdCampaigns(advertiser),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/ads/consolidated",
			Method:      http.MethodPost,
			Handler:     AdConsolidatedMetrics(advertiser),
			Middlewares: middlewares,
		},
	}
}

func Attribution(attributor attributing.Attributor, middlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/attribution/track",
			Method:      http.MethodPost,
			Handler:     TrackSocialTraffic(attributor),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/attribution/report",
			Method:      http.MethodGet,
			Handler:     SocialTrafficReport(attributor),
			Middlewares: middlewares,
		},
	}
}

func CronJobs(services CronJobServices, middlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares,
		},
	}
}
