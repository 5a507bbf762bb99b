package social

import (
	"net/http"

	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

// NewCoreRegistry monta as plataformas com API pública estável
func NewCoreRegistry(cfg *config.Config, client vendorhttp.Doer) *Registry {
	videoClient := &http.Client{Timeout: cfg.Publishing.VendorHTTPTimeout}

	return NewRegistry().
		Register(NewFacebookInstagram(cfg.Vendors.GraphURL, client), domain.PlatformInstagram).
		Register(NewLinkedIn(cfg.Vendors.LinkedInURL, client)).
		Register(NewTikTok(cfg.Vendors.TikTokShareURL, client)).
		Register(NewYouTube(cfg.Vendors.YouTubeURL, cfg.Vendors.YouTubeUploadURL, client, videoClient)).
		Register(NewTwitter(cfg.Vendors.TwitterURL, client), domain.PlatformX).
		Register(NewPinterest(cfg.Vendors.PinterestURL, client))
}

// NewExtendedRegistry monta as plataformas adicionais, incluindo o simulador do Threads
func NewExtendedRegistry(cfg *config.Config, client vendorhttp.Doer) *Registry {
	return NewRegistry().
		Register(NewGoogleBusiness(cfg.Vendors.GoogleBusinessURL, client), domain.PlatformGoogleBusinessProfile).
		Register(NewThreadsSimulator(cfg.Simulator.ThreadsFailureRate, cfg.Simulator.ThreadsDelay)).
		Register(NewBluesky(cfg.Vendors.BlueskyURL, client)).
		Register(NewTwitch(cfg.Vendors.TwitchURL, cfg.Twitch.ClientID, client))
}
