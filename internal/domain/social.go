package domain

import (
	"strings"
	"time"
)

const (
	PlatformFacebook              = "facebook"
	PlatformInstagram             = "instagram"
	PlatformLinkedIn              = "linkedin"
	PlatformTikTok                = "tiktok"
	PlatformYouTube               = "youtube"
	PlatformTwitter               = "twitter"
	PlatformX                     = "x"
	PlatformPinterest             = "pinterest"
	PlatformGoogleBusiness        = "google_business"
	PlatformGoogleBusinessProfile = "google_business_profile"
	PlatformThreads               = "threads"
	PlatformBluesky               = "bluesky"
	PlatformTwitch                = "twitch"
)

// SocialMediaAccount é somente leitura para o núcleo; tokens nunca são serializados na saída
type SocialMediaAccount struct {
	ID           string     `json:"id" validate:"required"`
	Platform     string     `json:"platform" validate:"required"`
	AccountID    string     `json:"accountId" validate:"required"`
	AccountName  string     `json:"accountName"`
	AccessToken  string     `json:"accessToken,omitempty"`
	RefreshToken *string    `json:"refreshToken,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Permissions  []string   `json:"permissions"`
	IsActive     bool       `json:"isActive"`
}

// NormalizedPlatform retorna o nome da plataforma em minúsculas, usado no despacho
func (a SocialMediaAccount) NormalizedPlatform() string {
	return strings.ToLower(strings.TrimSpace(a.Platform))
}

type PostContent struct {
	Text         string     `json:"text" validate:"required"`
	ImageURLs    []string   `json:"imageUrls,omitempty" validate:"omitempty,dive,url"`
	VideoURL     *string    `json:"videoUrl,omitempty" validate:"omitempty,url"`
	Hashtags     []string   `json:"hashtags,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

func (c PostContent) FirstImage() (string, bool) {
	if len(c.ImageURLs) == 0 || c.ImageURLs[0] == "" {
		return "", false
	}
	return c.ImageURLs[0], true
}

func (c PostContent) HasVideo() bool {
	return c.VideoURL != nil && *c.VideoURL != ""
}

type PostResult struct {
	Success  bool   `json:"success"`
	PostID   string `json:"postId,omitempty"`
	Error    string `json:"error,omitempty"`
	Platform string `json:"platform"`
}

func Succeeded(platform, postID string) PostResult {
	return PostResult{Success: true, PostID: postID, Platform: platform}
}

func Failed(platform, message string) PostResult {
	return PostResult{Success: false, Error: message, Platform: platform}
}
