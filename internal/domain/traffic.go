package domain

import "time"

const DefaultTrafficDateRange = "last_30_days"

type TrackingResult struct {
	Success    bool   `json:"success"`
	TrackingID string `json:"trackingId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// AttributionEvent é o evento de clique social enviado para a analytics
type AttributionEvent struct {
	TrackingID string    `json:"tracking_id"`
	EventName  string    `json:"event_name"`
	PostID     string    `json:"post_id"`
	Source     string    `json:"source"`
	Medium     string    `json:"medium"`
	Campaign   string    `json:"campaign"`
	Content    string    `json:"content"`
	WebsiteURL string    `json:"website_url"`
	OccurredAt time.Time `json:"occurred_at"`
}

type SocialSource struct {
	Source      string `json:"source"`
	Sessions    int    `json:"sessions"`
	Conversions int    `json:"conversions"`
}

type PeriodComparison struct {
	SessionsChange       string `json:"sessionsChange"`
	ConversionRateChange string `json:"conversionRateChange"`
}

type SocialTrafficReport struct {
	DateRange            string           `json:"dateRange"`
	TotalSessions        int              `json:"totalSessions"`
	SocialSessions       int              `json:"socialSessions"`
	SocialConversionRate float64          `json:"socialConversionRate"`
	TopSocialSources     []SocialSource   `json:"topSocialSources"`
	PeriodComparison     PeriodComparison `json:"periodComparison"`
}
