package attributing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/pkg/metrics"
	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

const (
	eventName      = "social_media_click"
	mediumSocial   = "social"
	trackingPrefix = "track_"
	trackingIDSize = 16
)

// EventRecorder persiste ou encaminha um evento de atribuição
type EventRecorder interface {
	Record(ctx context.Context, event *domain.AttributionEvent) error
}

// RecorderFunc permite usar funções como EventRecorder
type RecorderFunc func(ctx context.Context, event *domain.AttributionEvent) error

func (f RecorderFunc) Record(ctx context.Context, event *domain.AttributionEvent) error {
	return f(ctx, event)
}

var ErrPostIDRequired = errors.New("post id é obrigatório")

type Attributor interface {
	TrackSocialTraffic(ctx context.Context, postID, platform, websiteURL string) domain.TrackingResult
	GetSocialTrafficReport(ctx context.Context, dateRange string) *domain.SocialTrafficReport
}

type Service struct {
	recorders []EventRecorder
	now       func() time.Time
	newID     func() (string, error)
	metrics   *metrics.Metrics
}

func NewService(recorders ...EventRecorder) *Service {
	return &Service{
		recorders: recorders,
		now:       time.Now,
		newID:     func() (string, error) { return utils.GenerateID(trackingIDSize) },
		metrics:   metrics.Get(),
	}
}

// TrackSocialTraffic registra um clique vindo de um post publicado.
// Qualquer falha vira {success:false, error}; nunca retorna erro ao chamador.
func (s *Service) TrackSocialTraffic(ctx context.Context, postID, platform, websiteURL string) domain.TrackingResult {
	source := strings.ToLower(strings.TrimSpace(platform))

	event, err := s.buildEvent(postID, source, websiteURL)
	if err == nil {
		err = s.record(ctx, event)
	}

	s.metrics.AttributionTotal.WithLabelValues(source, metrics.Outcome(err == nil)).Inc()

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id":  postID,
			"platform": source,
			"error":    err.Error(),
		}).Error("Erro ao registrar atribuição de tráfego social")
		return domain.TrackingResult{Success: false, Error: err.Error()}
	}

	logrus.WithFields(logrus.Fields{
		"tracking_id": event.TrackingID,
		"event_name":  event.EventName,
		"source":      event.Source,
		"medium":      event.Medium,
		"campaign":    event.Campaign,
		"content":     event.Content,
		"website_url": event.WebsiteURL,
	}).Info("Atribuição de tráfego social registrada")

	return domain.TrackingResult{Success: true, TrackingID: event.TrackingID}
}

func (s *Service) buildEvent(postID, source, websiteURL string) (*domain.AttributionEvent, error) {
	if postID == "" {
		return nil, ErrPostIDRequired
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar tracking id: %w", err)
	}

	return &domain.AttributionEvent{
		TrackingID: trackingPrefix + id,
		EventName:  eventName,
		PostID:     postID,
		Source:     source,
		Medium:     mediumSocial,
		Campaign:   "post_" + postID,
		Content:    postID,
		WebsiteURL: websiteURL,
		OccurredAt: s.now().UTC(),
	}, nil
}

func (s *Service) record(ctx context.Context, event *domain.AttributionEvent) error {
	for _, recorder := range s.recorders {
		if err := recorder.Record(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// GetSocialTrafficReport devolve o resumo de tráfego social no formato da integração com a analytics.
// Enquanto não há backend de analytics os valores são fixos.
func (s *Service) GetSocialTrafficReport(ctx context.Context, dateRange string) *domain.SocialTrafficReport {
	if ctx.Err() != nil {
		return nil
	}

	if dateRange == "" {
		dateRange = domain.DefaultTrafficDateRange
	}

	return &domain.SocialTrafficReport{
		DateRange:            dateRange,
		TotalSessions:        12543,
		SocialSessions:       3421,
		SocialConversionRate: 2.4,
		TopSocialSources: []domain.SocialSource{
			{Source: domain.PlatformInstagram, Sessions: 1456, Conversions: 23},
			{Source: domain.PlatformLinkedIn, Sessions: 987, Conversions: 31},
			{Source: domain.PlatformTikTok, Sessions: 634, Conversions: 12},
			{Source: domain.PlatformFacebook, Sessions: 344, Conversions: 8},
		},
		PeriodComparison: domain.PeriodComparison{
			SessionsChange:       "+12.3%",
			ConversionRateChange: "+0.8%",
		},
	}
}
