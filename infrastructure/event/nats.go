package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	attributionEventType    = "social.traffic.tracked"
	attributionEventVersion = "1.0.0"
)

// Publisher envia eventos de atribuição para consumidores externos
type Publisher interface {
	PublishAttribution(ctx context.Context, event *domain.AttributionEvent) error
	Close() error
}

// Envelope é o formato comum de todas as mensagens publicadas
type Envelope struct {
	Type          string    `json:"type"`
	Version       string    `json:"version"`
	OccurredAt    time.Time `json:"occurredAt"`
	CorrelationID string    `json:"correlationId"`
	Payload       any       `json:"payload"`
}

type noop struct{}

func (noop) PublishAttribution(context.Context, *domain.AttributionEvent) error { return nil }

func (noop) Close() error { return nil }

type natsPublisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher conecta ao NATS quando NATS_URL está configurada.
// Sem URL, ou se a conexão falhar, devolve um publicador que descarta os eventos.
func NewPublisher(cfg *config.Config) Publisher {
	if cfg.NATS.URL == "" {
		return noop{}
	}

	nc, err := nats.Connect(cfg.NATS.URL, nats.Name("social-media-os-api"), nats.Timeout(5*time.Second))
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Falha ao conectar no NATS, eventos de atribuição não serão publicados")
		return noop{}
	}

	logrus.WithField("subject", cfg.NATS.Subject).Info("Conexão com o NATS estabelecida")

	return &natsPublisher{nc: nc, subject: cfg.NATS.Subject}
}

func (p *natsPublisher) PublishAttribution(ctx context.Context, event *domain.AttributionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bs, err := json.Marshal(Envelope{
		Type:          attributionEventType,
		Version:       attributionEventVersion,
		OccurredAt:    event.OccurredAt,
		CorrelationID: uuid.NewString(),
		Payload:       event,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar evento: %w", err)
	}

	if err := p.nc.Publish(p.subject, bs); err != nil {
		return fmt.Errorf("erro ao publicar evento no NATS: %w", err)
	}

	return nil
}

func (p *natsPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}
