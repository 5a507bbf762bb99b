package social

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vfg2006/social-media-os-api/internal/domain"
)

var ErrThreadsUnavailable = errors.New("Threads API temporarily unavailable")

// ThreadsSimulator substitui a integração com o Threads enquanto não há API pública estável.
// Sorteia sucesso ou falha com a taxa configurada após um atraso artificial.
type ThreadsSimulator struct {
	failureRate float64
	delay       time.Duration
	random      func() float64
	now         func() time.Time
}

type SimulatorOption func(*ThreadsSimulator)

// WithRandomSource permite fixar o sorteio nos testes
func WithRandomSource(random func() float64) SimulatorOption {
	return func(s *ThreadsSimulator) { s.random = random }
}

func WithClock(now func() time.Time) SimulatorOption {
	return func(s *ThreadsSimulator) { s.now = now }
}

func NewThreadsSimulator(failureRate float64, delay time.Duration, opts ...SimulatorOption) *ThreadsSimulator {
	s := &ThreadsSimulator{
		failureRate: failureRate,
		delay:       delay,
		random:      rand.Float64,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ThreadsSimulator) Platform() string {
	return domain.PlatformThreads
}

func (s *ThreadsSimulator) PublishPost(ctx context.Context, account domain.SocialMediaAccount, content domain.PostContent) domain.PostResult {
	postID, err := s.publish(ctx)
	return toResult(account, s.Platform(), postID, err)
}

func (s *ThreadsSimulator) publish(ctx context.Context) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if s.random() <= s.failureRate {
		return "", ErrThreadsUnavailable
	}

	return fmt.Sprintf("threads_sim_%d", s.now().UnixMilli()), nil
}
