package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/internal/api/handler"
	"github.com/vfg2006/social-media-os-api/internal/api/handler/router"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/scheduler"
	"github.com/vfg2006/social-media-os-api/internal/usecases/advertising"
	"github.com/vfg2006/social-media-os-api/internal/usecases/attributing"
	"github.com/vfg2006/social-media-os-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-media-os-api/internal/usecases/publishing"
	"github.com/vfg2006/social-media-os-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne as dependências expostas pela camada HTTP.
// AdMetricsSync é nil quando não há banco configurado.
type Services struct {
	Publisher     publishing.Publisher
	Advertiser    advertising.Advertiser
	Attributor    attributing.Attributor
	Authenticator authenticating.Authenticator
	AdMetricsSync *scheduler.AdMetricsSyncService
}

type Server struct {
	httpServer *http.Server
	onShutdown []func(context.Context)
}

// NewHandler monta o roteador e a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{handler.CronJobTypeAdMetrics: nil}
	if services.AdMetricsSync != nil {
		cronServices[handler.CronJobTypeAdMetrics] = services.AdMetricsSync
	}

	var adminOnly []handler.Middleware
	if cfg.Auth.Enabled {
		adminOnly = append(adminOnly, middleware.AdminOnly())
	}

	rt := router.New(
		router.WithHandler(http.MethodGet, "/metrics", promhttp.Handler()),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Posts(services.Publisher)...),
		router.WithRoutes(handler.Ads(services.Advertiser)...),
		router.WithRoutes(handler.Attribution(services.Attributor)...),
		router.WithRoutes(handler.CronJobs(cronServices, adminOnly...)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}
	if cfg.Auth.Enabled {
		middlewares = append(middlewares, middleware.AuthMiddleware(services.Authenticator))
	} else {
		logrus.Warn("Autenticação desabilitada: rotas abertas sem token")
	}

	return alice.New(middlewares...).Then(rt)
}

// New cria o servidor. onShutdown roda depois que o HTTP para de aceitar requisições.
func New(cfg *config.Config, services Services, onShutdown ...func(context.Context)) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}
}

func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	for _, fn := range s.onShutdown {
		fn(ctx)
	}

	return nil
}
