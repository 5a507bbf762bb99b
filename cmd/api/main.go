package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/social-media-os-api/infrastructure/cache"
	"github.com/vfg2006/social-media-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-media-os-api/infrastructure/event"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/social"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/tiktokads"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/tiktokads/tiktokclient"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/infrastructure/repository"
	"github.com/vfg2006/social-media-os-api/internal/api"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/internal/scheduler"
	"github.com/vfg2006/social-media-os-api/internal/usecases/advertising"
	"github.com/vfg2006/social-media-os-api/internal/usecases/attributing"
	"github.com/vfg2006/social-media-os-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-media-os-api/internal/usecases/publishing"
	"github.com/vfg2006/social-media-os-api/pkg/log"
)

func main() {
	issueToken := pflag.String("issue-token", "", "emite um token de acesso para o usuário informado e encerra")
	role := pflag.String("role", domain.RoleOperator, "papel do token emitido com --issue-token (admin ou operator)")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logCloser := log.Setup(log.Options{Level: cfg.App.LogLevel, File: cfg.App.LogFile})
	defer logCloser.Close()

	authenticator := authenticating.NewService(cfg)

	if *issueToken != "" {
		token, err := authenticator.GenerateToken(*issueToken, *issueToken, *role)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao emitir token")
		}
		fmt.Fprintln(os.Stdout, token)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vendorClient := vendorhttp.New(cfg.Publishing.VendorHTTPTimeout)

	eventPublisher := event.NewPublisher(cfg)

	var pgConn *postgres.Connection
	if cfg.Database.Enabled() {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()
	} else {
		logrus.Warn("DATABASE_URL não configurada: eventos de atribuição ficam apenas em log e o agendador fica desligado")
	}

	recorders := []attributing.EventRecorder{
		attributing.RecorderFunc(eventPublisher.PublishAttribution),
	}
	if pgConn != nil {
		attributionRepo := repository.NewAttributionEventRepository(pgConn)
		recorders = append([]attributing.EventRecorder{attributing.RecorderFunc(attributionRepo.Save)}, recorders...)
	}
	attributor := attributing.NewService(recorders...)

	publisher := publishing.NewService(
		publishing.NewCoreAggregator(cfg, social.NewCoreRegistry(cfg, vendorClient)),
		publishing.NewExtendedAggregator(cfg, social.NewExtendedRegistry(cfg, vendorClient), attributor),
	)

	var adsOpts []advertising.Option
	redisCache := metricsCache(cfg)
	if redisCache != nil {
		adsOpts = append(adsOpts, advertising.WithCache(redisCache))
		defer redisCache.Close()
	}

	advertiser := advertising.NewService(cfg, []advertising.PlatformIntegrator{
		meta.New(metaclient.NewClient(cfg, vendorClient)),
		googleads.New(googleadsclient.NewClient(cfg, vendorClient)),
		tiktokads.New(tiktokclient.NewClient(cfg, vendorClient)),
	}, adsOpts...)

	var adMetricsSync *scheduler.AdMetricsSyncService
	if pgConn != nil {
		adMetricsSync = scheduler.NewAdMetricsSyncService(
			repository.NewAdAccountRepository(pgConn),
			repository.NewAdMetricsSnapshotRepository(pgConn),
			advertiser,
			cfg,
		)

		if err := adMetricsSync.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas de anúncios")
		}
	}

	server := api.New(cfg, api.Services{
		Publisher:     publisher,
		Advertiser:    advertiser,
		Attributor:    attributor,
		Authenticator: authenticator,
		AdMetricsSync: adMetricsSync,
	}, func(context.Context) {
		// Rastreamentos disparados por publicações ainda em andamento
		publisher.Wait()

		if err := eventPublisher.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o publicador de eventos")
		}
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// metricsCache conecta ao Redis quando configurado; falhas de conexão só desligam o cache
func metricsCache(cfg *config.Config) *cache.RedisCache {
	redisCache, err := cache.NewRedisCache(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Cache de métricas de anúncios desabilitado")
		return nil
	}

	return redisCache
}

// pgconn conecta ao PostgreSQL e aplica o schema
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema do PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
