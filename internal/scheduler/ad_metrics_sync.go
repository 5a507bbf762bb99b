package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/social-media-os-api/infrastructure/repository"
	"github.com/vfg2006/social-media-os-api/internal/config"
	"github.com/vfg2006/social-media-os-api/internal/domain"
	"github.com/vfg2006/social-media-os-api/internal/usecases/advertising"
)

var ErrSyncRunning = errors.New("sincronização de métricas já em andamento")

// AdMetricsSyncConfig representa a configuração do agendador de métricas de anúncios
type AdMetricsSyncConfig struct {
	CronSchedule      string
	DateRange         string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AdMetricsSyncService grava periodicamente o snapshot consolidado das contas de anúncios ativas
type AdMetricsSyncService struct {
	scheduler    *gocron.Scheduler
	config       AdMetricsSyncConfig
	accountRepo  repository.AdAccountRepository
	snapshotRepo repository.AdMetricsSnapshotRepository
	advertiser   advertising.Advertiser
	resolveToken func(secretName string) string
	now          func() time.Time
	baseCtx      context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncAccounts    int
	lastSyncError       string
}

func NewAdMetricsSyncService(
	accountRepo repository.AdAccountRepository,
	snapshotRepo repository.AdMetricsSnapshotRepository,
	advertiser advertising.Advertiser,
	appConfig *config.Config,
) *AdMetricsSyncService {
	syncConfig := AdMetricsSyncConfig{
		CronSchedule:      appConfig.AdMetricsSync.CronSchedule,
		DateRange:         appConfig.AdMetricsSync.DateRange,
		MaxConcurrentJobs: appConfig.AdMetricsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AdMetricsSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}
	if syncConfig.DateRange == "" {
		syncConfig.DateRange = domain.DefaultAdDateRange
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"date_range":          syncConfig.DateRange,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas de anúncios carregada")

	return &AdMetricsSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		advertiser:   advertiser,
		resolveToken: viper.GetString,
		now:          time.Now,
		baseCtx:      context.Background(),
	}
}

// Start inicia o agendador
func (s *AdMetricsSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AdMetricsSyncService) run(ctx context.Context) {
	if _, err := s.syncAdMetrics(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
		logrus.WithField("error", err.Error()).Error("Erro na sincronização de métricas de anúncios")
	}
}

// syncAdMetrics consolida as métricas das contas ativas e grava o snapshot do dia
func (s *AdMetricsSyncService) syncAdMetrics(ctx context.Context) (*domain.AdMetricsSnapshot, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas de anúncios já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	snapshot, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncCompletedAt = s.now()
		s.lastSyncAccounts = snapshot.Accounts
	}
	s.syncMutex.Unlock()

	return snapshot, err
}

func (s *AdMetricsSyncService) sync(ctx context.Context) (*domain.AdMetricsSnapshot, error) {
	startTime := time.Now()

	accounts, err := s.getActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contas de anúncios: %w", err)
	}

	outcomes := s.fetchMetrics(ctx, accounts)

	snapshot := &domain.AdMetricsSnapshot{
		Date:      s.now().Format(time.DateOnly),
		DateRange: s.config.DateRange,
		Accounts:  len(accounts),
		Metrics:   advertising.Consolidate(accounts, outcomes),
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao salvar snapshot de métricas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"accounts":    len(accounts),
		"date":        snapshot.Date,
		"date_range":  snapshot.DateRange,
		"snapshot_id": snapshot.ID,
	}).Info("Sincronização de métricas de anúncios concluída")

	return snapshot, nil
}

// getActiveAccounts carrega as contas ativas e resolve o token de cada uma.
// Contas sem token configurado ficam fora da sincronização.
func (s *AdMetricsSyncService) getActiveAccounts(ctx context.Context) ([]domain.AdAccount, error) {
	records, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.AdAccount, 0, len(records))
	for _, record := range records {
		token := s.resolveToken(record.SecretName)
		if token == "" {
			logrus.WithFields(logrus.Fields{
				"account_id":  record.ID,
				"platform":    record.Platform,
				"secret_name": record.SecretName,
			}).Warn("Conta sem token configurado. Pulando.")
			continue
		}
		accounts = append(accounts, record.ToAdAccount(token))
	}

	logrus.WithField("active_accounts", len(accounts)).Info("Contas encontradas para sincronização de métricas de anúncios")

	return accounts, nil
}

// fetchMetrics consulta as contas com no máximo MaxConcurrentJobs chamadas simultâneas
func (s *AdMetricsSyncService) fetchMetrics(ctx context.Context, accounts []domain.AdAccount) []domain.Outcome[*domain.AdMetrics] {
	outcomes := make([]domain.Outcome[*domain.AdMetrics], len(accounts))
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, acc domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			metrics := s.advertiser.GetAccountMetrics(ctx, acc, s.config.DateRange)
			if metrics == nil {
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"platform":   acc.Platform,
				}).Warn("Nenhuma métrica obtida para a conta")
				outcomes[i] = domain.Capture[*domain.AdMetrics](nil, advertising.ErrNoMetrics)
				return
			}
			outcomes[i] = domain.Capture(metrics, nil)
		}(i, account)
	}

	wg.Wait()

	return outcomes
}

// TriggerManualSync inicia manualmente uma sincronização
func (s *AdMetricsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de métricas de anúncios já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de métricas de anúncios")
	go s.run(s.baseCtx)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *AdMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_date_range":        s.config.DateRange,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_accounts":     s.lastSyncAccounts,
		"last_sync_error":        s.lastSyncError,
	}
}
