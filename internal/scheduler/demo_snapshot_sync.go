package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
	"github.com/E-man85/portfolio-api/internal/usecases/reporting"
)

// DemoSnapshotSyncConfig representa a configuração do agendador de snapshot
type DemoSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DemoSnapshotSyncService aquece o cache do dataset de demonstração e recalcula
// as visões agregadas de forma periódica, para que a primeira requisição após o
// deploy não pague o custo de geração
type DemoSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              DemoSnapshotSyncConfig
	appConfig           *config.Config
	generator           demodata.Generator
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDemoSnapshotSyncService cria uma nova instância do serviço de snapshot
func NewDemoSnapshotSyncService(
	generator demodata.Generator,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *DemoSnapshotSyncService {
	snapshotConfig := DemoSnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot de demonstração carregada")

	return &DemoSnapshotSyncService{
		scheduler:   scheduler,
		config:      snapshotConfig,
		appConfig:   appConfig,
		generator:   generator,
		reporter:    reporter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DemoSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot periódico de demonstração desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshot de demonstração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de demonstração: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshot de demonstração")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshot aquece o cache do dataset e recalcula todas as visões agregadas
func (s *DemoSnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de demonstração já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshot das visões de demonstração")

	records, err := s.generator.Generate(s.appConfig.Demo.Rows, s.appConfig.Demo.Seed)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar dataset de demonstração para o snapshot")
		return
	}

	daily, err := s.reporter.DailyTotals()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular totais diários no snapshot")
		return
	}

	regionFormat, err := s.reporter.RegionFormatTotals()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular totais por região e formato no snapshot")
		return
	}

	hourly, err := s.reporter.HourlyMeans()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular médias horárias no snapshot")
		return
	}

	weekly, err := s.reporter.WeeklyForecast()
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular previsão semanal no snapshot")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"rows":                 len(records),
		"daily_totals":         len(daily),
		"region_format_totals": len(regionFormat),
		"hourly_buckets":       len(hourly),
		"weeks":                len(weekly),
		"duration_ms":          time.Since(startTime).Milliseconds(),
	}).Info("Snapshot das visões de demonstração concluído")
}

// TriggerManualSync inicia manualmente um snapshot das visões de demonstração
func (s *DemoSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de demonstração já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual das visões de demonstração")
	go s.syncSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *DemoSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"dataset_rows":           s.appConfig.Demo.Rows,
		"dataset_seed":           s.appConfig.Demo.Seed,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
