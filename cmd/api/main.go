package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay"
	"github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay/formrelayclient"
	"github.com/E-man85/portfolio-api/infrastructure/repository"
	"github.com/E-man85/portfolio-api/internal/api"
	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/scheduler"
	"github.com/E-man85/portfolio-api/internal/usecases/contacting"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
	"github.com/E-man85/portfolio-api/internal/usecases/profiling"
	"github.com/E-man85/portfolio-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Gerador do dataset de demonstração com memoização por (rows, seed)
	generator := demodata.NewCachedGenerator(demodata.NewService())
	reporter := reporting.NewService(generator, cfg)

	contentService := profiling.NewService()
	resumeRepo := repository.NewResumeRepository(cfg)

	relayClient := formrelayclient.NewClient(cfg)
	relayIntegrator := formrelay.New(cfg, relayClient)
	contactService := contacting.NewService(relayIntegrator, cfg)

	// Inicializa o agendador de snapshot das visões de demonstração
	snapshotSyncService := scheduler.NewDemoSnapshotSyncService(generator, reporter, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de demonstração")
	} else {
		logrus.Info("Agendador de snapshot de demonstração iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		generator,
		reporter,
		contentService,
		resumeRepo,
		contactService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
