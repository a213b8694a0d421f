package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/handler"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mail"
	"github.com/MKhiriev/smart-plant-guard/internal/mfa"
	"github.com/MKhiriev/smart-plant-guard/internal/server"
	"github.com/MKhiriev/smart-plant-guard/internal/service"
	"github.com/MKhiriev/smart-plant-guard/internal/store"
	"github.com/MKhiriev/smart-plant-guard/internal/workers"
	"github.com/MKhiriev/smart-plant-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("plant-guard-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("plant-guard-server", cfg.App.LogLevel)
	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	cipher, err := crypto.NewKeyring(cfg.App.DataKeyB64, cfg.App.IndexKeyB64)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading field keys")
	}

	challenges, closeChallenges, err := newChallengeStore(ctx, cfg.MFA)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mfa challenge store")
	}
	defer closeChallenges()

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	if memory, ok := challenges.(*mfa.MemoryStore); ok {
		workers.NewWorkers(workers.NewSweepWorker("mfa-challenges", memory, workers.DefaultSweepInterval, log)).Run(workerCtx)
	}

	sender := mail.NewSMTPSender(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.From, cfg.Mail.Password)
	challenger := mfa.NewManager(challenges, sender, log, mfa.WithTTL(cfg.MFA.CodeTTL))

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cipher, challenger, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newChallengeStore returns the configured MFA challenge store and a
// function releasing its connection.
func newChallengeStore(ctx context.Context, cfg config.MFA) (mfa.ChallengeStore, func(), error) {
	if cfg.Store != config.MFAStoreRedis {
		return mfa.NewMemoryStore(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return mfa.NewRedisStore(client), func() { client.Close() }, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
