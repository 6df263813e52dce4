package main

import (
	"context"
	"log"
	"time"

	"scopeworks/config"
	"scopeworks/internal/api"
	"scopeworks/internal/catalog"
	"scopeworks/internal/llm"
	"scopeworks/internal/repository"
	"scopeworks/internal/service"
	"scopeworks/internal/transcript"
	"scopeworks/internal/wbs"
	"scopeworks/pkg/db"
	"scopeworks/pkg/logger"
	"scopeworks/pkg/mq"
	"scopeworks/pkg/otel"
	"scopeworks/pkg/outbox"
	redisclient "scopeworks/pkg/redis"
	"scopeworks/pkg/util"

	"go.uber.org/zap"
)

const questionRoundTTL = 24 * time.Hour

func main() {
	// 1. Load config
	cfg := config.Load()

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	// 2. Init tracing
	serviceName := cfg.Otel.Service
	if serviceName == "" {
		serviceName = "scopeworks"
	}
	shutdownTracer, err := otel.Init(otel.Config{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Endpoint:       cfg.Otel.Endpoint,
		Enabled:        cfg.Otel.Enabled,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("Tracer initialization failed", zap.Error(err))
	}
	defer shutdownTracer()

	// 3. Init DB
	dbConn, err := db.NewConnection(db.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Name:     cfg.DB.Name,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// 4. Init Redis
	rdb, err := redisclient.New(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		zapLogger.Fatal("Redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	// 5. Init RabbitMQ Publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	// 6. Init outbox dispatcher
	outboxRepo := outbox.NewRepository(dbConn)
	deduper := util.NewDeduperWithLogger(rdb, 24*time.Hour, zapLogger)
	dispatcher := outbox.NewDispatcher(outboxRepo, publisher, zapLogger).
		WithDeduper(deduper)

	dispatchCtx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()
	go dispatcher.Start(dispatchCtx)

	// 7. Init catalog provider (live + cached when an endpoint is
	// configured, bundled fallback otherwise)
	var provider catalog.Provider
	if cfg.Catalog.BaseURL != "" {
		cacheTTL := time.Duration(cfg.Catalog.CacheTTL) * time.Second
		if cacheTTL <= 0 {
			cacheTTL = 5 * time.Minute
		}
		client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey)
		provider = catalog.NewCachedProvider(client, rdb, cacheTTL, zapLogger)
	} else {
		zapLogger.Info("No catalog endpoint configured, using bundled services")
		provider = catalog.NewStaticProvider(catalog.FallbackServices())
	}

	// 8. Init optional collaborators
	var completer service.Completer
	if cfg.LLM.BaseURL != "" {
		completer = llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	}

	var transcripts transcript.Provider
	if cfg.Transcript.BaseURL != "" {
		transcripts = transcript.NewClient(cfg.Transcript.BaseURL, cfg.Transcript.APIKey)
	}

	// 9. Init repositories
	userRepo := repository.NewUserRepository(dbConn)
	wbsRepo := repository.NewWBSRepository(dbConn)

	// 10. Init services
	rounds := util.NewRetryCounter(rdb, questionRoundTTL)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	scopingService := service.NewScopingService(provider, rounds, completer, dbConn, outboxRepo, zapLogger)
	planService := service.NewPlanService(dbConn, wbsRepo, outboxRepo, wbs.NewGenerator(), zapLogger)

	// 11. Init handlers
	authHandler := api.NewAuthHandler(authService)
	scopingHandler := api.NewScopingHandler(scopingService, transcripts, zapLogger)
	wbsHandler := api.NewWBSHandler(planService)
	adminHandler := api.NewAdminHandler(outbox.NewReplayer(outboxRepo, zapLogger))

	// 12. Init router
	router := api.NewRouter(authHandler, scopingHandler, wbsHandler, adminHandler, cfg.JWT.Secret, dbConn, publisher)

	// 13. Run server
	if err := router.Run(cfg.Server.Port); err != nil {
		zapLogger.Fatal("server start failed", zap.Error(err))
	}
}
