package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/application/usecase"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/service"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/adapter"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/config"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/messaging"
	pgRepo "github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/persistence/postgres"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/pipeline"
	grpcPresentation "github.com/msouga/VerificacionCrediticia-sub001/internal/presentation/grpc"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/presentation/rest"
	pkgkafka "github.com/msouga/VerificacionCrediticia-sub001/pkg/kafka"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/observability"
	pkgpostgres "github.com/msouga/VerificacionCrediticia-sub001/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  "json",
		Service: cfg.ServiceName,
	})

	logger.Info("starting verificacion-crediticia",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	caseRepo := pgRepo.NewCaseFileRepo(pool)
	evalRepo := pgRepo.NewEvaluationRepo(pool)
	ruleRepo := pgRepo.NewRuleRepo(pool)
	docRepo := pgRepo.NewDocumentRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()

	// Events either go straight to Kafka or through the transactional
	// outbox, drained by a relay goroutine.
	var publisher port.EventPublisher
	if cfg.Kafka.OutboxEnabled {
		outboxRepo := pgRepo.NewOutboxRepo(pool)
		publisher = messaging.NewOutboxPublisher(outboxRepo, logger)
		relay := messaging.NewOutboxRelay(
			outboxRepo, kafkaProducer, cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.OutboxIntervalMs)*time.Millisecond,
			cfg.Kafka.OutboxBatchSize, logger,
		)
		go relay.Run(ctx)
		logger.Info("event outbox relay started", "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)
	}

	var bureau port.BureauGateway
	if cfg.Bureau.UseStub {
		bureau = adapter.NewStubBureauGatewayWithDemoData()
		logger.Warn("using stub bureau gateway with demo profiles")
	} else {
		bureau = adapter.NewBureauAdapter(adapter.BureauConfig{
			BaseURL:        cfg.Bureau.BaseURL,
			APIKey:         cfg.Bureau.APIKey,
			TimeoutSeconds: cfg.Bureau.TimeoutSeconds,
			MaxRetries:     cfg.Bureau.MaxRetries,
			RetryBackoffMs: cfg.Bureau.RetryBackoffMs,
		}, nil)
	}

	// Wire domain services.
	classifier := service.NewRiskClassifier()
	explorer := service.NewGraphExplorer(bureau, classifier, logger)
	ruleEngine := service.NewRuleEngine()
	scoringEngine := service.NewScoringEngine(service.ScoringConfig{
		ApproveThreshold:  cfg.Scoring.ApproveThreshold,
		ReviewThreshold:   cfg.Scoring.ReviewThreshold,
		HighRiskThreshold: cfg.Scoring.HighRiskThreshold,
	})

	// Document pipeline.
	docStore := adapter.NewFileDocumentStore(cfg.Pipeline.DocumentStoreDir)
	extractor := adapter.NewSimulatedExtractor()
	docPipeline := pipeline.NewDocumentPipeline(docRepo, docStore, extractor, publisher, cfg.Pipeline.Workers, logger)

	// Wire use cases.
	evaluateUC := usecase.NewEvaluateCaseUseCase(
		caseRepo, evalRepo, ruleRepo, publisher,
		explorer, ruleEngine, scoringEngine,
		logger, cfg.Scoring.DefaultMaxDepth,
	)
	getEvalUC := usecase.NewGetEvaluationUseCase(evalRepo)
	createCaseUC := usecase.NewCreateCaseFileUseCase(caseRepo, publisher)
	getCaseUC := usecase.NewGetCaseFileUseCase(caseRepo)
	listCasesUC := usecase.NewListCaseFilesUseCase(caseRepo)
	deleteCaseUC := usecase.NewDeleteCaseFileUseCase(caseRepo)
	uploadDocUC := usecase.NewUploadDocumentUseCase(caseRepo, docRepo, docPipeline)
	getDocUC := usecase.NewGetDocumentUseCase(docRepo)

	// Start the pipeline and recover interrupted work before serving.
	go docPipeline.Start(ctx)
	if err := docPipeline.Recover(ctx); err != nil {
		logger.Error("pipeline recovery failed", "error", err)
	}

	// gRPC server.
	handler := grpcPresentation.NewVerificationHandler(
		evaluateUC, getEvalUC,
		createCaseUC, getCaseUC, listCasesUC, deleteCaseUC,
		uploadDocUC, getDocUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("verificacion-crediticia stopped")
}
