package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"redline/internal/config"
	"redline/internal/email/noop"
	"redline/internal/email/ses"
	"redline/internal/handler"
	"redline/internal/port"
	"redline/internal/repository/postgres"
	"redline/internal/router"
	"redline/internal/service"
	s3storage "redline/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	fileRepo := postgres.NewFileMetaRepo(db)
	cmpRepo := postgres.NewComparisonRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Initialize services
	fileSvc := service.NewFileService(fileRepo, s3Client, &cfg.S3)
	cmpSvc := service.NewComparisonService(cmpRepo, fileRepo, s3Client, emailSender)

	// Initialize handlers
	fileH := handler.NewFileHandler(fileSvc)
	cmpH := handler.NewComparisonHandler(cmpSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, fileH, cmpH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the comparison queue worker
	worker := service.NewCompareQueueWorker(cmpRepo, cmpSvc, service.CompareQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		MaxRetries:   cfg.Queue.MaxRetries,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		stop()
		<-workerDone
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutdown signal received, draining...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	<-workerDone

	return nil
}
