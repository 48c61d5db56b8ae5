package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/config"
	dbpkg "github.com/nailnav/nailnav/internal/db"
	"github.com/nailnav/nailnav/internal/infra/cache"
	"github.com/nailnav/nailnav/internal/infra/notify"
	infraRepo "github.com/nailnav/nailnav/internal/infra/repository"
	"github.com/nailnav/nailnav/internal/infra/storage"
	"github.com/nailnav/nailnav/internal/jobs"
	"github.com/nailnav/nailnav/internal/logging"
	"github.com/nailnav/nailnav/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg := config.Load()
	log := logging.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db := dbpkg.NewDB(cfg, log)

	// --------------------------------------------------
	// Optional infrastructure
	// --------------------------------------------------

	inf := routes.Infra{Log: log}

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	inf.Audit = dispatcher

	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		c, err := cache.New(ctx, cfg.RedisURL, log)
		cancel()
		if err != nil {
			log.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			inf.Cache = c
		}
	}

	if cfg.StorageEnabled() {
		inf.Store = storage.NewS3Store(cfg)
	} else {
		log.Warn("S3_BUCKET not set, photo uploads disabled")
	}

	if cfg.SMSEnabled() {
		inf.SMS = notify.NewSMS(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	}

	scheduler, err := jobs.NewScheduler(cfg.RecountSchedule, infraRepo.NewImportGormRepository(db), log)
	if err != nil {
		log.Fatal("invalid recount schedule", zap.String("spec", cfg.RecountSchedule), zap.Error(err))
	}
	scheduler.Start()

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, inf)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
	scheduler.Stop(ctx)
	dispatcher.Close()
	if err := inf.Cache.Close(); err != nil {
		log.Warn("redis close failed", zap.Error(err))
	}
}
