package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/config"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/infra"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/router"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/storage"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// ── Persistence backends ─────────────────────────────────────────────────
	var rdb *redis.Client
	var stores []storage.SnapshotStore

	if cfg.SnapshotBackend == "redis" || cfg.SnapshotBackend == "both" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		stores = append(stores, storage.NewRedisStore(rdb))
	}
	if cfg.SnapshotBackend == "sqlite" || cfg.SnapshotBackend == "both" {
		sqliteStore, err := storage.NewSQLiteStore(cfg.SQLitePath, cfg.SnapshotHistory)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sqlite snapshot archive")
		}
		stores = append(stores, sqliteStore)
	}

	// ── Boot state from last snapshot, defaults on first run ─────────────────
	boot := model.DefaultSnapshot()
	for _, sstore := range stores {
		snap, err := sstore.Load(context.Background())
		if err == nil {
			boot = snap
			log.Info().Int("sales", len(snap.Sales)).Msg("state restored from snapshot")
			break
		}
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Warn().Err(err).Msg("snapshot load failed, trying next backend")
		}
	}
	st := store.New(boot)

	// ── Services ─────────────────────────────────────────────────────────────
	productionSvc := service.NewProductionService(st, model.DefaultKitchenRules())
	stockSvc := service.NewStockService(st)
	saleSvc := service.NewSaleService(st)
	financeSvc := service.NewFinanceService(st)
	commandSvc := service.NewCommandService(saleSvc, financeSvc, productionSvc)

	// ── Workers ──────────────────────────────────────────────────────────────
	// The dispatcher is the composition root for async work: snapshot
	// persistence and daily reports both flow through it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mailer *infra.Mailer
	if cfg.SMTPHost != "" {
		mailer = infra.NewMailer(cfg)
	}

	snapshotWorker := worker.NewSnapshotWorker(st.Snapshot, rdb, stores...)
	snapshotSvc := service.NewSnapshotService(st, financeSvc, stores...)
	reportWorker := worker.NewReportWorker(snapshotSvc, mailer, cfg.ReportStoragePath)
	dispatcher := worker.NewDispatcher(rdb, snapshotWorker, reportWorker)

	dispatcher.StartWorkerPool(ctx, cfg.WorkerPoolSize)
	if cfg.Autosave {
		service.EnableAutosave(st, dispatcher)
		worker.StartAutosaveCron(ctx, dispatcher, time.Duration(cfg.AutosaveMinutes)*time.Minute)
	}

	r := router.New(cfg, router.Deps{
		Store:      st,
		RDB:        rdb,
		Dispatcher: dispatcher,
		Production: productionSvc,
		Stock:      stockSvc,
		Sales:      saleSvc,
		Finance:    financeSvc,
		Command:    commandSvc,
		Snapshot:   snapshotSvc,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Deli Bross backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// Last synchronous save so no tail of mutations is lost
	persistCtx, persistCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer persistCancel()
	if err := snapshotSvc.Persist(persistCtx); err != nil {
		log.Error().Err(err).Msg("final snapshot save failed")
	}
	log.Info().Msg("server exited")
}
