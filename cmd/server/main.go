package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/config"
	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/repository/sheets"
	"github.com/salonops/backoffice/internal/scheduler"
	"github.com/salonops/backoffice/internal/server/handlers"
	"github.com/salonops/backoffice/internal/server/router"
	authsvc "github.com/salonops/backoffice/internal/service/auth"
	incentivessvc "github.com/salonops/backoffice/internal/service/incentives"
	reportingsvc "github.com/salonops/backoffice/internal/service/reporting"
	staffsvc "github.com/salonops/backoffice/internal/service/staff"
	"github.com/salonops/backoffice/pkg/clients/notify"
	"github.com/salonops/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := store.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to ensure mongodb indexes", zap.Error(err))
	}

	staffRepo := mongodb.NewStaffRepository(store)
	salesRepo := mongodb.NewDailySaleRepository(store)
	userRepo := mongodb.NewUserRepository(store)

	var sheetRepo sheets.Repository
	if cfg.Sheets.CredentialsPath != "" && cfg.Sheets.SpreadsheetID != "" {
		sheetRepo, err = sheets.NewDigestSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
	} else {
		baseLogger.Warn("sheets credentials missing, digest export disabled")
	}

	authService := authsvc.NewService(userRepo, cfg.Auth, baseLogger.Named("svc.auth"))
	incentivesService := incentivessvc.NewService(staffRepo, salesRepo, baseLogger.Named("svc.incentives"))
	staffService := staffsvc.NewService(staffRepo, baseLogger.Named("svc.staff"))
	reportingService := reportingsvc.NewService(salesRepo, sheetRepo, baseLogger.Named("svc.reporting"))

	var notifier notify.Notifier
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Notify)
		baseLogger.Info("digest webhook notifier enabled")
	} else {
		baseLogger.Warn("digest webhook url missing, notifications disabled")
	}

	engine := router.New(router.Handlers{
		Auth:       handlers.NewAuthHandler(authService, baseLogger.Named("handlers.auth")),
		Incentives: handlers.NewIncentivesHandler(incentivesService, baseLogger.Named("handlers.incentives")),
		Staff:      handlers.NewStaffHandler(staffService, baseLogger.Named("handlers.staff")),
	}, authService, userRepo, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, reportingService, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
