package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/config"
	"github.com/greencoders/soilcard/internal/repository/mongodb"
	"github.com/greencoders/soilcard/internal/repository/sheets"
	"github.com/greencoders/soilcard/internal/scheduler"
	"github.com/greencoders/soilcard/internal/server/handlers"
	"github.com/greencoders/soilcard/internal/server/router"
	advisorysvc "github.com/greencoders/soilcard/internal/service/advisory"
	cardsvc "github.com/greencoders/soilcard/internal/service/cards"
	exportsvc "github.com/greencoders/soilcard/internal/service/export"
	identitysvc "github.com/greencoders/soilcard/internal/service/identity"
	marketsvc "github.com/greencoders/soilcard/internal/service/market"
	weathersvc "github.com/greencoders/soilcard/internal/service/weather"
	"github.com/greencoders/soilcard/pkg/clients/gemini"
	"github.com/greencoders/soilcard/pkg/clients/openweather"
	"github.com/greencoders/soilcard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Initialize AI client
	var aiClient gemini.Client
	if cfg.AI.GeminiKey != "" {
		aiClient = gemini.NewClient(cfg.AI.GeminiKey, cfg.AI.Model)
		baseLogger.Info("gemini ai client enabled")
	} else {
		baseLogger.Warn("gemini api key missing, advisories will use local fallbacks")
	}

	weatherClient := openweather.NewClient(cfg.Weather)
	weatherService := weathersvc.NewService(weatherClient, baseLogger.Named("svc.weather"))
	advisoryService := advisorysvc.NewService(aiClient, baseLogger.Named("svc.advisory"))
	marketService := marketsvc.NewService(baseLogger.Named("svc.market"))
	identityService := identitysvc.NewService(mongoRepo, cfg.Auth.AdminEmails, baseLogger.Named("svc.identity"))
	cardService := cardsvc.NewService(mongoRepo, mongoRepo, advisoryService, baseLogger.Named("svc.cards"))

	// The spreadsheet export is optional; without credentials the endpoint is
	// simply not mounted.
	var exportHandler *handlers.ExportHandler
	if cfg.Sheets.CredentialsPath != "" && cfg.Sheets.SpreadsheetID != "" {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exportService := exportsvc.NewService(mongoRepo, sheetsRepo, baseLogger.Named("svc.export"))
		exportHandler = handlers.NewExportHandler(exportService, baseLogger.Named("handlers.export"))
	} else {
		baseLogger.Warn("sheets export not configured, admin export disabled")
	}

	engine := router.New(router.Handlers{
		Cards:    handlers.NewCardHandler(cardService, baseLogger.Named("handlers.cards")),
		Advisory: handlers.NewAdvisoryHandler(advisoryService, weatherService, baseLogger.Named("handlers.advisory")),
		Weather:  handlers.NewWeatherHandler(weatherService, cfg.Weather.DefaultCity),
		Market:   handlers.NewMarketHandler(marketService),
		Twin:     handlers.NewTwinHandler(),
		Export:   exportHandler,
		Session:  handlers.SessionMiddleware(identityService, baseLogger.Named("middleware.session")),
	}, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(*cfg, weatherService, mongoRepo, baseLogger.Named("scheduler"))
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
