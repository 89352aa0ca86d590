package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/calendar"
	"slotwise/services/intelligence"
	"slotwise/services/preferences"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitPrefsCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetPrefsClient()})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	prefsStore := preferences.NewRedisStore(utils.GetPrefsClient())

	var ranker scheduling.RankingStrategy
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := intelligence.NewGeminiClient(context.Background(), key)
		if err != nil {
			logger.Warn("main: Gemini ranking unavailable, using chronological order", zap.Error(err))
		} else {
			ranker = intelligence.NewGeminiRanking(client)
		}
	}
	engine := &scheduling.DefaultSchedulingEngine{Ranker: ranker}

	var fetcher calendar.BusyFetcher
	if key := config.AppConfig.GoogleAPIKey; key != "" {
		f, err := calendar.NewGoogleBusyFetcher(context.Background(), key)
		if err != nil {
			logger.Warn("main: calendar integration unavailable", zap.Error(err))
		} else {
			fetcher = f
		}
	}

	// handlers.
	scheduleHandler := handlers.NewScheduleHandler(engine, prefsStore, logger)
	prefsHandler := handlers.NewPreferencesHandler(prefsStore, logger)
	calendarHandler := handlers.NewCalendarHandler(fetcher, engine, prefsStore, logger)

	digestClient := cron.NewDigestClient()
	defer digestClient.Close()
	digestHandler := handlers.NewDigestHandler(digestClient, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AvailabilityHandler: scheduleHandler.Availability,
		ConflictsHandler:    scheduleHandler.CheckConflicts,
		AlternativesHandler: scheduleHandler.SuggestAlternatives,
		ResolveHandler:      scheduleHandler.ResolveConflict,

		GetPreferencesHandler:   prefsHandler.Get,
		PutPreferencesHandler:   prefsHandler.Put,
		ClearPreferencesHandler: prefsHandler.Clear,

		CalendarAvailabilityHandler: calendarHandler.Availability,

		EnqueueDigestHandler: digestHandler.Enqueue,
		GetDigestHandler:     digestHandler.Get,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the background digest worker.
	cron.InitDigestWorker(engine, prefsStore, fetcher)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
