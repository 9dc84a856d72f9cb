package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ent0n29/amala/internal/chat"
	"github.com/ent0n29/amala/internal/checkin"
	"github.com/ent0n29/amala/internal/config"
	"github.com/ent0n29/amala/internal/history"
	"github.com/ent0n29/amala/internal/httpapi"
	"github.com/ent0n29/amala/internal/observability"
	"github.com/ent0n29/amala/internal/provider"
	"github.com/ent0n29/amala/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	ctx := context.Background()
	turns, err := history.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("history store init failed: %v", err)
	}
	defer turns.Close()

	checkinStore, err := checkin.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("checkin store init failed: %v", err)
	}
	defer checkinStore.Close()
	checkins := checkin.NewService(checkinStore)

	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, using in-memory stores")
	}
	if cfg.ProviderAPIKey == "" {
		log.Printf("PROVIDER_API_KEY not set, completion requests will be rejected upstream")
	}

	client := provider.NewHTTPClient(cfg.ProviderBaseURL, cfg.ProviderAPIKey, provider.RetryPolicy{
		MaxAttempts: cfg.RetryMaxAttempts,
		BaseDelay:   cfg.RetryBaseDelay,
		JitterMax:   cfg.RetryJitterMax,
		Deadline:    cfg.RetryDeadline,
	})

	orchestrator := chat.NewOrchestrator(client, turns, metrics, chat.Options{
		Model:         cfg.ProviderModel,
		MaxTokens:     cfg.ProviderMaxTokens,
		Temperature:   cfg.ProviderTemperature,
		HistoryWindow: cfg.HistoryWindow,
		DegradedReply: cfg.DegradedReply,
	})

	sessions := session.NewRegistry(cfg.SessionInactivityTimeout)
	sessions.SetExpireHook(func(_ string) {
		metrics.SetActiveSessions(sessions.ActiveCount())
	})

	api := httpapi.New(cfg, orchestrator, turns, checkins, sessions, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	sessions.StartJanitor(runCtx, 30*time.Second)

	go func() {
		log.Printf("server listening on %s", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutdown signal received")

	runCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = httpServer.Close()
	}

	log.Printf("shutdown complete")
}
