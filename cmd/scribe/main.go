package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/scribe/internal/api"
	"github.com/MikeSquared-Agency/scribe/internal/config"
	"github.com/MikeSquared-Agency/scribe/internal/hermes"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/pipeline"
	"github.com/MikeSquared-Agency/scribe/internal/processor"
	"github.com/MikeSquared-Agency/scribe/internal/sink"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("scribe starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Lexicon — malformed tables are fatal at startup, not per-request.
	lex, err := lexicon.Open(cfg.LexiconPath)
	if err != nil {
		slog.Error("failed to load lexicon", "path", cfg.LexiconPath, "error", err)
		os.Exit(1)
	}
	slog.Info("lexicon loaded", "version", lex.Snapshot().Version)

	// Audit store
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := sink.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	slog.Info("audit store connected")

	// NATS/Hermes
	bus, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer bus.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	// Pipeline — the core
	pipe := pipeline.New(lex, pipeline.Options{}, slog.Default())

	// Processor — bus-driven enrichment
	proc := processor.New(pipe, db, bus, slog.Default())
	if err := bus.Subscribe(hermes.SubjectExchangeStored, proc.HandleExchangeStored); err != nil {
		slog.Error("failed to subscribe to exchange events", "error", err)
		os.Exit(1)
	}

	// Reload the lexicon on SIGHUP; in-flight runs keep their snapshot.
	hupCh := make(chan os.Signal, 1)
	signal.Notify(hupCh, syscall.SIGHUP)
	go func() {
		for range hupCh {
			if err := lex.Reload(); err != nil {
				slog.Error("lexicon reload failed — keeping previous version", "error", err)
				continue
			}
			slog.Info("lexicon reloaded", "version", lex.Snapshot().Version)
		}
	}()

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, pipe, db, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if err := bus.Publish("swarm.agent.scribe.registered", map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      cfg.Port,
		"lexicon":   lex.Snapshot().Version,
	}); err != nil {
		slog.Warn("failed to publish registration", "error", err)
	}

	slog.Info("scribe ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("scribe stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
