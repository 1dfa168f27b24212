package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docgen/internal/api"
	"github.com/dgallion1/docgen/internal/archive"
	"github.com/dgallion1/docgen/internal/config"
	"github.com/dgallion1/docgen/internal/convert"
	"github.com/dgallion1/docgen/internal/mdast"
	"github.com/dgallion1/docgen/internal/stats"
	"github.com/dgallion1/docgen/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.ActiveDir, 0o755); err != nil {
		log.Error("create active dir", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.ArchiveDir, 0o755); err != nil {
		log.Error("create archive dir", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The structural parser is an injected capability so the fallback
	// path can be forced via configuration.
	var parse convert.ParseFunc
	if cfg.MarkdownEnabled {
		parse = mdast.Parse
	}
	conv := convert.New(parse, log)

	st := store.New(cfg.ActiveDir, cfg.TemplatePath, conv, log)
	latency := stats.NewLatency(time.Hour)

	arch := archive.New(cfg.ActiveDir, cfg.ArchiveDir, cfg.ArchiveAfter, cfg.SweepInterval, log)
	arch.Start(ctx)

	srv := api.NewServer(st, arch, latency, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		arch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docgen",
		"port", cfg.Port,
		"active_dir", cfg.ActiveDir,
		"archive_dir", cfg.ArchiveDir,
		"markdown_enabled", cfg.MarkdownEnabled,
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
