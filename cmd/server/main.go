package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/launchforge/startup-builder/internal/application"
	"github.com/launchforge/startup-builder/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Startup Builder Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  GEMINI_API_KEY        Gemini API key (required)\n")
		fmt.Printf("  GEMINI_MODEL          Model name (default: gemini-2.5-flash)\n")
		fmt.Printf("  MODEL_TEMPERATURE     Sampling temperature (default: 0.4)\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  CACHE_TTL_HOURS       Plan cache TTL in hours (default: 24)\n")
		fmt.Printf("  CACHE_SWEEP_SCHEDULE  Cron schedule for cache sweeps (default: */10 * * * *)\n")
		fmt.Printf("  ARCHIVE_BUCKET        GCS bucket for plan/deck archive (optional)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Startup Builder Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	cfg := app.Config
	router := server.NewRouter(app)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background maintenance on a cron scheduler
	c := cron.New()

	if _, err := c.AddFunc(cfg.CacheSweepSchedule, func() {
		removed := app.SweepCache()
		if removed > 0 {
			log.Printf("🧹 Cache sweep removed %d expired plans", removed)
		}
	}); err != nil {
		log.Printf("❌ Failed to schedule cache sweep: %v", err)
	} else {
		log.Printf("📅 Scheduled cache sweep with cron: %s", cfg.CacheSweepSchedule)
	}

	if cfg.ArchiveBucket != "" {
		if _, err := c.AddFunc("0 3 * * *", func() {
			statsCtx, statsCancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer statsCancel()

			stats, err := app.ArchiveStats(statsCtx)
			if err != nil {
				log.Printf("❌ Archive stats failed: %v", err)
				return
			}
			log.Printf("🗄️ Archive bucket=%s objects=%d bytes=%d", cfg.ArchiveBucket, stats.TotalObjects, stats.TotalBytes)
		}); err != nil {
			log.Printf("❌ Failed to schedule archive stats: %v", err)
		}
	}

	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Starting server on %s:%s", cfg.Host, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-sigChan
	log.Println("🛑 Shutting down server...")

	c.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
