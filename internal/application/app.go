package application

import (
	"context"
	"fmt"
	"time"

	"github.com/launchforge/startup-builder/internal/cache"
	"github.com/launchforge/startup-builder/internal/config"
	"github.com/launchforge/startup-builder/internal/gemini"
	"github.com/launchforge/startup-builder/internal/pdf"
	"github.com/launchforge/startup-builder/internal/repository"
	"github.com/launchforge/startup-builder/internal/service"
	"github.com/launchforge/startup-builder/internal/transport/handler"
)

// Application holds all wired components. Dependencies are constructed
// explicitly here and injected downward; nothing lives in package globals.
type Application struct {
	Config          *config.Config
	HealthHandler   *handler.Health
	PlanHandler     *handler.Plan
	CritiqueHandler *handler.Critique
	PitchHandler    *handler.Pitch
	PDFHandler      *handler.PDF

	cacheManager *cache.Manager
	archive      repository.ArchiveRepository
	cleanup      func() error
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Initialize plan cache
	cacheManager := cache.NewManager(time.Duration(cfg.CacheTTLHours) * time.Hour)

	// Archive is optional; without a bucket everything is discarded.
	var archiveRepo repository.ArchiveRepository
	if cfg.ArchiveBucket != "" {
		archiveRepo, err = repository.NewCloudStorageArchive(context.Background(), cfg.ArchiveBucket)
		if err != nil {
			cacheManager.Close()
			return nil, fmt.Errorf("creating archive: %w", err)
		}
	} else {
		archiveRepo = repository.NewNoopArchive()
	}

	// Create repositories
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	completionRepo := repository.NewCompletionRepository(geminiClient)
	cacheRepo := repository.NewPlanCacheRepository(cacheManager)

	// Create services (business logic)
	startupService := service.NewStartup(completionRepo, cacheRepo, archiveRepo, cfg.Temperature)

	// Create handlers (HTTP layer)
	healthHandler := handler.NewHealth()
	planHandler := handler.NewPlan(startupService)
	critiqueHandler := handler.NewCritique(startupService)
	pitchHandler := handler.NewPitch(startupService)
	pdfHandler := handler.NewPDF(pdf.NewRenderer())

	cleanup := func() error {
		cacheManager.Close()
		return archiveRepo.Close()
	}

	return &Application{
		Config:          cfg,
		HealthHandler:   healthHandler,
		PlanHandler:     planHandler,
		CritiqueHandler: critiqueHandler,
		PitchHandler:    pitchHandler,
		PDFHandler:      pdfHandler,
		cacheManager:    cacheManager,
		archive:         archiveRepo,
		cleanup:         cleanup,
	}, nil
}

// SweepCache removes expired plan entries and returns how many were dropped.
func (a *Application) SweepCache() int {
	return a.cacheManager.CleanupExpired()
}

// ArchiveStats reports the state of the archive bucket.
func (a *Application) ArchiveStats(ctx context.Context) (*repository.ArchiveStats, error) {
	return a.archive.GetStats(ctx)
}

// Close cleans up application resources
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
