package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/launchforge/startup-builder/internal/plan"
	"github.com/launchforge/startup-builder/internal/prompt"
	"github.com/launchforge/startup-builder/internal/repository"
)

// deckTemperature is fixed low so slide structure stays parseable.
const deckTemperature = 0.2

type Startup struct {
	completion  repository.CompletionRepository
	cache       repository.PlanCacheRepository
	archive     repository.ArchiveRepository
	temperature float64
}

func NewStartup(
	completion repository.CompletionRepository,
	cache repository.PlanCacheRepository,
	archive repository.ArchiveRepository,
	temperature float64,
) *Startup {
	return &Startup{
		completion:  completion,
		cache:       cache,
		archive:     archive,
		temperature: temperature,
	}
}

// GeneratePlan turns a raw idea into a structured startup plan. Cached plans
// are returned without a provider call.
func (s *Startup) GeneratePlan(ctx context.Context, idea string) (*plan.StartupPlan, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	if cached, err := s.cache.GetPlan(ctx, idea); err == nil {
		logger.Printf("Plan cache hit idea_len=%d", len(idea))
		return cached, nil
	}

	p, err := prompt.Plan(idea)
	if err != nil {
		return nil, fmt.Errorf("building plan prompt: %w", err)
	}

	raw, err := s.completion.GenerateText(ctx, p, s.temperature)
	if err != nil {
		logger.Printf("Error generating plan: %v", err)
		return nil, err
	}

	result, err := plan.CoercePlan(raw)
	if err != nil {
		logger.Printf("Error coercing plan output: %v", err)
		return nil, err
	}

	if err := s.cache.SetPlan(ctx, idea, result); err != nil {
		logger.Printf("Error caching plan: %v", err)
	}
	if err := s.archive.StorePlan(ctx, idea, result); err != nil {
		logger.Printf("Error archiving plan: %v", err)
	}

	logger.Printf("Plan generated idea_len=%d duration_ms=%d", len(idea), time.Since(startTime).Milliseconds())
	return result, nil
}

// Critique reviews an existing plan and returns free-form text.
func (s *Startup) Critique(ctx context.Context, idea string, planObj map[string]interface{}) (string, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	planJSON, err := json.MarshalIndent(planObj, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling plan for critique: %w", err)
	}

	p, err := prompt.Critique(idea, string(planJSON))
	if err != nil {
		return "", fmt.Errorf("building critique prompt: %w", err)
	}

	raw, err := s.completion.GenerateText(ctx, p, s.temperature)
	if err != nil {
		logger.Printf("Error generating critique: %v", err)
		return "", err
	}

	logger.Printf("Critique generated duration_ms=%d", time.Since(startTime).Milliseconds())
	return strings.TrimSpace(raw), nil
}

// PitchDeck turns an idea and its plan into an ordered slide list.
func (s *Startup) PitchDeck(ctx context.Context, idea string, planObj map[string]interface{}) ([]plan.Slide, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	planJSON, err := json.MarshalIndent(planObj, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling plan for pitch deck: %w", err)
	}

	p, err := prompt.Pitch(idea, string(planJSON))
	if err != nil {
		return nil, fmt.Errorf("building pitch prompt: %w", err)
	}

	raw, err := s.completion.GenerateText(ctx, p, deckTemperature)
	if err != nil {
		logger.Printf("Error generating pitch deck: %v", err)
		return nil, err
	}

	slides, err := plan.CoerceDeck(raw)
	if err != nil {
		logger.Printf("Error coercing pitch deck output: %v", err)
		return nil, err
	}

	if err := s.archive.StoreDeck(ctx, idea, slides); err != nil {
		logger.Printf("Error archiving pitch deck: %v", err)
	}

	logger.Printf("Pitch deck generated slides=%d duration_ms=%d", len(slides), time.Since(startTime).Milliseconds())
	return slides, nil
}
