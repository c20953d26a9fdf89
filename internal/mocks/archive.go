package mocks

import (
	"context"

	"github.com/launchforge/startup-builder/internal/plan"
	"github.com/launchforge/startup-builder/internal/repository"
)

// Mock Archive Repository
type MockArchiveRepo struct {
	Err        error
	PlanCalls  int
	DeckCalls  int
	LastIdea   string
	LastSlides []plan.Slide
}

func (m *MockArchiveRepo) StorePlan(ctx context.Context, idea string, p *plan.StartupPlan) error {
	m.PlanCalls++
	m.LastIdea = idea
	return m.Err
}

func (m *MockArchiveRepo) StoreDeck(ctx context.Context, idea string, slides []plan.Slide) error {
	m.DeckCalls++
	m.LastIdea = idea
	m.LastSlides = slides
	return m.Err
}

func (m *MockArchiveRepo) GetStats(ctx context.Context) (*repository.ArchiveStats, error) {
	return &repository.ArchiveStats{}, nil
}

func (m *MockArchiveRepo) Close() error {
	return nil
}
