package mocks

import (
	"context"

	"github.com/launchforge/startup-builder/internal/cache"
	"github.com/launchforge/startup-builder/internal/plan"
)

// Mock Plan Cache Repository
type MockPlanCacheRepo struct {
	Plans    map[string]*plan.StartupPlan
	GetCalls int
	SetCalls int
}

func NewMockPlanCacheRepo() *MockPlanCacheRepo {
	return &MockPlanCacheRepo{
		Plans: make(map[string]*plan.StartupPlan),
	}
}

func (m *MockPlanCacheRepo) GetPlan(ctx context.Context, idea string) (*plan.StartupPlan, error) {
	m.GetCalls++
	if p, ok := m.Plans[idea]; ok {
		return p, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *MockPlanCacheRepo) SetPlan(ctx context.Context, idea string, p *plan.StartupPlan) error {
	m.SetCalls++
	m.Plans[idea] = p
	return nil
}

func (m *MockPlanCacheRepo) Close() error {
	return nil
}
