package repository

import (
	"context"

	"github.com/launchforge/startup-builder/internal/cache"
	"github.com/launchforge/startup-builder/internal/plan"
)

// PlanCacheRepository caches generated plans keyed by idea.
type PlanCacheRepository interface {
	GetPlan(ctx context.Context, idea string) (*plan.StartupPlan, error)
	SetPlan(ctx context.Context, idea string, p *plan.StartupPlan) error
	Close() error
}

type planCacheRepository struct {
	manager *cache.Manager
}

func NewPlanCacheRepository(manager *cache.Manager) PlanCacheRepository {
	return &planCacheRepository{
		manager: manager,
	}
}

func (c *planCacheRepository) GetPlan(ctx context.Context, idea string) (*plan.StartupPlan, error) {
	return c.manager.GetPlan(ctx, idea)
}

func (c *planCacheRepository) SetPlan(ctx context.Context, idea string, p *plan.StartupPlan) error {
	return c.manager.SetPlan(ctx, idea, p)
}

func (c *planCacheRepository) Close() error {
	return c.manager.Close()
}
