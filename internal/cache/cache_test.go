package cache

import (
	"context"
	"testing"
	"time"

	"github.com/launchforge/startup-builder/internal/plan"
)

func testPlan(idea string) *plan.StartupPlan {
	return &plan.StartupPlan{
		Idea:           idea,
		ProblemSummary: "a problem",
		LaunchStrategy: "a launch",
	}
}

func TestManagerSetAndGet(t *testing.T) {
	m := NewManager(1 * time.Hour)
	defer m.Close()
	ctx := context.Background()

	if err := m.SetPlan(ctx, "meal planner", testPlan("meal planner")); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}

	p, err := m.GetPlan(ctx, "meal planner")
	if err != nil {
		t.Fatalf("Failed to get plan: %v", err)
	}
	if p.Idea != "meal planner" {
		t.Errorf("Expected idea 'meal planner', got '%s'", p.Idea)
	}

	// Miss for an unknown idea
	if _, err := m.GetPlan(ctx, "different idea"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestManagerKeyNormalization(t *testing.T) {
	m := NewManager(1 * time.Hour)
	defer m.Close()
	ctx := context.Background()

	if err := m.SetPlan(ctx, "Meal Planner", testPlan("Meal Planner")); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}

	// Case and surrounding whitespace don't change the key
	if _, err := m.GetPlan(ctx, "  meal planner "); err != nil {
		t.Errorf("Expected hit for normalized idea, got %v", err)
	}

	if GenerateKey("idea") == GenerateKey("other idea") {
		t.Error("Expected distinct keys for distinct ideas")
	}
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	defer m.Close()
	ctx := context.Background()

	if err := m.SetPlan(ctx, "idea", testPlan("idea")); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := m.GetPlan(ctx, "idea"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss for expired entry, got %v", err)
	}
}

func TestManagerCleanupExpired(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	defer m.Close()
	ctx := context.Background()

	for _, idea := range []string{"one", "two", "three"} {
		if err := m.SetPlan(ctx, idea, testPlan(idea)); err != nil {
			t.Fatalf("Failed to set plan: %v", err)
		}
	}

	time.Sleep(20 * time.Millisecond)

	if removed := m.CleanupExpired(); removed != 3 {
		t.Errorf("Expected 3 entries removed, got %d", removed)
	}

	stats, err := m.GetStats(ctx)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.TotalEntries != 0 {
		t.Errorf("Expected 0 entries after cleanup, got %d", stats.TotalEntries)
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager(1 * time.Hour)
	defer m.Close()
	ctx := context.Background()

	if err := m.SetPlan(ctx, "idea", testPlan("idea")); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}

	if _, err := m.GetPlan(ctx, "idea"); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after clear, got %v", err)
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(1 * time.Hour)
	defer m.Close()
	ctx := context.Background()

	if err := m.SetPlan(ctx, "idea", testPlan("idea")); err != nil {
		t.Fatalf("Failed to set plan: %v", err)
	}

	m.GetPlan(ctx, "idea")    // hit
	m.GetPlan(ctx, "missing") // miss

	stats, err := m.GetStats(ctx)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}

	if stats.TotalEntries != 1 {
		t.Errorf("Expected 1 entry, got %d", stats.TotalEntries)
	}
	if stats.HitCount != 1 {
		t.Errorf("Expected 1 hit, got %d", stats.HitCount)
	}
	if stats.MissCount != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.MissCount)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("Expected hit rate 0.5, got %v", stats.HitRate)
	}
}
