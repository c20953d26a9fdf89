package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/launchforge/startup-builder/internal/plan"
)

func TestObjectName(t *testing.T) {
	at := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	name := objectName("archive/", "plans", "an idea", at)

	if !strings.HasPrefix(name, "archive/plans/20250314T092653Z-") {
		t.Errorf("Unexpected object name prefix: %s", name)
	}
	if !strings.HasSuffix(name, ".json") {
		t.Errorf("Expected .json suffix, got: %s", name)
	}

	// Same idea at the same instant maps to the same name; different ideas differ.
	if objectName("archive/", "plans", "an idea", at) != name {
		t.Error("Expected deterministic object names")
	}
	if objectName("archive/", "plans", "another idea", at) == name {
		t.Error("Expected distinct names for distinct ideas")
	}
}

func TestNoopArchive(t *testing.T) {
	a := NewNoopArchive()
	ctx := context.Background()

	if err := a.StorePlan(ctx, "idea", &plan.StartupPlan{Idea: "idea"}); err != nil {
		t.Errorf("Expected noop StorePlan to succeed, got %v", err)
	}
	if err := a.StoreDeck(ctx, "idea", []plan.Slide{{Title: "t", Content: "c"}}); err != nil {
		t.Errorf("Expected noop StoreDeck to succeed, got %v", err)
	}

	stats, err := a.GetStats(ctx)
	if err != nil {
		t.Fatalf("Expected noop GetStats to succeed, got %v", err)
	}
	if stats.TotalObjects != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	if err := a.Close(); err != nil {
		t.Errorf("Expected noop Close to succeed, got %v", err)
	}
}
