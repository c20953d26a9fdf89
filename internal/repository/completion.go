package repository

import (
	"context"

	"github.com/launchforge/startup-builder/internal/gemini"
)

// CompletionRepository is the boundary to the text-completion provider.
type CompletionRepository interface {
	GenerateText(ctx context.Context, prompt string, temperature float64) (string, error)
}

type completionRepository struct {
	client *gemini.Client
}

func NewCompletionRepository(client *gemini.Client) CompletionRepository {
	return &completionRepository{
		client: client,
	}
}

func (c *completionRepository) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	return c.client.GenerateText(ctx, prompt, temperature)
}
