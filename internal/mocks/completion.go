package mocks

import (
	"context"
)

// Mock Completion Repository
type MockCompletionRepo struct {
	Response string
	Err      error
	Calls    int
	Prompts  []string
	Temps    []float64
}

func (m *MockCompletionRepo) GenerateText(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	m.Temps = append(m.Temps, temperature)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
