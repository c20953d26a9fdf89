package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/launchforge/startup-builder/internal/mocks"
)

func TestCritiqueHandler(t *testing.T) {
	handler := NewCritique(newTestService(&mocks.MockCompletionRepo{Response: "A solid plan."}))

	body := `{"idea": "meal planner", "plan": {"idea": "meal planner"}}`
	req := httptest.NewRequest("POST", "/api/startup/critique", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp critiqueResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Critique != "A solid plan." {
		t.Errorf("Unexpected critique: %q", resp.Critique)
	}
}

func TestCritiqueHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty idea", `{"idea": "", "plan": {"idea": "x"}}`},
		{"missing idea", `{"plan": {"idea": "x"}}`},
		{"empty plan", `{"idea": "x", "plan": {}}`},
		{"missing plan", `{"idea": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCritique(newTestService(&mocks.MockCompletionRepo{Response: "unused"}))

			req := httptest.NewRequest("POST", "/api/startup/critique", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}

			var body struct {
				Detail string `json:"detail"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if body.Detail != "idea and plan required" {
				t.Errorf("Unexpected detail: %q", body.Detail)
			}
		})
	}
}
