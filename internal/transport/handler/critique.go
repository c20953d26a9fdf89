package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/launchforge/startup-builder/internal/service"
	"github.com/launchforge/startup-builder/internal/transport/response"
)

type Critique struct {
	startupService *service.Startup
}

func NewCritique(startupService *service.Startup) *Critique {
	return &Critique{
		startupService: startupService,
	}
}

type reviewRequest struct {
	Idea string                 `json:"idea"`
	Plan map[string]interface{} `json:"plan"`
}

type critiqueResponse struct {
	Critique string `json:"critique"`
}

func (h *Critique) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.Idea == "" || len(req.Plan) == 0 {
		response.WriteBadRequest(w, "idea and plan required")
		return
	}

	text, err := h.startupService.Critique(r.Context(), req.Idea, req.Plan)
	if err != nil {
		response.WriteInternalError(w, fmt.Sprintf("Critique generation failed: %v", err))
		return
	}

	response.WriteJSON(w, http.StatusOK, critiqueResponse{Critique: text})
}
