package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/launchforge/startup-builder/internal/plan"
	"github.com/launchforge/startup-builder/internal/service"
	"github.com/launchforge/startup-builder/internal/transport/response"
)

type Pitch struct {
	startupService *service.Startup
}

func NewPitch(startupService *service.Startup) *Pitch {
	return &Pitch{
		startupService: startupService,
	}
}

type pitchResponse struct {
	Slides []plan.Slide `json:"slides"`
}

func (h *Pitch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.Idea == "" || len(req.Plan) == 0 {
		response.WriteBadRequest(w, "idea and plan required")
		return
	}

	slides, err := h.startupService.PitchDeck(r.Context(), req.Idea, req.Plan)
	if err != nil {
		response.WriteInternalError(w, fmt.Sprintf("Pitch deck generation failed: %v", err))
		return
	}

	response.WriteJSON(w, http.StatusOK, pitchResponse{Slides: slides})
}
