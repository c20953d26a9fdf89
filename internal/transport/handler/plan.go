package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/launchforge/startup-builder/internal/plan"
	"github.com/launchforge/startup-builder/internal/service"
	"github.com/launchforge/startup-builder/internal/transport/response"
)

type Plan struct {
	startupService *service.Startup
}

func NewPlan(startupService *service.Startup) *Plan {
	return &Plan{
		startupService: startupService,
	}
}

type planRequest struct {
	Idea string `json:"idea"`
}

func (h *Plan) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.Idea == "" {
		response.WriteBadRequest(w, "idea required")
		return
	}

	result, err := h.startupService.GeneratePlan(r.Context(), req.Idea)
	if err != nil {
		var malformed *plan.MalformedOutputError
		if errors.As(err, &malformed) {
			// Parse failures carry the raw model output in the detail.
			response.WriteInternalError(w, err.Error())
		} else {
			response.WriteInternalError(w, fmt.Sprintf("Unexpected error: %v", err))
		}
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
