package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/launchforge/startup-builder/internal/pdf"
	"github.com/launchforge/startup-builder/internal/plan"
	"github.com/launchforge/startup-builder/internal/transport/response"
)

type PDF struct {
	renderer *pdf.Renderer
}

func NewPDF(renderer *pdf.Renderer) *PDF {
	return &PDF{
		renderer: renderer,
	}
}

type pdfRequest struct {
	Slides []plan.Slide `json:"slides"`
}

func (h *PDF) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req pdfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if len(req.Slides) == 0 {
		response.WriteBadRequest(w, "slides missing")
		return
	}

	deck, err := h.renderer.Render(req.Slides)
	if err != nil {
		// Structural slide problems are caller errors.
		response.WriteBadRequest(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=pitchdeck.pdf`)
	w.Header().Set("Content-Length", strconv.Itoa(len(deck.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(deck.Data)
}
