package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/launchforge/startup-builder/internal/application"
	"github.com/launchforge/startup-builder/internal/transport/middleware"
)

// NewRouter builds the HTTP routes for an already constructed application.
// Middleware wraps the router itself so CORS preflights and unmatched paths
// are covered too.
func NewRouter(app *application.Application) http.Handler {
	r := mux.NewRouter()

	r.Handle("/health", app.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api/startup").Subrouter()
	api.Handle("/plan", app.PlanHandler).Methods("POST")
	api.Handle("/critique", app.CritiqueHandler).Methods("POST")
	api.Handle("/pitch", app.PitchHandler).Methods("POST")
	api.Handle("/pdf", app.PDFHandler).Methods("POST")

	return middleware.CORS(middleware.Logging(r))
}

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, func(), error) {
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	cleanup := func() {
		app.Close()
	}

	return NewRouter(app), cleanup, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
