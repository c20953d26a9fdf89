// Package prompt renders the fixed prompt templates sent to the completion
// provider. Templates are parsed once at package init and rendered
// deterministically from their inputs.
package prompt

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type planData struct {
	Idea string
}

type reviewData struct {
	Idea     string
	PlanJSON string
}

// Plan renders the startup-plan prompt for a raw idea.
func Plan(idea string) (string, error) {
	return render("plan.tmpl", planData{Idea: idea})
}

// Critique renders the critique prompt for an idea and a pretty-printed plan.
func Critique(idea, planJSON string) (string, error) {
	return render("critique.tmpl", reviewData{Idea: idea, PlanJSON: planJSON})
}

// Pitch renders the pitch-deck prompt for an idea and a pretty-printed plan.
func Pitch(idea, planJSON string) (string, error) {
	return render("pitch.tmpl", reviewData{Idea: idea, PlanJSON: planJSON})
}

func render(name string, data interface{}) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}
