package plan

import (
	"encoding/json"
	"fmt"
)

// Unknown is the sentinel value backfilled into plan fields the model left
// absent or null.
const Unknown = "Unknown"

// StartupPlan is the structured blueprint generated from a raw idea.
// Every field is guaranteed non-null after coercion.
type StartupPlan struct {
	Idea                 string `json:"idea"`
	ProblemSummary       string `json:"problem_summary"`
	SolutionSummary      string `json:"solution_summary"`
	TargetAudience       string `json:"target_audience"`
	MarketAndCompetition string `json:"market_and_competition"`
	RevenueModel         string `json:"revenue_model"`
	TechArchitecture     string `json:"tech_architecture"`
	MVPRoadmap           string `json:"mvp_roadmap"`
	LaunchStrategy       string `json:"launch_strategy"`
}

// Slide is a single page of a pitch deck. Content may contain embedded
// newlines.
type Slide struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MalformedOutputError reports model output that could not be coerced into
// the expected shape. It carries the complete raw text for diagnosis.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("model did not return valid JSON. Raw output was:\n%s", e.Raw)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// rawPlan mirrors StartupPlan with pointer fields so absent and null keys can
// be detected and backfilled. A present-but-empty string stays a valid pointer
// and passes through untouched.
type rawPlan struct {
	Idea                 *string `json:"idea"`
	ProblemSummary       *string `json:"problem_summary"`
	SolutionSummary      *string `json:"solution_summary"`
	TargetAudience       *string `json:"target_audience"`
	MarketAndCompetition *string `json:"market_and_competition"`
	RevenueModel         *string `json:"revenue_model"`
	TechArchitecture     *string `json:"tech_architecture"`
	MVPRoadmap           *string `json:"mvp_roadmap"`
	LaunchStrategy       *string `json:"launch_strategy"`
}

// CoercePlan parses raw model output into a StartupPlan. Parse failures
// (including non-object values and non-string fields) return a
// MalformedOutputError; missing or null required keys are backfilled with
// Unknown. Extra keys are ignored.
func CoercePlan(raw string) (*StartupPlan, error) {
	var rp rawPlan
	if err := json.Unmarshal([]byte(raw), &rp); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Err: err}
	}

	return &StartupPlan{
		Idea:                 orUnknown(rp.Idea),
		ProblemSummary:       orUnknown(rp.ProblemSummary),
		SolutionSummary:      orUnknown(rp.SolutionSummary),
		TargetAudience:       orUnknown(rp.TargetAudience),
		MarketAndCompetition: orUnknown(rp.MarketAndCompetition),
		RevenueModel:         orUnknown(rp.RevenueModel),
		TechArchitecture:     orUnknown(rp.TechArchitecture),
		MVPRoadmap:           orUnknown(rp.MVPRoadmap),
		LaunchStrategy:       orUnknown(rp.LaunchStrategy),
	}, nil
}

// rawSlide uses pointer fields so a missing title or content is detectable.
type rawSlide struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CoerceDeck parses raw model output into an ordered slide list. Unlike plans,
// slides are structural: a slide missing title or content is a hard failure,
// never backfilled.
func CoerceDeck(raw string) ([]Slide, error) {
	var rawSlides []rawSlide
	if err := json.Unmarshal([]byte(raw), &rawSlides); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Err: err}
	}

	slides := make([]Slide, len(rawSlides))
	for i, rs := range rawSlides {
		if rs.Title == nil || rs.Content == nil {
			return nil, &MalformedOutputError{
				Raw: raw,
				Err: fmt.Errorf("slide %d is missing title or content", i),
			}
		}
		slides[i] = Slide{Title: *rs.Title, Content: *rs.Content}
	}

	return slides, nil
}

func orUnknown(s *string) string {
	if s == nil {
		return Unknown
	}
	return *s
}
