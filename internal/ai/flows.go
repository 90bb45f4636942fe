// Package ai implements the generation pipeline: declarative flow contracts,
// prompt rendering and the constrained-output client. Each flow is a single
// step: validate input, render the prompt, invoke the generator with the
// flow's output schema, validate what came back.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"synctech/internal/models"
	"synctech/internal/schema"
)

type Flows struct {
	gen Generator
}

func NewFlows(gen Generator) *Flows {
	return &Flows{gen: gen}
}

type LeadSearchRequest struct {
	Industry string `json:"industry"`
	Location string `json:"location"`
}

type LeadSearchResult struct {
	Leads []models.Lead `json:"leads"`
}

type OutreachRequest struct {
	CompanyName string `json:"companyName"`
	Summary     string `json:"summary"`
	PainPoints  string `json:"painPoints"`
	TechNeeds   string `json:"techNeeds"`
}

type BlogRequest struct {
	Topic string `json:"topic"`
}

// LeadSearch turns an (industry, location) query into structured leads. The
// "at least 20 results" and no-website priorities live in the prompt text,
// not in code; the output here is the model's approximation, not verified
// fact.
func (f *Flows) LeadSearch(ctx context.Context, req LeadSearchRequest) (*LeadSearchResult, error) {
	input := map[string]any{
		"industry": req.Industry,
		"location": req.Location,
	}
	var out LeadSearchResult
	if err := f.run(ctx, leadSearchInput, leadSearchTmpl, leadSearchOutput, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateOutreach produces a cold email and proposal for one lead.
func (f *Flows) GenerateOutreach(ctx context.Context, req OutreachRequest) (*models.OutreachContent, error) {
	input := map[string]any{
		"companyName": req.CompanyName,
		"summary":     req.Summary,
		"painPoints":  req.PainPoints,
		"techNeeds":   req.TechNeeds,
	}
	var out models.OutreachContent
	if err := f.run(ctx, outreachInput, outreachTmpl, outreachOutput, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateBlogPost writes a Markdown article for the given topic.
func (f *Flows) GenerateBlogPost(ctx context.Context, req BlogRequest) (*models.BlogPost, error) {
	input := map[string]any{
		"topic": req.Topic,
	}
	var out models.BlogPost
	if err := f.run(ctx, blogInput, blogTmpl, blogOutput, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// run is the shared pipeline. Input validation short-circuits before any
// network call; a constraint failure on the model's output is a hard error,
// no partial repair is attempted.
func (f *Flows) run(
	ctx context.Context,
	in *schema.Definition,
	tmpl *template.Template,
	out *schema.Definition,
	input map[string]any,
	dst any,
) error {
	if _, err := in.Validate(input); err != nil {
		return err
	}

	prompt, err := render(tmpl, input)
	if err != nil {
		return err
	}

	raw, err := f.gen.Generate(ctx, prompt, out.GenAISchema())
	if err != nil {
		return err
	}

	var outMap map[string]any
	if err := json.Unmarshal(raw, &outMap); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	if _, err := out.Validate(outMap); err != nil {
		// %v, not %w: a contract failure in model output is a backend
		// fault and must not surface as caller-input violations.
		return fmt.Errorf("model output rejected: %v", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}
