package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// compareTool compares two or more destination countries for the
// user's goal.
type compareTool struct {
	deps toolDeps
}

func (t *compareTool) intent() domain.Intent { return domain.IntentCompare }

// candidates returns the full comparison set for the turn.
func (t *compareTool) candidates(in toolInput) []string {
	var countries []string
	if in.destination() != "" {
		countries = append(countries, in.destination())
	}
	countries = append(countries, in.turn.CompareWith...)
	return dedupeStrings(countries)
}

func (t *compareTool) gate(in toolInput) []string {
	var missing []string
	if len(t.candidates(in)) < 2 {
		missing = append(missing, "two or more countries to compare")
	}
	if in.goal() == "" {
		missing = append(missing, "visa goal (work, study, tourism, family or residency)")
	}
	return missing
}

const compareSystemPrompt = `You are an immigration comparison assistant.
Reply with ONLY JSON, no prose:
{"rows":[{"country":string,"visaOptions":string,"processingTime":string,"indicativeCost":string,"notes":string}],"suggestion":string,"confidence":int}
confidence is 1-100. One row per country, in the order given.`

func (t *compareTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	countries := t.candidates(in)

	result := domain.VisaComparison{Goal: in.goal()}
	var warnings []string

	userPrompt := fmt.Sprintf("Compare %s for a citizen of %s seeking %s.",
		strings.Join(countries, ", "), in.profile.Nationality, in.goal())

	var model struct {
		Rows       []domain.ComparisonRow `json:"rows"`
		Suggestion string                 `json:"suggestion"`
		Confidence int                    `json:"confidence"`
	}
	if err := completeJSON(ctx, t.deps.llm, compareSystemPrompt, userPrompt, &model); err == nil && len(model.Rows) > 0 {
		result.Rows = model.Rows
		result.Suggestion = model.Suggestion
		result.Confidence = model.Confidence
	} else {
		result.Rows = t.heuristicRows(countries, in.goal())
		result.Confidence = 40
		warnings = append(warnings, heuristicWarning)
	}
	result.Confidence = domain.ClampConfidence(result.Confidence)

	var citations []string
	for _, country := range countries {
		if entry, err := t.deps.catalogue.FindByName(country); err == nil {
			citations = append(citations, entry.OfficialSiteURL)
		}
	}

	return &toolOutput{
		payload:   result,
		rendered:  renderComparison(result),
		citations: dedupeStrings(citations),
		warnings:  warnings,
	}, nil
}

func (t *compareTool) heuristicRows(countries []string, goal string) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, 0, len(countries))
	for _, country := range countries {
		row := domain.ComparisonRow{Country: country, VisaOptions: "see official site"}

		entry, err := t.deps.catalogue.FindByName(country)
		if err != nil {
			row.Notes = "not in the local fact base"
			rows = append(rows, row)
			continue
		}

		var options []string
		for _, vt := range entry.VisaTypes {
			if goal == "" || strings.EqualFold(vt.Purpose, goal) {
				options = append(options, vt.Name)
			}
		}
		if len(options) > 0 {
			row.VisaOptions = strings.Join(options, ", ")
		}
		row.ProcessingTime = entry.ProcessingTime
		if fee, ok := entry.Fees[goal]; ok {
			row.IndicativeCost = fee
		}
		if entry.VisaFreePolicy != "" {
			row.Notes = entry.VisaFreePolicy
		}
		rows = append(rows, row)
	}
	return rows
}

func renderComparison(c domain.VisaComparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison for %s (confidence %d/100)\n", c.Goal, c.Confidence)
	for _, row := range c.Rows {
		fmt.Fprintf(&b, "\n%s\n", row.Country)
		fmt.Fprintf(&b, "  Visa options: %s\n", row.VisaOptions)
		if row.ProcessingTime != "" {
			fmt.Fprintf(&b, "  Processing: %s\n", row.ProcessingTime)
		}
		if row.IndicativeCost != "" {
			fmt.Fprintf(&b, "  Cost: %s\n", row.IndicativeCost)
		}
		if row.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", row.Notes)
		}
	}
	if c.Suggestion != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Suggestion)
	}
	return strings.TrimRight(b.String(), "\n")
}
