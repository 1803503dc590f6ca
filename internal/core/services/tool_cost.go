package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// costTool produces an itemised cost estimate for the application.
type costTool struct {
	deps toolDeps
}

func (t *costTool) intent() domain.Intent { return domain.IntentCost }

func (t *costTool) gate(in toolInput) []string {
	var missing []string
	if in.destination() == "" {
		missing = append(missing, "destination country")
	}
	if in.goal() == "" {
		missing = append(missing, "visa goal (work, study, tourism, family or residency)")
	}
	return missing
}

const costSystemPrompt = `You are an immigration cost assistant.
Reply with ONLY JSON, no prose:
{"lines":[{"label":string,"amount":string,"notes":string}],"summary":string,"confidence":int}
confidence is 1-100. Amounts include currency.`

func (t *costTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	result := domain.CostEstimate{Destination: in.destination(), VisaGoal: in.goal()}
	var warnings []string

	userPrompt := fmt.Sprintf("Estimate the full cost of a %s visa application to %s for a citizen of %s.",
		in.goal(), in.destination(), in.profile.Nationality)

	var model struct {
		Lines      []domain.CostLine `json:"lines"`
		Summary    string            `json:"summary"`
		Confidence int               `json:"confidence"`
	}
	if err := completeJSON(ctx, t.deps.llm, costSystemPrompt, userPrompt, &model); err == nil && len(model.Lines) > 0 {
		result.Lines = model.Lines
		result.Summary = model.Summary
		result.Confidence = model.Confidence
	} else {
		result.Lines, result.Summary = t.heuristicLines(in, entry)
		result.Confidence = 35
		warnings = append(warnings, heuristicWarning)
	}
	result.Confidence = domain.ClampConfidence(result.Confidence)

	citations := t.deps.citationsFor(ctx,
		entry, fmt.Sprintf("%s visa fees %s", in.destination(), in.goal()))

	return &toolOutput{
		payload:   result,
		rendered:  renderCost(result),
		citations: citations,
		warnings:  warnings,
	}, nil
}

func (t *costTool) heuristicLines(in toolInput, entry *domain.FactEntry) ([]domain.CostLine, string) {
	lines := []domain.CostLine{
		{Label: "Application fee", Amount: "see official fee schedule"},
		{Label: "Document translation and notarisation", Amount: "varies", Notes: "only if documents are not in the destination language"},
		{Label: "Travel insurance", Amount: "varies"},
	}

	if entry != nil {
		if fee, ok := entry.Fees[in.goal()]; ok {
			lines[0].Amount = fee
		} else if fee, ok := entry.Fees["default"]; ok {
			lines[0].Amount = fee
		}
	}

	summary := fmt.Sprintf("Budget for the application fee plus supporting costs; confirm the exact %s fee on the official site.", in.goal())
	return lines, summary
}

func renderCost(c domain.CostEstimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cost estimate: %s visa for %s (confidence %d/100)\n", c.VisaGoal, c.Destination, c.Confidence)
	for _, line := range c.Lines {
		fmt.Fprintf(&b, "  - %s: %s", line.Label, line.Amount)
		if line.Notes != "" {
			fmt.Fprintf(&b, " (%s)", line.Notes)
		}
		b.WriteString("\n")
	}
	if c.Summary != "" {
		fmt.Fprintf(&b, "%s\n", c.Summary)
	}
	return strings.TrimRight(b.String(), "\n")
}
