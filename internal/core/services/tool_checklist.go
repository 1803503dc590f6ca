package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// checklistTool produces a document checklist for the destination and
// visa goal.
type checklistTool struct {
	deps toolDeps
}

func (t *checklistTool) intent() domain.Intent { return domain.IntentChecklist }

func (t *checklistTool) gate(in toolInput) []string {
	var missing []string
	if in.destination() == "" {
		missing = append(missing, "destination country")
	}
	if in.goal() == "" {
		missing = append(missing, "visa goal (work, study, tourism, family or residency)")
	}
	return missing
}

const checklistSystemPrompt = `You are an immigration documents assistant.
Reply with ONLY JSON, no prose:
{"items":[string],"confidence":int}
confidence is 1-100. Items are concrete documents in application order.`

func (t *checklistTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	result := domain.Checklist{Destination: in.destination(), VisaGoal: in.goal()}
	var warnings []string

	userPrompt := fmt.Sprintf("Checklist for a %s visa to %s. Applicant nationality: %s.",
		in.goal(), in.destination(), in.profile.Nationality)

	var model struct {
		Items      []string `json:"items"`
		Confidence int      `json:"confidence"`
	}
	if err := completeJSON(ctx, t.deps.llm, checklistSystemPrompt, userPrompt, &model); err == nil && len(model.Items) > 0 {
		result.Items = model.Items
		result.Confidence = model.Confidence
	} else {
		result.Items = t.heuristicItems(in, entry)
		result.Confidence = 45
		warnings = append(warnings, heuristicWarning)
	}
	result.Confidence = domain.ClampConfidence(result.Confidence)

	citations := t.deps.citationsFor(ctx,
		entry, fmt.Sprintf("documents required for %s visa %s", in.goal(), in.destination()))

	return &toolOutput{
		payload:   result,
		rendered:  renderChecklist(result),
		citations: citations,
		warnings:  warnings,
	}, nil
}

func (t *checklistTool) heuristicItems(in toolInput, entry *domain.FactEntry) []string {
	base := []string{
		"Passport valid at least 6 months beyond travel",
		"Completed visa application form",
		"Recent passport photographs",
		"Proof of funds",
		"Travel or health insurance",
	}
	if entry != nil && len(entry.Checklist) > 0 {
		base = append(entry.Checklist, base...)
	}

	switch in.goal() {
	case "work":
		base = append(base, "Signed employment contract or job offer", "CV and qualification certificates")
	case "study":
		base = append(base, "Admission letter from the institution", "Proof of tuition payment or scholarship")
	case "family":
		base = append(base, "Marriage or birth certificates proving the relationship")
	}
	return dedupeStrings(base)
}

func renderChecklist(c domain.Checklist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checklist: %s visa for %s (confidence %d/100)\n", c.VisaGoal, c.Destination, c.Confidence)
	for _, item := range c.Items {
		fmt.Fprintf(&b, "  [ ] %s\n", item)
	}
	return strings.TrimRight(b.String(), "\n")
}
