package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// visaTypeTool lists the destination's visa categories and recommends
// one for the user's goal.
type visaTypeTool struct {
	deps toolDeps
}

func (t *visaTypeTool) intent() domain.Intent { return domain.IntentVisaType }

func (t *visaTypeTool) gate(in toolInput) []string {
	if in.destination() == "" {
		return []string{"destination country"}
	}
	return nil
}

func (t *visaTypeTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	result := domain.VisaTypeList{Destination: in.destination(), Confidence: 70}
	var warnings []string

	// Visa categories are catalogue data; the model adds nothing here,
	// so this tool is heuristic-only.
	if entry != nil && len(entry.VisaTypes) > 0 {
		result.Types = entry.VisaTypes
		if goal := in.goal(); goal != "" {
			for _, vt := range entry.VisaTypes {
				if strings.EqualFold(vt.Purpose, goal) {
					result.Recommended = vt.Name
					break
				}
			}
		}
	} else {
		result.Confidence = domain.MinConfidence
		warnings = append(warnings, "no visa categories on file for "+in.destination())
	}
	result.Confidence = domain.ClampConfidence(result.Confidence)

	citations := t.deps.citationsFor(ctx,
		entry, fmt.Sprintf("visa types offered by %s", in.destination()))

	return &toolOutput{
		payload:   result,
		rendered:  renderVisaTypes(result),
		citations: citations,
		warnings:  warnings,
	}, nil
}

func renderVisaTypes(v domain.VisaTypeList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Visa types for %s\n", v.Destination)

	if len(v.Types) == 0 {
		b.WriteString("No visa categories on file; check the official site.\n")
	}
	for _, vt := range v.Types {
		fmt.Fprintf(&b, "  - %s (%s", vt.Name, vt.Purpose)
		if vt.Duration != "" {
			fmt.Fprintf(&b, ", %s", vt.Duration)
		}
		b.WriteString(")")
		if vt.Notes != "" {
			fmt.Fprintf(&b, " - %s", vt.Notes)
		}
		b.WriteString("\n")
	}
	if v.Recommended != "" {
		fmt.Fprintf(&b, "Best match for your goal: %s\n", v.Recommended)
	}
	return strings.TrimRight(b.String(), "\n")
}
