package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// roadmapTool produces one to three named immigration paths with
// ordered steps, duration estimates, required documents and a
// confidence score.
type roadmapTool struct {
	deps toolDeps
}

func (t *roadmapTool) intent() domain.Intent { return domain.IntentRoadmap }

func (t *roadmapTool) gate(in toolInput) []string {
	var missing []string
	if in.destination() == "" {
		missing = append(missing, "destination country")
	}
	if in.goal() == "" {
		missing = append(missing, "visa goal (work, study, tourism, family or residency)")
	}
	if in.profile.Nationality == "" {
		missing = append(missing, "nationality")
	}
	return missing
}

const roadmapSystemPrompt = `You are an immigration planning assistant.
Reply with ONLY a JSON array of 1-3 path objects, no prose:
[{"routeName":string,"steps":[{"title":string,"detail":string,"months":int,"documents":[string]}],"totalMonths":int,"confidence":int}]
confidence is 1-100, months estimates are realistic.`

func (t *roadmapTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	plan := domain.RoadmapPlan{Destination: in.destination(), Goal: in.goal()}
	var warnings []string

	userPrompt := fmt.Sprintf("Nationality: %s. Goal: %s in %s. Experience: %d years. Education: %s.",
		in.profile.Nationality, in.goal(), in.destination(), in.profile.WorkYears, in.profile.Education)

	var paths []domain.RoadmapPath
	if err := completeJSON(ctx, t.deps.llm, roadmapSystemPrompt, userPrompt, &paths); err != nil || len(paths) == 0 {
		paths = t.heuristicPaths(in, entry)
		warnings = append(warnings, heuristicWarning)
	}

	// Clamp every number regardless of source, trim to three paths.
	if len(paths) > 3 {
		paths = paths[:3]
	}
	for i := range paths {
		paths[i].Confidence = domain.ClampConfidence(paths[i].Confidence)
		paths[i].TotalMonths = domain.ClampMonths(paths[i].TotalMonths)
		for j := range paths[i].Steps {
			paths[i].Steps[j].Months = domain.ClampMonths(paths[i].Steps[j].Months)
		}
	}
	plan.Paths = paths

	citations := t.deps.citationsFor(ctx,
		entry, fmt.Sprintf("%s visa process for %s", in.destination(), in.goal()))

	return &toolOutput{
		payload:   plan,
		rendered:  renderRoadmap(plan),
		citations: citations,
		warnings:  warnings,
	}, nil
}

// heuristicPaths builds a deterministic plan from the catalogue entry
// alone. The shape is identical to the model-produced one; only the
// confidence and richness differ.
func (t *roadmapTool) heuristicPaths(in toolInput, entry *domain.FactEntry) []domain.RoadmapPath {
	goal := in.goal()
	routeName := fmt.Sprintf("Standard %s route", goal)
	documents := []string{"valid passport", "completed application form", "passport photos"}
	if entry != nil && len(entry.Checklist) > 0 {
		documents = entry.Checklist
	}
	if entry != nil {
		for _, vt := range entry.VisaTypes {
			if strings.EqualFold(vt.Purpose, goal) {
				routeName = vt.Name
				break
			}
		}
	}

	steps := []domain.RoadmapStep{
		{
			Title:  "Confirm your visa category",
			Detail: fmt.Sprintf("Verify the right %s visa for %s on the official site.", goal, in.destination()),
			Months: 1,
		},
		{
			Title:     "Gather documents",
			Detail:    "Collect and, where required, translate and apostille your paperwork.",
			Months:    2,
			Documents: documents,
		},
		{
			Title:  "Submit application",
			Detail: "File the application and pay the fee; book a biometrics or interview appointment if asked.",
			Months: 1,
		},
		{
			Title:  "Wait for a decision",
			Detail: processingDetail(entry),
			Months: 3,
		},
	}

	total := 0
	for _, s := range steps {
		total += s.Months
	}

	return []domain.RoadmapPath{{
		RouteName:   routeName,
		Steps:       steps,
		TotalMonths: domain.ClampMonths(total),
		Confidence:  40,
	}}
}

func processingDetail(entry *domain.FactEntry) string {
	if entry != nil && entry.ProcessingTime != "" {
		return "Typical processing time: " + entry.ProcessingTime + "."
	}
	return "Processing times vary by consulate and season."
}

func renderRoadmap(plan domain.RoadmapPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Roadmap: %s (%s)\n", plan.Destination, plan.Goal)

	for i, path := range plan.Paths {
		fmt.Fprintf(&b, "\n%d. %s - about %d months (confidence %d/100)\n",
			i+1, path.RouteName, path.TotalMonths, path.Confidence)
		for j, step := range path.Steps {
			fmt.Fprintf(&b, "   %d.%d %s", i+1, j+1, step.Title)
			if step.Months > 0 {
				fmt.Fprintf(&b, " (~%d mo)", step.Months)
			}
			b.WriteString("\n")
			if step.Detail != "" {
				fmt.Fprintf(&b, "       %s\n", step.Detail)
			}
			if len(step.Documents) > 0 {
				fmt.Fprintf(&b, "       Documents: %s\n", strings.Join(step.Documents, ", "))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
