package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// eligibilityTool assesses how well the profile fits the destination's
// requirements for the chosen goal.
type eligibilityTool struct {
	deps toolDeps
}

func (t *eligibilityTool) intent() domain.Intent { return domain.IntentEligibility }

func (t *eligibilityTool) gate(in toolInput) []string {
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

const eligibilitySystemPrompt = `You are an immigration eligibility assistant.
Reply with ONLY JSON, no prose:
{"verdict":string,"strengths":[string],"gaps":[string],"confidence":int}
verdict is one short sentence. confidence is 1-100.`

func (t *eligibilityTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	result := domain.EligibilityReport{Destination: in.destination(), VisaGoal: in.goal()}
	var warnings []string

	userPrompt := fmt.Sprintf(
		"Applicant: nationality %s, education %s, %d years experience, work status %q, passport valid: %t. Goal: %s visa to %s.",
		in.profile.Nationality, in.profile.Education, in.profile.WorkYears,
		in.profile.WorkStatus, in.profile.PassportValidAt(time.Now()), in.goal(), in.destination())

	var model struct {
		Verdict    string   `json:"verdict"`
		Strengths  []string `json:"strengths"`
		Gaps       []string `json:"gaps"`
		Confidence int      `json:"confidence"`
	}
	if err := completeJSON(ctx, t.deps.llm, eligibilitySystemPrompt, userPrompt, &model); err == nil && model.Verdict != "" {
		result.Verdict = model.Verdict
		result.Strengths = model.Strengths
		result.Gaps = model.Gaps
		result.Confidence = model.Confidence
	} else {
		t.heuristicReport(in, &result)
		warnings = append(warnings, heuristicWarning)
	}
	result.Confidence = domain.ClampConfidence(result.Confidence)

	citations := t.deps.citationsFor(ctx,
		entry, fmt.Sprintf("%s %s visa eligibility requirements", in.destination(), in.goal()))

	return &toolOutput{
		payload:   result,
		rendered:  renderEligibility(result),
		citations: citations,
		warnings:  warnings,
	}, nil
}

// heuristicReport scores the profile against coarse, auditable checks.
func (t *eligibilityTool) heuristicReport(in toolInput, result *domain.EligibilityReport) {
	p := in.profile
	score := 50

	if p.PassportValidAt(time.Now()) {
		score += 10
		result.Strengths = append(result.Strengths, "passport satisfies the six-month validity rule")
	} else {
		score -= 15
		result.Gaps = append(result.Gaps, "passport missing or expiring within six months")
	}

	switch in.goal() {
	case "work":
		if p.WorkYears >= 3 {
			score += 15
			result.Strengths = append(result.Strengths, fmt.Sprintf("%d years of professional experience", p.WorkYears))
		} else {
			result.Gaps = append(result.Gaps, "less than three years of professional experience")
		}
		if p.Education == "Master" || p.Education == "PhD" || p.Education == "Bachelor" {
			score += 10
			result.Strengths = append(result.Strengths, "recognised degree ("+p.Education+")")
		}
	case "study":
		if p.Finances != "" {
			score += 10
			result.Strengths = append(result.Strengths, "declared funds for tuition and living costs")
		} else {
			result.Gaps = append(result.Gaps, "no proof of funds on file")
		}
	}

	if len(p.Languages) > 0 {
		score += 5
		result.Strengths = append(result.Strengths, "language skills: "+strings.Join(p.Languages, ", "))
	}

	result.Confidence = score
	switch {
	case score >= 70:
		result.Verdict = "You look like a strong candidate on the information available."
	case score >= 45:
		result.Verdict = "You may qualify, but there are gaps worth closing first."
	default:
		result.Verdict = "Eligibility looks difficult on the current information."
	}
}

func renderEligibility(r domain.EligibilityReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Eligibility: %s visa for %s (confidence %d/100)\n", r.VisaGoal, r.Destination, r.Confidence)
	fmt.Fprintf(&b, "%s\n", r.Verdict)
	if len(r.Strengths) > 0 {
		b.WriteString("Strengths:\n")
		for _, s := range r.Strengths {
			fmt.Fprintf(&b, "  + %s\n", s)
		}
	}
	if len(r.Gaps) > 0 {
		b.WriteString("Gaps:\n")
		for _, g := range r.Gaps {
			fmt.Fprintf(&b, "  - %s\n", g)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
