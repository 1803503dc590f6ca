package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// embassyTool points the user at the destination's official mission
// finder. The optional Locator narrows the guidance to the user's
// current country; its absence or failure is silent.
type embassyTool struct {
	deps    toolDeps
	locator driven.Locator
}

func (t *embassyTool) intent() domain.Intent { return domain.IntentEmbassy }

func (t *embassyTool) gate(in toolInput) []string {
	if in.destination() == "" {
		return []string{"destination country"}
	}
	return nil
}

func (t *embassyTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	result := domain.EmbassyInfo{Destination: in.destination()}
	if entry != nil {
		result.OfficialSiteURL = entry.OfficialSiteURL
	}

	near := in.profile.Residence
	if t.locator != nil {
		if country, err := t.locator.CurrentCountry(ctx); err == nil && country != "" {
			near = country
		} else if err != nil {
			logger.Debug("Location lookup unavailable: %v", err)
		}
	}

	if near != "" {
		result.Guidance = fmt.Sprintf(
			"Look up the %s embassy or consulate in %s via the official mission finder.",
			in.destination(), near)
	} else {
		result.Guidance = fmt.Sprintf(
			"Look up your nearest %s embassy or consulate via the official mission finder.",
			in.destination())
	}

	var citations []string
	if result.OfficialSiteURL != "" {
		citations = append(citations, result.OfficialSiteURL)
	}

	return &toolOutput{
		payload:   result,
		rendered:  renderEmbassy(result),
		citations: citations,
	}, nil
}

func renderEmbassy(e domain.EmbassyInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Embassy lookup: %s\n%s\n", e.Destination, e.Guidance)
	if e.OfficialSiteURL != "" {
		fmt.Fprintf(&b, "Official site: %s\n", e.OfficialSiteURL)
	}
	return strings.TrimRight(b.String(), "\n")
}
