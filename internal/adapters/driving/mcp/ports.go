package mcp

import (
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant drives conversational turns.
	Assistant driving.AssistantService

	// Retrieval exposes fact lookup.
	Retrieval driving.RetrievalService

	// Profile reads the local user profile.
	Profile driving.ProfileService

	// Catalogue is the bundled country fact base.
	Catalogue driven.FactCatalogue
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Retrieval, Profile and Catalogue are optional; the matching
	// tools and resources degrade when absent.
	return nil
}
