// Package tui provides an interactive terminal chat interface for
// Wayfarer. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant drives the conversation.
	Assistant driving.AssistantService

	// Profile exposes the stored profile. Optional; the profile pane
	// stays empty when absent.
	Profile driving.ProfileService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	return nil
}
