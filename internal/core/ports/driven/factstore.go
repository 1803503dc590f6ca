package driven

import "github.com/custodia-labs/wayfarer-cli/internal/core/domain"

// FactCatalogue is the bundled, read-only country fact base.
// Loaded once at startup; entries are immutable afterwards.
type FactCatalogue interface {
	// All returns every catalogued entry.
	All() []domain.FactEntry

	// Get returns the entry for a country code.
	// Returns domain.ErrNotFound for unknown codes.
	Get(code string) (*domain.FactEntry, error)

	// FindByName returns the entry whose country name matches,
	// case-insensitively. Returns domain.ErrNotFound when absent.
	FindByName(name string) (*domain.FactEntry, error)

	// Countries returns the catalogued country names, sorted.
	Countries() []string
}
