package driving

import "github.com/custodia-labs/wayfarer-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults for
	// unset keys.
	Get() (*domain.AppSettings, error)

	// Update persists the given settings.
	Update(settings *domain.AppSettings) error
}
