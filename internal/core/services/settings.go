package services

import (
	"fmt"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEmbedEnabled    = "embedding.enabled"
	keyEmbedModel      = "embedding.model"
	keyEmbedBaseURL    = "embedding.base_url"
	keyCompleteEnabled = "completion.enabled"
	keyCompleteModel   = "completion.model"
	keyCompleteBaseURL = "completion.base_url"
	keyIndexCap        = "index.cap"
	keyDataDir         = "data_dir"
	keyDisclaimer      = "disclaimer"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with defaults for unset
// keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Embedding: domain.EmbeddingSettings{
			Enabled: s.getBool(keyEmbedEnabled, defaults.Embedding.Enabled),
			Model:   s.getString(keyEmbedModel, defaults.Embedding.Model),
			BaseURL: s.getString(keyEmbedBaseURL, defaults.Embedding.BaseURL),
		},
		Completion: domain.CompletionSettings{
			Enabled: s.getBool(keyCompleteEnabled, defaults.Completion.Enabled),
			Model:   s.getString(keyCompleteModel, defaults.Completion.Model),
			BaseURL: s.getString(keyCompleteBaseURL, defaults.Completion.BaseURL),
		},
		Index: domain.IndexSettings{
			Cap: s.getInt(keyIndexCap, defaults.Index.Cap),
		},
		DataDir:    s.configStore.GetString(keyDataDir),
		Disclaimer: s.getBool(keyDisclaimer, defaults.Disclaimer),
	}

	if settings.Index.Cap <= 0 {
		settings.Index.Cap = defaults.Index.Cap
	}
	return settings, nil
}

// Update persists the given settings.
func (s *SettingsService) Update(settings *domain.AppSettings) error {
	pairs := map[string]any{
		keyEmbedEnabled:    settings.Embedding.Enabled,
		keyEmbedModel:      settings.Embedding.Model,
		keyEmbedBaseURL:    settings.Embedding.BaseURL,
		keyCompleteEnabled: settings.Completion.Enabled,
		keyCompleteModel:   settings.Completion.Model,
		keyCompleteBaseURL: settings.Completion.BaseURL,
		keyIndexCap:        settings.Index.Cap,
		keyDataDir:         settings.DataDir,
		keyDisclaimer:      settings.Disclaimer,
	}
	for key, value := range pairs {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return fallback
}
