package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocator(env map[string]string) *Locator {
	return &Locator{lookup: func(key string) string { return env[key] }}
}

func TestLocator_CurrentCountry(t *testing.T) {
	t.Run("resolves LANG region", func(t *testing.T) {
		l := newTestLocator(map[string]string{"LANG": "de_DE.UTF-8"})

		country, err := l.CurrentCountry(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Germany", country)
	})

	t.Run("LC_ALL wins over LANG", func(t *testing.T) {
		l := newTestLocator(map[string]string{
			"LC_ALL": "pt_PT.UTF-8",
			"LANG":   "de_DE.UTF-8",
		})

		country, err := l.CurrentCountry(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Portugal", country)
	})

	t.Run("falls through unusable LC_ALL", func(t *testing.T) {
		l := newTestLocator(map[string]string{
			"LC_ALL": "C",
			"LANG":   "en_GB.UTF-8",
		})

		country, err := l.CurrentCountry(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "United Kingdom", country)
	})

	t.Run("no region returns error", func(t *testing.T) {
		l := newTestLocator(map[string]string{"LANG": "POSIX"})

		_, err := l.CurrentCountry(context.Background())

		assert.ErrorIs(t, err, ErrUnknownRegion)
	})

	t.Run("unknown region returns error", func(t *testing.T) {
		l := newTestLocator(map[string]string{"LANG": "fr_FR.UTF-8"})

		_, err := l.CurrentCountry(context.Background())

		assert.ErrorIs(t, err, ErrUnknownRegion)
	})
}

func TestRegionFromLocale(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"en_US.UTF-8", "United States"},
		{"ja_JP", "Japan"},
		{"en_au.UTF-8", "Australia"},
		{"C", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, regionFromLocale(tt.locale), tt.locale)
	}
}
