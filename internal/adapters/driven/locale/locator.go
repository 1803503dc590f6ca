// Package locale resolves the user's approximate country from the
// process locale. Fully offline: no network lookup, just the
// environment the OS already exposes.
package locale

import (
	"context"
	"os"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure Locator implements the interface.
var _ driven.Locator = (*Locator)(nil)

// regionNames maps ISO 3166-1 alpha-2 region codes seen in POSIX
// locales to country names matching the fact catalogue.
var regionNames = map[string]string{
	"AE": "United Arab Emirates",
	"AU": "Australia",
	"CA": "Canada",
	"DE": "Germany",
	"GB": "United Kingdom",
	"JP": "Japan",
	"PT": "Portugal",
	"US": "United States",
}

// Locator derives the current country from the LC_ALL/LANG locale
// variables (e.g. "de_DE.UTF-8" resolves to Germany).
type Locator struct {
	lookup func(string) string
}

// NewLocator creates a locale-based locator.
func NewLocator() *Locator {
	return &Locator{lookup: os.Getenv}
}

// CurrentCountry returns the country the locale points at.
// Returns domain-neutral empty string with an error when the locale
// carries no recognisable region.
func (l *Locator) CurrentCountry(_ context.Context) (string, error) {
	for _, key := range []string{"LC_ALL", "LANG"} {
		if name := regionFromLocale(l.lookup(key)); name != "" {
			return name, nil
		}
	}
	return "", ErrUnknownRegion
}

// regionFromLocale extracts the region from a POSIX locale string.
// "en_GB.UTF-8" yields "United Kingdom"; "C" and "POSIX" yield "".
func regionFromLocale(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	_, region, ok := strings.Cut(locale, "_")
	if !ok {
		return ""
	}
	return regionNames[strings.ToUpper(region)]
}
