// Package facts provides the bundled country fact catalogue: an
// embedded JSON document of curated visa statements, with an optional
// override file that is hot-reloaded on change.
package facts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure Catalogue implements the interface.
var _ driven.FactCatalogue = (*Catalogue)(nil)

//go:embed countries.json
var bundled []byte

// catalogueDocument is the JSON shape of the catalogue file.
type catalogueDocument struct {
	Countries []domain.FactEntry `json:"countries"`
}

// Catalogue serves fact entries from the embedded document, or from
// an override file when one is configured. The override is watched;
// edits swap the entries in place, and a broken edit keeps the
// previous good set.
type Catalogue struct {
	mu      sync.RWMutex
	entries []domain.FactEntry
	byCode  map[string]int
	byName  map[string]int

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewCatalogue loads the embedded catalogue.
func NewCatalogue() (*Catalogue, error) {
	c := &Catalogue{}
	if err := c.setEntries(bundled); err != nil {
		return nil, fmt.Errorf("load bundled catalogue: %w", err)
	}
	return c, nil
}

// NewCatalogueWithOverride loads the override file instead of the
// bundled catalogue and watches it for changes. An unreadable
// override falls back to the bundled entries.
func NewCatalogueWithOverride(path string) (*Catalogue, error) {
	c, err := NewCatalogue()
	if err != nil {
		return nil, err
	}

	if data, err := os.ReadFile(path); err != nil {
		logger.Warn("Catalogue override unreadable, using bundled entries: %v", err)
	} else if err := c.setEntries(data); err != nil {
		logger.Warn("Catalogue override invalid, using bundled entries: %v", err)
	} else {
		logger.Info("Catalogue override loaded: %s (%d countries)", path, len(c.entries))
	}

	if err := c.watch(path); err != nil {
		logger.Warn("Catalogue watch unavailable: %v", err)
	}
	return c, nil
}

// setEntries parses a catalogue document and swaps it in atomically.
func (c *Catalogue) setEntries(data []byte) error {
	var doc catalogueDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Countries) == 0 {
		return fmt.Errorf("catalogue holds no countries")
	}

	byCode := make(map[string]int, len(doc.Countries))
	byName := make(map[string]int, len(doc.Countries))
	for i, entry := range doc.Countries {
		if entry.Code == "" || entry.CountryName == "" {
			return fmt.Errorf("entry %d missing code or name", i)
		}
		byCode[strings.ToUpper(entry.Code)] = i
		byName[strings.ToLower(entry.CountryName)] = i
	}

	c.mu.Lock()
	c.entries = doc.Countries
	c.byCode = byCode
	c.byName = byName
	c.mu.Unlock()
	return nil
}

// watch reloads the override file whenever it is written. Editors
// that replace the file (rename-over) remove the watch, so the path
// is re-added after such events.
func (c *Catalogue) watch(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}

	c.watcher = watcher
	c.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
					watcher.Add(path)
				}
				c.reload(path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Catalogue watch error: %v", err)
			case <-c.done:
				return
			}
		}
	}()
	return nil
}

// reload re-reads the override; failures keep the current entries.
func (c *Catalogue) reload(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Catalogue reload failed, keeping current entries: %v", err)
		return
	}
	if err := c.setEntries(data); err != nil {
		logger.Warn("Catalogue reload invalid, keeping current entries: %v", err)
		return
	}
	logger.Info("Catalogue reloaded: %d countries", len(c.All()))
}

// Close stops the override watcher, if any.
func (c *Catalogue) Close() error {
	if c.watcher == nil {
		return nil
	}
	close(c.done)
	return c.watcher.Close()
}

// All returns every catalogued entry.
func (c *Catalogue) All() []domain.FactEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.FactEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry for a country code.
func (c *Catalogue) Get(code string) (*domain.FactEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	entry := c.entries[i]
	return &entry, nil
}

// FindByName returns the entry whose country name matches,
// case-insensitively.
func (c *Catalogue) FindByName(name string) (*domain.FactEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	entry := c.entries[i]
	return &entry, nil
}

// Countries returns the catalogued country names, sorted.
func (c *Catalogue) Countries() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.CountryName)
	}
	sort.Strings(names)
	return names
}
