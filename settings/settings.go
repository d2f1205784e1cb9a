// Package settings manages per-press URN settings stored as YAML documents in
// <config-dir>/presses.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/urnpubid/publication"
	"github.com/lehigh-university-libraries/urnpubid/urn"
)

// ErrNotFound is returned when no settings document exists for a press.
var ErrNotFound = errors.New("press settings not found")

// PressSettings holds the URN configuration of a single press.
type PressSettings struct {
	// Press identifies the press the settings belong to
	Press publication.Press `yaml:"press"`

	// Enabled reports whether URN assignment is switched on for the press
	Enabled bool `yaml:"enabled"`

	// Prefix is prepended verbatim to every generated suffix (e.g. "urn:nbn:de:101-")
	Prefix string `yaml:"urn_prefix,omitempty"`

	// Suffix is the suffix strategy: "default" or "pattern"
	Suffix string `yaml:"urn_suffix,omitempty"`

	// Patterns holds the suffix patterns used by the "pattern" strategy
	Patterns Patterns `yaml:"patterns,omitempty"`
}

// Patterns are the per-type suffix patterns.
type Patterns struct {
	Monograph         string `yaml:"monograph,omitempty"`
	PublicationFormat string `yaml:"publication_format,omitempty"`
}

// URNConfig converts the stored settings into the generator configuration.
func (s *PressSettings) URNConfig() urn.Config {
	return urn.Config{
		Prefix: s.Prefix,
		Suffix: urn.ParseSuffixStrategy(s.Suffix),
		Patterns: map[publication.ObjectType]string{
			publication.ObjectTypeMonograph:         s.Patterns.Monograph,
			publication.ObjectTypePublicationFormat: s.Patterns.PublicationFormat,
		},
	}
}

// Repository reads and writes press settings under a configuration directory.
type Repository struct {
	dir string
}

// Ensure Repository serves the generator.
var (
	_ urn.PressResolver = (*Repository)(nil)
	_ urn.ConfigSource  = (*Repository)(nil)
)

// NewRepository creates a repository rooted at configDir.
func NewRepository(configDir string) *Repository {
	return &Repository{dir: configDir}
}

// PressesDir returns the directory holding press settings documents.
func (r *Repository) PressesDir() string {
	return filepath.Join(r.dir, "presses")
}

// Path returns the path for a press settings document.
func (r *Repository) Path(pressID int64) string {
	return filepath.Join(r.PressesDir(), strconv.FormatInt(pressID, 10)+".yaml")
}

// Save writes the settings to disk.
func (r *Repository) Save(s *PressSettings) error {
	if s.Press.ID <= 0 {
		return fmt.Errorf("invalid press id %d", s.Press.ID)
	}

	if err := os.MkdirAll(r.PressesDir(), 0755); err != nil {
		return fmt.Errorf("creating presses directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(r.Path(s.Press.ID), data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	return nil
}

// Load reads the settings of a press.
func (r *Repository) Load(pressID int64) (*PressSettings, error) {
	data, err := os.ReadFile(r.Path(pressID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("press %d: %w", pressID, ErrNotFound)
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s PressSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	return &s, nil
}

// List returns the ids of all configured presses in ascending order.
func (r *Repository) List() ([]int64, error) {
	entries, err := os.ReadDir(r.PressesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading presses directory: %w", err)
	}

	var ids []int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSuffix(name, ".yaml"), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Delete removes the settings of a press.
func (r *Repository) Delete(pressID int64) error {
	if err := os.Remove(r.Path(pressID)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("press %d: %w", pressID, ErrNotFound)
		}
		return fmt.Errorf("deleting settings: %w", err)
	}
	return nil
}

// Exists checks if settings exist for a press.
func (r *Repository) Exists(pressID int64) bool {
	_, err := os.Stat(r.Path(pressID))
	return err == nil
}

// FindByPath returns the settings of the press with the given path.
func (r *Repository) FindByPath(path string) (*PressSettings, error) {
	ids, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		s, err := r.Load(id)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(s.Press.Path, path) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("press %q: %w", path, ErrNotFound)
}

// Press implements urn.PressResolver.
func (r *Repository) Press(id int64) (*publication.Press, bool) {
	s, err := r.Load(id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("loading press settings", "press", id, "error", err)
		}
		return nil, false
	}
	press := s.Press
	return &press, true
}

// Config implements urn.ConfigSource.
func (r *Repository) Config(pressID int64) (urn.Config, bool) {
	s, err := r.Load(pressID)
	if err != nil {
		return urn.Config{}, false
	}
	return s.URNConfig(), true
}
