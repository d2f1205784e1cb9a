// Package urn generates, validates and resolves Uniform Resource Names for
// monographs and publication formats.
package urn

import (
	"strings"

	"github.com/lehigh-university-libraries/urnpubid/publication"
)

// SuffixStrategy selects how the variable part of a URN is derived.
type SuffixStrategy string

const (
	// SuffixDefault derives the suffix from the press path and object ids.
	SuffixDefault SuffixStrategy = "default"
	// SuffixPattern expands a per-type pattern such as "%p.%m.%f".
	SuffixPattern SuffixStrategy = "pattern"
)

// ParseSuffixStrategy maps a stored setting value to a strategy. Anything
// other than "pattern" falls back to the default strategy.
func ParseSuffixStrategy(s string) SuffixStrategy {
	if strings.EqualFold(strings.TrimSpace(s), string(SuffixPattern)) {
		return SuffixPattern
	}
	return SuffixDefault
}

// Config is the per-press URN configuration.
type Config struct {
	Prefix   string
	Suffix   SuffixStrategy
	Patterns map[publication.ObjectType]string
}

// Pattern returns the suffix pattern configured for an object type.
func (c Config) Pattern(typ publication.ObjectType) string {
	return c.Patterns[typ]
}

// PressResolver looks up a press by id.
type PressResolver interface {
	Press(id int64) (*publication.Press, bool)
}

// ConfigSource reads the URN configuration of a press.
type ConfigSource interface {
	Config(pressID int64) (Config, bool)
}

// Store reads and writes the URN persisted against an object.
type Store interface {
	StoredPubID(obj publication.Object) (string, bool)
	SetStoredPubID(obj publication.Object, typ publication.ObjectType, urn string) error
}

// Plugin identification, as registered with the host platform.
const (
	PluginName       = "URNPubIdPlugin"
	PubIDType        = "urn"
	PubIDDisplayType = "URN"
	PubIDFullName    = "Uniform Resource Name"
)

// FormFieldNames returns the editor form fields owned by the plugin.
func FormFieldNames() []string {
	return []string{"urnSuffix"}
}

// DAOFieldNames returns the object setting names the URN is stored under.
func DAOFieldNames() []string {
	return []string{"pub-id::" + PubIDType}
}
