// Package publication defines the publishable objects a press manages and
// that can carry a persistent identifier.
package publication

import (
	"fmt"
	"strings"
)

// ObjectType identifies a kind of publishable object.
type ObjectType int

const (
	// ObjectTypeUnspecified is the zero value and never identifies a real object.
	ObjectTypeUnspecified ObjectType = iota
	// ObjectTypeMonograph is a book-length work.
	ObjectTypeMonograph
	// ObjectTypePublicationFormat is one packaged output format of a monograph.
	ObjectTypePublicationFormat
)

// String returns the canonical name used in settings and storage keys.
func (t ObjectType) String() string {
	switch t {
	case ObjectTypeMonograph:
		return "monograph"
	case ObjectTypePublicationFormat:
		return "publication_format"
	default:
		return "unspecified"
	}
}

// ParseObjectType converts a name (as written by String, or a short alias)
// into an ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monograph", "book":
		return ObjectTypeMonograph, nil
	case "publication_format", "publicationformat", "format":
		return ObjectTypePublicationFormat, nil
	default:
		return ObjectTypeUnspecified, fmt.Errorf("unknown object type %q", s)
	}
}

// Press is the publishing context that owns monographs.
type Press struct {
	ID   int64  `yaml:"id" json:"id"`
	Path string `yaml:"path" json:"path"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Object is a publishable object. Only *Monograph and *PublicationFormat are
// supported by identifier generation; consumers switch on the concrete type.
type Object interface {
	// ObjectID returns the object's own identifier.
	ObjectID() int64
	// ContextID returns the identifier of the owning press.
	ContextID() int64
}

// Monograph is a book-length publishable work.
type Monograph struct {
	ID      int64
	PressID int64
}

// ObjectID returns the monograph id.
func (m *Monograph) ObjectID() int64 { return m.ID }

// ContextID returns the owning press id.
func (m *Monograph) ContextID() int64 { return m.PressID }

// PublicationFormat is one output format (PDF, EPUB, ...) of a monograph.
type PublicationFormat struct {
	ID          int64
	MonographID int64
	PressID     int64
}

// ObjectID returns the publication format id.
func (f *PublicationFormat) ObjectID() int64 { return f.ID }

// ContextID returns the owning press id.
func (f *PublicationFormat) ContextID() int64 { return f.PressID }

// TypeOf returns the ObjectType of a supported object, or
// ObjectTypeUnspecified for anything else (including typed nil pointers).
func TypeOf(obj Object) ObjectType {
	switch o := obj.(type) {
	case *Monograph:
		if o != nil {
			return ObjectTypeMonograph
		}
	case *PublicationFormat:
		if o != nil {
			return ObjectTypePublicationFormat
		}
	}
	return ObjectTypeUnspecified
}

// Key returns the storage key for an object, e.g. "monograph/42".
func Key(typ ObjectType, id int64) string {
	return fmt.Sprintf("%s/%d", typ, id)
}
