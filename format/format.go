// Package format defines the output formats for identifier records.
package format

import (
	"io"
	"strconv"
)

// Record is one identifier assignment result, ready for output.
type Record struct {
	PressID      int64  `yaml:"press_id" json:"press_id"`
	PressPath    string `yaml:"press_path" json:"press_path"`
	ObjectType   string `yaml:"object_type" json:"object_type"`
	ObjectID     int64  `yaml:"object_id" json:"object_id"`
	MonographID  int64  `yaml:"monograph_id" json:"monograph_id"`
	URN          string `yaml:"urn" json:"urn"`
	ResolvingURL string `yaml:"resolving_url,omitempty" json:"resolving_url,omitempty"`
	Valid        bool   `yaml:"valid" json:"valid"`
	Preview      bool   `yaml:"preview" json:"preview"`
}

// Columns are the record fields in output order.
var Columns = []string{
	"press_id", "press_path", "object_type", "object_id", "monograph_id",
	"urn", "resolving_url", "valid", "preview",
}

// Format defines the interface that all output formats implement.
type Format interface {
	// Name returns the format identifier (e.g., "json", "csv")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Serializer is a format that can write identifier records.
type Serializer interface {
	Format

	// Serialize writes records to the output.
	Serialize(w io.Writer, records []*Record, opts *SerializeOptions) error
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool

	// Pretty enables pretty-printing (for JSON)
	Pretty bool
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		IncludeHeader: true,
	}
}

// Values returns the record fields as strings, in Columns order.
func (r *Record) Values() []string {
	return []string{
		strconv.FormatInt(r.PressID, 10),
		r.PressPath,
		r.ObjectType,
		strconv.FormatInt(r.ObjectID, 10),
		strconv.FormatInt(r.MonographID, 10),
		r.URN,
		r.ResolvingURL,
		strconv.FormatBool(r.Valid),
		strconv.FormatBool(r.Preview),
	}
}
