// Package csv provides CSV output for identifier records.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/lehigh-university-libraries/urnpubid/format"
)

// Format implements the CSV format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma-separated values, one row per identifier"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

// Serialize writes records as CSV.
func (f *Format) Serialize(w io.Writer, records []*format.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if opts.IncludeHeader {
		if err := writer.Write(format.Columns); err != nil {
			return err
		}
	}

	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	format.Register(&Format{})
}
