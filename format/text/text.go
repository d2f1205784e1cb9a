// Package text provides aligned, human-readable output for identifier records.
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lehigh-university-libraries/urnpubid/format"
)

// Format implements the text format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "text"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Aligned table for terminals"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"txt"}
}

// Serialize writes records as a table of type, id and URN.
func (f *Format) Serialize(w io.Writer, records []*format.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if opts.IncludeHeader {
		fmt.Fprintln(tw, "PRESS\tTYPE\tID\tURN\tRESOLVER")
	}
	for _, r := range records {
		note := r.ResolvingURL
		if r.Preview {
			note += " (preview)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.PressPath, r.ObjectType, r.ObjectID, r.URN, note)
	}
	return tw.Flush()
}

func init() {
	format.Register(&Format{})
}
