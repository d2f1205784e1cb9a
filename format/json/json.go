// Package json provides JSON output for identifier records, encoded through
// protobuf Struct values.
package json

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/urnpubid/format"
)

// Format implements the JSON format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON array of identifier records"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// Serialize writes records as a JSON array.
func (f *Format) Serialize(w io.Writer, records []*format.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	list, err := ToListValue(records)
	if err != nil {
		return err
	}

	marshal := protojson.MarshalOptions{}
	if opts.Pretty {
		marshal.Multiline = true
		marshal.Indent = "  "
	}

	data, err := marshal.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// ToStruct converts a record into a protobuf Struct.
func ToStruct(r *format.Record) (*structpb.Struct, error) {
	fields := map[string]any{
		"press_id":     r.PressID,
		"press_path":   r.PressPath,
		"object_type":  r.ObjectType,
		"object_id":    r.ObjectID,
		"monograph_id": r.MonographID,
		"urn":          r.URN,
		"valid":        r.Valid,
		"preview":      r.Preview,
	}
	if r.ResolvingURL != "" {
		fields["resolving_url"] = r.ResolvingURL
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("converting record %s: %w", r.URN, err)
	}
	return s, nil
}

// ToListValue converts records into a protobuf ListValue.
func ToListValue(records []*format.Record) (*structpb.ListValue, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(records))}
	for _, r := range records {
		s, err := ToStruct(r)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	return list, nil
}

func init() {
	format.Register(&Format{})
}
