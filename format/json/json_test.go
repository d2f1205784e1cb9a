package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lehigh-university-libraries/urnpubid/format"
)

func TestSerialize(t *testing.T) {
	records := []*format.Record{
		{PressID: 1, PressPath: "abc", ObjectType: "monograph", ObjectID: 42, MonographID: 42, URN: "urn:nbn:de:101-abc.42", Valid: true, Preview: true},
		{PressID: 1, PressPath: "abc", ObjectType: "publication_format", ObjectID: 7, MonographID: 42, URN: "urn:nbn:de:101-abc.42.7", ResolvingURL: "https://nbn-resolving.org/x"},
	}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, records, &format.SerializeOptions{Pretty: true}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0]["urn"] != "urn:nbn:de:101-abc.42" {
		t.Errorf("urn = %v", got[0]["urn"])
	}
	if got[0]["object_id"] != float64(42) {
		t.Errorf("object_id = %v", got[0]["object_id"])
	}
	if got[0]["preview"] != true {
		t.Errorf("preview = %v", got[0]["preview"])
	}
	if _, ok := got[0]["resolving_url"]; ok {
		t.Error("empty resolving_url should be omitted")
	}
	if got[1]["resolving_url"] != "https://nbn-resolving.org/x" {
		t.Errorf("resolving_url = %v", got[1]["resolving_url"])
	}
}

func TestToStruct(t *testing.T) {
	s, err := ToStruct(&format.Record{ObjectType: "monograph", URN: "urn:a"})
	if err != nil {
		t.Fatalf("ToStruct failed: %v", err)
	}
	if got := s.Fields["urn"].GetStringValue(); got != "urn:a" {
		t.Errorf("urn = %q", got)
	}
}
