package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/urnpubid/format"
)

func TestSerialize(t *testing.T) {
	records := []*format.Record{{PressPath: "abc", ObjectType: "monograph", ObjectID: 42, URN: "urn:nbn:de:101-abc.42", Preview: true}}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, records, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "PRESS") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "urn:nbn:de:101-abc.42") || !strings.Contains(out, "(preview)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
