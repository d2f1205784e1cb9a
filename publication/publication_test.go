package publication

import "testing"

type otherObject struct{}

func (otherObject) ObjectID() int64  { return 1 }
func (otherObject) ContextID() int64 { return 1 }

func TestTypeOf(t *testing.T) {
	var nilMonograph *Monograph

	tests := []struct {
		name string
		obj  Object
		want ObjectType
	}{
		{"monograph", &Monograph{ID: 42, PressID: 1}, ObjectTypeMonograph},
		{"publication format", &PublicationFormat{ID: 7, MonographID: 42, PressID: 1}, ObjectTypePublicationFormat},
		{"other variant", otherObject{}, ObjectTypeUnspecified},
		{"typed nil", nilMonograph, ObjectTypeUnspecified},
		{"nil", nil, ObjectTypeUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.obj); got != tt.want {
				t.Errorf("TypeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseObjectType(t *testing.T) {
	tests := []struct {
		in      string
		want    ObjectType
		wantErr bool
	}{
		{"monograph", ObjectTypeMonograph, false},
		{"Format", ObjectTypePublicationFormat, false},
		{"publication_format", ObjectTypePublicationFormat, false},
		{"chapter", ObjectTypeUnspecified, true},
	}

	for _, tt := range tests {
		got, err := ParseObjectType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseObjectType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseObjectType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key(ObjectTypePublicationFormat, 7); got != "publication_format/7" {
		t.Errorf("Key() = %q, want %q", got, "publication_format/7")
	}
}
