package settings

import (
	"errors"
	"os"
	"testing"

	"github.com/lehigh-university-libraries/urnpubid/publication"
	"github.com/lehigh-university-libraries/urnpubid/urn"
)

func sampleSettings(id int64, path string) *PressSettings {
	return &PressSettings{
		Press:   publication.Press{ID: id, Path: path, Name: "Test Press"},
		Enabled: true,
		Prefix:  "urn:nbn:de:101-",
		Suffix:  "pattern",
		Patterns: Patterns{
			Monograph:         "%p.%m",
			PublicationFormat: "%p.%m.%f",
		},
	}
}

func TestRepository_SaveLoad(t *testing.T) {
	repo := NewRepository(t.TempDir())

	if err := repo.Save(sampleSettings(3, "ABC")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(3)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Press.Path != "ABC" || got.Prefix != "urn:nbn:de:101-" {
		t.Errorf("Load() = %+v", got)
	}
	if got.Patterns.PublicationFormat != "%p.%m.%f" {
		t.Errorf("PublicationFormat pattern = %q", got.Patterns.PublicationFormat)
	}
	if !repo.Exists(3) {
		t.Error("Exists(3) = false, want true")
	}
}

func TestRepository_SaveRejectsInvalidID(t *testing.T) {
	repo := NewRepository(t.TempDir())
	if err := repo.Save(&PressSettings{}); err == nil {
		t.Error("expected error for press id 0")
	}
}

func TestRepository_LoadMissing(t *testing.T) {
	repo := NewRepository(t.TempDir())

	_, err := repo.Load(9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	if _, ok := repo.Press(9); ok {
		t.Error("Press(9) should not resolve")
	}
	if _, ok := repo.Config(9); ok {
		t.Error("Config(9) should not resolve")
	}
}

func TestRepository_ListAndDelete(t *testing.T) {
	repo := NewRepository(t.TempDir())

	ids, err := repo.List()
	if err != nil || len(ids) != 0 {
		t.Fatalf("List() on empty dir = %v, %v", ids, err)
	}

	for _, id := range []int64{10, 2} {
		if err := repo.Save(sampleSettings(id, "p")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// Files that are not press documents are ignored.
	if err := os.WriteFile(repo.PressesDir()+"/notes.yaml", []byte("x: 1"), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err = repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 10 {
		t.Errorf("List() = %v, want [2 10]", ids)
	}

	if err := repo.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_FindByPath(t *testing.T) {
	repo := NewRepository(t.TempDir())
	if err := repo.Save(sampleSettings(1, "ABC")); err != nil {
		t.Fatal(err)
	}

	s, err := repo.FindByPath("abc")
	if err != nil {
		t.Fatalf("FindByPath failed: %v", err)
	}
	if s.Press.ID != 1 {
		t.Errorf("FindByPath() press id = %d, want 1", s.Press.ID)
	}
	if _, err := repo.FindByPath("xyz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByPath(xyz) error = %v, want ErrNotFound", err)
	}
}

func TestRepository_ServesGenerator(t *testing.T) {
	repo := NewRepository(t.TempDir())
	if err := repo.Save(sampleSettings(1, "ABC")); err != nil {
		t.Fatal(err)
	}

	press, ok := repo.Press(1)
	if !ok || press.Path != "ABC" {
		t.Fatalf("Press(1) = %v, %v", press, ok)
	}

	cfg, ok := repo.Config(1)
	if !ok {
		t.Fatal("Config(1) not found")
	}
	if cfg.Suffix != urn.SuffixPattern {
		t.Errorf("Suffix = %q, want pattern", cfg.Suffix)
	}
	if got := cfg.Pattern(publication.ObjectTypeMonograph); got != "%p.%m" {
		t.Errorf("monograph pattern = %q", got)
	}
}
