// Package store keeps the URNs assigned to publishable objects.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/urnpubid/publication"
	"github.com/lehigh-university-libraries/urnpubid/urn"
)

// Ensure both stores serve the generator.
var (
	_ urn.Store = (*Memory)(nil)
	_ urn.Store = (*File)(nil)
)

// Memory is an in-memory URN store.
type Memory struct {
	mu     sync.Mutex
	ids    map[string]string
	writes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{ids: make(map[string]string)}
}

// StoredPubID returns the URN stored for obj.
func (m *Memory) StoredPubID(obj publication.Object) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.ids[key(obj)]
	return id, ok
}

// SetStoredPubID stores a URN for obj.
func (m *Memory) SetStoredPubID(obj publication.Object, typ publication.ObjectType, urn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	m.ids[publication.Key(typ, obj.ObjectID())] = urn
	return nil
}

// Writes returns the number of SetStoredPubID calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// document is the on-disk layout of a File store.
type document struct {
	URNs map[string]string `yaml:"pub-id::urn"`
}

// File is a URN store persisted as a YAML document.
type File struct {
	mu     sync.Mutex
	path   string
	doc    document
	writes int
}

// OpenFile loads the store at path. A missing file yields an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, doc: document{URNs: make(map[string]string)}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	if err := yaml.Unmarshal(data, &f.doc); err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}
	if f.doc.URNs == nil {
		f.doc.URNs = make(map[string]string)
	}

	return f, nil
}

// Path returns the location of the store document.
func (f *File) Path() string {
	return f.path
}

// StoredPubID returns the URN stored for obj.
func (f *File) StoredPubID(obj publication.Object) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.doc.URNs[key(obj)]
	return id, ok
}

// SetStoredPubID stores a URN for obj and rewrites the document.
func (f *File) SetStoredPubID(obj publication.Object, typ publication.ObjectType, urn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++

	k := publication.Key(typ, obj.ObjectID())
	prev, had := f.doc.URNs[k]
	f.doc.URNs[k] = urn

	if err := f.flush(); err != nil {
		if had {
			f.doc.URNs[k] = prev
		} else {
			delete(f.doc.URNs, k)
		}
		return err
	}
	return nil
}

// Entries returns a copy of all stored URNs keyed by "type/id".
func (f *File) Entries() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.doc.URNs))
	for k, v := range f.doc.URNs {
		out[k] = v
	}
	return out
}

// Writes returns the number of SetStoredPubID calls.
func (f *File) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := yaml.Marshal(&f.doc)
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

func key(obj publication.Object) string {
	return publication.Key(publication.TypeOf(obj), obj.ObjectID())
}
