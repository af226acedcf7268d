package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"resume-builder/internal/model"
)

// DefaultPath is the fixed durable-storage key: one JSON file holding
// the whole serialized document.
const DefaultPath = "resume_data.json"

// Store holds the single resume document and writes it through to disk
// on every section update. Reads return deep copies, so a reader never
// observes a partially applied update.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  model.Document
}

// Open loads the document from path. A missing file yields the default
// document; a corrupt or schema-invalid payload is logged and likewise
// falls back to the default. Open never fails.
func Open(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path, doc: model.DefaultDocument()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: unable to read %s, starting empty: %v", path, err)
		}
		return s
	}

	if err := model.ValidateBytes(raw); err != nil {
		log.Printf("warning: stored document at %s is corrupt, starting empty: %v", path, err)
		return s
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("warning: stored document at %s is unreadable, starting empty: %v", path, err)
		return s
	}
	doc.Normalize()
	s.doc = doc
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Document returns a deep copy of the current document.
func (s *Store) Document() model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// UpdateSection replaces one section wholesale and persists the full
// document synchronously. The in-memory document is updated even when
// the write fails, so user input is never lost; the error is returned
// for the caller to surface.
func (s *Store) UpdateSection(v model.SectionValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	next.Apply(v)
	s.doc = next

	if err := s.persist(next); err != nil {
		return fmt.Errorf("persist %s: %w", v.Section(), err)
	}
	return nil
}

// Clear removes the stored file and resets the document to its default.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = model.DefaultDocument()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear %s: %w", s.path, err)
	}
	return nil
}

// persist writes to a temp file in the same directory and renames it
// into place, so a crash mid-write cannot leave a partial document.
func (s *Store) persist(doc model.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".resume-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
