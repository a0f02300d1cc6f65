// Package store implements the document store collaborator: one JSON array
// file per logical collection, whole-collection overwrite on every save.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DocStore abstracts the backing document store keyed by collection name.
type DocStore interface {
	// Load decodes the named collection into v. A missing, unreadable or
	// malformed backing file is recovered locally: v is left untouched
	// (empty collection) and no error is returned.
	Load(ctx context.Context, coleccion string, v interface{}) error
	// Save overwrites the named collection atomically: readers observe
	// either the previous full content or the new one, never a partial write.
	Save(ctx context.Context, coleccion string, v interface{}) error
}

// FileStore persists each collection as <dir>/<coleccion>.json.
type FileStore struct {
	dir string
	log zerolog.Logger
}

func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) ruta(coleccion string) string {
	return filepath.Join(s.dir, coleccion+".json")
}

func (s *FileStore) Load(_ context.Context, coleccion string, v interface{}) error {
	data, err := os.ReadFile(s.ruta(coleccion))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Str("coleccion", coleccion).Err(err).Msg("colección ilegible, se usa colección vacía")
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn().Str("coleccion", coleccion).Err(err).Msg("colección corrupta, se usa colección vacía")
		return nil
	}
	return nil
}

func (s *FileStore) Save(_ context.Context, coleccion string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never corrupts the collection.
	tmp := s.ruta(coleccion) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.ruta(coleccion))
}
