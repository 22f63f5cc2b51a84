// Package baselinestore persists baseline documents. The default
// backend is a single JSON file; SQL backends exist for teams that
// share baselines through a database.
package baselinestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// ErrCorruptBaseline marks a baseline document that could not be
// parsed. Callers treat it as "no baseline available" plus a warning;
// it never aborts a run.
var ErrCorruptBaseline = errors.New("corrupt baseline document")

// FileStore persists the baseline document as a JSON file.
type FileStore struct {
	path string
}

var _ contract.BaselineStore = (*FileStore)(nil) // Compile-time check

// NewFileStore returns a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the baseline document and returns its per-test entries.
// A missing file yields an empty map with no error. A malformed file
// yields an empty map and ErrCorruptBaseline so the caller can warn
// and continue as if no baseline existed.
func (fs *FileStore) Load() (map[string]schema.TestBaseline, error) {
	baselines := make(map[string]schema.TestBaseline)

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return baselines, nil
		}
		return baselines, fmt.Errorf("%w: %v", ErrCorruptBaseline, err)
	}

	var doc schema.BaselineDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return baselines, fmt.Errorf("%w: %v", ErrCorruptBaseline, err)
	}

	// Missing fields in the document default to zero values; the
	// classifier treats a zero p95 as a degenerate baseline.
	for name, baseline := range doc.Tests {
		baseline.TestName = name
		baselines[name] = baseline
	}
	return baselines, nil
}

// Save writes a full replacement document. Tests present in an older
// document but absent from doc are dropped, not merged.
func (fs *FileStore) Save(doc schema.BaselineDocument) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create baseline directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode baseline: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write baseline to %s: %w", fs.path, err)
	}
	return nil
}

// Status reports whether the file exists and what it contains.
func (fs *FileStore) Status() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:  string(schema.JSONBackend),
		Location: fs.path,
	}

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return status, nil
		}
		return status, err
	}

	var doc schema.BaselineDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return status, fmt.Errorf("%w: %v", ErrCorruptBaseline, err)
	}

	status.Connected = true
	status.TestCount = len(doc.Tests)
	status.Platform = doc.Platform
	status.UpdatedAt = doc.GeneratedAt
	return status, nil
}

// Close is a no-op for the file-backed store.
func (fs *FileStore) Close() error {
	return nil
}

// Clear removes the baseline file; a missing file is not an error.
func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove baseline file %s: %w", fs.path, err)
	}
	return nil
}
