package baselinestore

import (
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// MockStore is an in-memory BaselineStore for tests.
type MockStore struct {
	Doc      schema.BaselineDocument
	LoadErr  error
	SaveErr  error
	SaveCall int
}

var _ contract.BaselineStore = (*MockStore)(nil) // Compile-time check

// Load returns the in-memory document entries, or LoadErr if set.
func (ms *MockStore) Load() (map[string]schema.TestBaseline, error) {
	baselines := make(map[string]schema.TestBaseline)
	if ms.LoadErr != nil {
		return baselines, ms.LoadErr
	}
	for name, baseline := range ms.Doc.Tests {
		baseline.TestName = name
		baselines[name] = baseline
	}
	return baselines, nil
}

// Save replaces the in-memory document, mirroring the full-overwrite
// semantics of the real stores.
func (ms *MockStore) Save(doc schema.BaselineDocument) error {
	ms.SaveCall++
	if ms.SaveErr != nil {
		return ms.SaveErr
	}
	ms.Doc = doc
	return nil
}

// Status reports the in-memory document metadata.
func (ms *MockStore) Status() (schema.StoreStatus, error) {
	return schema.StoreStatus{
		Backend:   "mock",
		Connected: true,
		TestCount: len(ms.Doc.Tests),
		Platform:  ms.Doc.Platform,
		UpdatedAt: ms.Doc.GeneratedAt,
	}, nil
}

// Clear drops the in-memory document.
func (ms *MockStore) Clear() error {
	ms.Doc = schema.BaselineDocument{}
	return nil
}

// Close is a no-op for the mock store.
func (ms *MockStore) Close() error {
	return nil
}
