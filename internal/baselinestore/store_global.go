package baselinestore

import (
	"sync"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// Global store instance for main logic.
var (
	store     contract.BaselineStore
	initOnce  sync.Once
	closeOnce sync.Once
)

// NewStore builds a baseline store for the configured backend without
// touching global state; the JSON file backend is the default.
func NewStore(backend schema.StoreBackend, baselinePath, connStr string) (contract.BaselineStore, error) {
	if backend == schema.JSONBackend {
		return NewFileStore(baselinePath), nil
	}
	return NewSQLStore(backend, connStr)
}

// InitStore initializes the global baseline store exactly once, even
// with concurrent calls.
func InitStore(backend schema.StoreBackend, baselinePath, connStr string) error {
	var initErr error
	initOnce.Do(func() {
		store, initErr = NewStore(backend, baselinePath, connStr)
	})
	return initErr
}

// GetStore returns the global baseline store, nil before InitStore.
func GetStore() contract.BaselineStore {
	return store
}

// ClearStore drops the stored baseline via the global store.
func ClearStore() error {
	if store == nil {
		return nil
	}
	return store.Clear()
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		if store != nil {
			_ = store.Close()
		}
	})
}
