package contract

import "github.com/perfgate/perfgate/schema"

// BaselineStore is the persistence contract for baseline documents.
// Load returns an empty map when no baseline exists yet; a corrupt
// document also yields an empty map together with a warning error the
// caller surfaces without aborting. Save writes a full replacement
// document, dropping any test absent from it.
type BaselineStore interface {
	Load() (map[string]schema.TestBaseline, error)
	Save(doc schema.BaselineDocument) error
	Status() (schema.StoreStatus, error)
	Clear() error
	Close() error
}
