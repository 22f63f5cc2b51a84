package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the persistence backend for baselines.
	StoreBackend string
)

// BaselineVersion is the version tag written into every baseline document.
const BaselineVersion = "1.0"

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All baseline store backends supported.
const (
	JSONBackend       StoreBackend = "json" // default
	SQLiteBackend     StoreBackend = "sqlite"
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid baseline store backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	JSONBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
