package baselinestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"   // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"   // PostgreSQL driver
	_ "modernc.org/sqlite"               // SQLite driver

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// DefaultSQLitePath is the SQLite database location when no connection
// string is given.
const DefaultSQLitePath = ".baselines/perfgate.db"

// SQLStore persists the baseline document in a relational database.
// Like the file store it holds exactly one document: saving deletes
// every existing row before inserting the new document, so subset
// saves drop old tests instead of merging.
type SQLStore struct {
	db      *sql.DB
	backend schema.StoreBackend
	connStr string
}

var _ contract.BaselineStore = (*SQLStore)(nil) // Compile-time check

// NewSQLStore opens a connection for the given backend and runs any
// pending schema migrations.
func NewSQLStore(backend schema.StoreBackend, connStr string) (*SQLStore, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if err := migrateUp(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate baseline schema: %w", err)
	}

	return &SQLStore{db: db, backend: backend, connStr: connStr}, nil
}

// openDB opens the right driver for the backend without pinging.
func openDB(backend schema.StoreBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = DefaultSQLitePath
		}
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=perfgate
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}
}

// placeholder returns the parameter placeholder for position n (1-based).
func (ss *SQLStore) placeholder(n int) string {
	if ss.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// placeholders returns a comma-joined placeholder list for n parameters.
func (ss *SQLStore) placeholders(n int) string {
	out := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			out += ", "
		}
		out += ss.placeholder(i)
	}
	return out
}

// Load reads every per-test entry from the stored document. Schema or
// scan failures are wrapped in ErrCorruptBaseline so callers degrade to
// "no baseline available" with a warning.
func (ss *SQLStore) Load() (map[string]schema.TestBaseline, error) {
	baselines := make(map[string]schema.TestBaseline)

	rows, err := ss.db.Query(`SELECT test_name, mean_ms, median_ms, p95_ms, stddev_ms, sample_count, last_updated, platform FROM baseline_tests`)
	if err != nil {
		return baselines, fmt.Errorf("%w: %v", ErrCorruptBaseline, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var b schema.TestBaseline
		if err := rows.Scan(&b.TestName, &b.MeanMS, &b.MedianMS, &b.P95MS, &b.StddevMS, &b.SampleCount, &b.LastUpdated, &b.Platform); err != nil {
			return map[string]schema.TestBaseline{}, fmt.Errorf("%w: %v", ErrCorruptBaseline, err)
		}
		baselines[b.TestName] = b
	}
	if err := rows.Err(); err != nil {
		return map[string]schema.TestBaseline{}, fmt.Errorf("%w: %v", ErrCorruptBaseline, err)
	}
	return baselines, nil
}

// Save replaces the stored document transactionally: all existing rows
// are deleted before the new document is inserted.
func (ss *SQLStore) Save(doc schema.BaselineDocument) error {
	tx, err := ss.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM baseline_tests`); err != nil {
		return fmt.Errorf("failed to clear baseline tests: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM baseline_documents`); err != nil {
		return fmt.Errorf("failed to clear baseline document: %w", err)
	}

	docQuery := fmt.Sprintf(
		`INSERT INTO baseline_documents (doc_id, version, generated_at, platform, threshold) VALUES (%s)`,
		ss.placeholders(5))
	if _, err := tx.Exec(docQuery, 1, doc.Version, doc.GeneratedAt, doc.Platform, doc.Threshold); err != nil {
		return fmt.Errorf("failed to insert baseline document: %w", err)
	}

	testQuery := fmt.Sprintf(
		`INSERT INTO baseline_tests (test_name, mean_ms, median_ms, p95_ms, stddev_ms, sample_count, last_updated, platform) VALUES (%s)`,
		ss.placeholders(8))
	for name, b := range doc.Tests {
		if _, err := tx.Exec(testQuery, name, b.MeanMS, b.MedianMS, b.P95MS, b.StddevMS, b.SampleCount, b.LastUpdated, b.Platform); err != nil {
			return fmt.Errorf("failed to insert baseline for %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Status reports connection health and document metadata.
func (ss *SQLStore) Status() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ss.backend),
		Location:  ss.connStr,
		Connected: ss.db != nil,
	}
	if ss.db == nil {
		return status, nil
	}

	row := ss.db.QueryRow(`SELECT COUNT(*) FROM baseline_tests`)
	if err := row.Scan(&status.TestCount); err != nil {
		return status, fmt.Errorf("failed to count baseline tests: %w", err)
	}

	row = ss.db.QueryRow(`SELECT platform, generated_at FROM baseline_documents WHERE doc_id = 1`)
	if err := row.Scan(&status.Platform, &status.UpdatedAt); err != nil && err != sql.ErrNoRows {
		return status, fmt.Errorf("failed to read baseline document: %w", err)
	}
	return status, nil
}

// Close closes the underlying DB connection.
func (ss *SQLStore) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// Clear removes every stored row but keeps the schema in place.
func (ss *SQLStore) Clear() error {
	if _, err := ss.db.Exec(`DELETE FROM baseline_tests`); err != nil {
		return fmt.Errorf("failed to clear baseline tests: %w", err)
	}
	if _, err := ss.db.Exec(`DELETE FROM baseline_documents`); err != nil {
		return fmt.Errorf("failed to clear baseline document: %w", err)
	}
	return nil
}
