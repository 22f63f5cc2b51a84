//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPerfgateWithMySQL tests the perfgate CLI with a MySQL baseline backend.
func TestPerfgateWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "perfgate",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/perfgate?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("PERFGATE_BACKEND", "mysql")
	_ = os.Setenv("PERFGATE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("PERFGATE_BACKEND") }()
	defer func() { _ = os.Unsetenv("PERFGATE_DB_CONNECT") }()

	runBaselineLifecycle(t)
}

// TestPerfgateWithPostgres tests the perfgate CLI with a PostgreSQL baseline backend.
func TestPerfgateWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("PERFGATE_BACKEND", "postgresql")
	_ = os.Setenv("PERFGATE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("PERFGATE_BACKEND") }()
	defer func() { _ = os.Unsetenv("PERFGATE_DB_CONNECT") }()

	runBaselineLifecycle(t)
}

// runBaselineLifecycle drives update, status, check and clear against
// whatever backend the environment selects.
func runBaselineLifecycle(t *testing.T) {
	workDir := t.TempDir()
	logDir := filepath.Join(workDir, "logs")

	writeTimingLog(t, logDir, "checkout_flow", []int64{120, 125, 130, 122, 128})

	// Start from a clean slate
	_, err := runPerfgateCommand(t, workDir, "baseline", "clear")
	require.NoError(t, err)

	// Migrations run implicitly on store init; capture a baseline
	out, err := runPerfgateCommand(t, workDir, "baseline", "update", logDir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 tests")

	// Status shows the stored entry count
	out, err = runPerfgateCommand(t, workDir, "baseline", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests:     1")

	// Same timings: stable, exit 0
	_, err = runPerfgateCommand(t, workDir, "check", logDir)
	require.NoError(t, err)

	// Clear again and verify empty
	_, err = runPerfgateCommand(t, workDir, "baseline", "clear")
	require.NoError(t, err)
	out, err = runPerfgateCommand(t, workDir, "baseline", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests:     0")
}
