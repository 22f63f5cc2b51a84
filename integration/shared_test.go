//go:build basic || database

// Package integration contains integration tests for perfgate.
// These tests are excluded from normal test runs due to build tags.
// To run: go test -tags basic ./integration
// Or for database backends: go test -tags database ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedPerfgatePath holds the path to a shared perfgate binary built once for all tests.
	sharedPerfgatePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getPerfgateBinary returns the path to the perfgate binary, building it once if needed.
func getPerfgateBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "perfgate-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		perfgatePath := filepath.Join(tempDir, "perfgate")
		buildCmd := exec.Command("go", "build", "-o", perfgatePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build perfgate: %v", err))
		}

		sharedPerfgatePath = perfgatePath
	})

	return sharedPerfgatePath
}

// runPerfgateCommand runs the shared binary in dir with args, returning
// combined output and the raw exec error (for exit code checks).
func runPerfgateCommand(t *testing.T, dir string, args ...string) (string, error) {
	perfgatePath := getPerfgateBinary()
	cmd := exec.Command(perfgatePath, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// writeTimingLog writes a JSONL timing log with one entry per duration.
func writeTimingLog(t *testing.T, logDir, testName string, durations []int64) {
	t.Helper()
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("failed to create log dir: %v", err)
	}
	var buf []byte
	for _, d := range durations {
		line := fmt.Sprintf(`{"test_name":%q,"duration_ms":%d,"timestamp":"2026-01-15T10:00:00Z"}`+"\n", testName, d)
		buf = append(buf, line...)
	}
	path := filepath.Join(logDir, testName+".jsonl")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("failed to write timing log: %v", err)
	}
}
