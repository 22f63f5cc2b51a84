// Package ingest discovers and parses timing inputs: JSONL test logs
// and benchmark estimate files. It is plumbing around the engine; bad
// input units are skipped with a warning, never fatal.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/perfgate/perfgate/schema"
)

// logEntry is the loosely-shaped line format of a JSONL test log.
// Two producer formats exist: the e2e logger writes duration_ms, the
// global test logger writes elapsed_ms. Unknown fields are ignored and
// missing fields default to zero.
type logEntry struct {
	TestName   string `json:"test_name"`
	DurationMS int64  `json:"duration_ms"`
	ElapsedMS  int64  `json:"elapsed_ms"`
	Timestamp  string `json:"timestamp"`
}

// ParseLogs parses every *.jsonl file under logDir into timing records.
// Each file contributes at most one record: the maximum duration seen
// in the file, which represents the total test time. Files that cannot
// be read or parsed are skipped whole, with a warning appended for the
// caller to surface.
func ParseLogs(logDir, platform string) ([]schema.TimingRecord, []string) {
	var records []schema.TimingRecord
	var warnings []string

	if _, err := os.Stat(logDir); err != nil {
		return records, warnings
	}

	paths, err := filepath.Glob(filepath.Join(logDir, "*.jsonl"))
	if err != nil {
		return records, warnings
	}
	sort.Strings(paths)

	for _, path := range paths {
		record, err := parseLogFile(path, platform)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not parse %s: %v", path, err))
			continue
		}
		if record != nil {
			records = append(records, *record)
		}
	}
	return records, warnings
}

// parseLogFile reads one JSONL log. It returns nil when the file holds
// no positive duration, and an error when any line is malformed.
func parseLogFile(path, platform string) (*schema.TimingRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	testName := TestNameFromFilename(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	var maxDuration int64
	var timestamp string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry logEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}

		duration := entry.DurationMS
		if duration == 0 {
			duration = entry.ElapsedMS
		}
		if duration > maxDuration {
			maxDuration = duration
			timestamp = entry.Timestamp
		}

		// An explicit test name in a result entry overrides the
		// filename-derived one.
		if entry.TestName != "" && entry.DurationMS != 0 {
			testName = entry.TestName
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if maxDuration <= 0 {
		return nil, nil
	}
	return &schema.TimingRecord{
		TestName:   testName,
		DurationMS: maxDuration,
		Timestamp:  timestamp,
		Platform:   platform,
	}, nil
}

// TestNameFromFilename derives a test name from a log filename stem,
// stripping a trailing timestamp suffix (test_name_YYYYMMDD_HHMMSS).
// The check is on segment length only, so a test name that happens to
// end in an 8-char and a 6-char segment is misdetected. Known
// limitation of the log naming convention, kept rather than guessed at.
func TestNameFromFilename(stem string) string {
	i := strings.LastIndex(stem, "_")
	if i < 0 {
		return stem
	}
	last := stem[i+1:]

	rest := stem[:i]
	j := strings.LastIndex(rest, "_")
	if j < 0 {
		return stem
	}
	second := rest[j+1:]

	if len(last) == 6 && len(second) == 8 {
		return rest[:j]
	}
	return stem
}
