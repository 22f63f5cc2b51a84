package contract

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DateTimeFormat is the second-precision UTC timestamp written into
// baseline and report documents.
const DateTimeFormat = "2006-01-02T15:04:05Z"

// TimestampUTC returns the current time formatted for persistence.
func TimestampUTC() string {
	return time.Now().UTC().Format(DateTimeFormat)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr. A nil error logs the
// message alone.
func LogWarn(msg string, err error) {
	if err == nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warn %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateName truncates a test name to a maximum width with ellipsis
// prefix. Requires maxWidth > 3 so there is room for "..." plus at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
