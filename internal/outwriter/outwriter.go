// Package outwriter has output and writer logic for reports.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/perfgate/perfgate/internal/contract"
	"golang.org/x/term"
)

// Status label constants.
const (
	FailLabel = "FAIL"
	OKLabel   = "OK"
	NewLabel  = "NEW"
)

// Color variables for console output.
var (
	FailColor = color.New(color.FgRed, color.Bold)   // regressions block the build
	OKColor   = color.New(color.FgGreen)             // improvements and passes
	NewColor  = color.New(color.FgYellow)            // unclassifiable tests need a look
)

// statusLabel returns the status text, colored when enabled.
func statusLabel(label string, useColors bool) string {
	if !useColors {
		return label
	}
	switch label {
	case FailLabel:
		return FailColor.Sprint(label)
	case OKLabel:
		return OKColor.Sprint(label)
	default:
		return NewColor.Sprint(label)
	}
}

// getMaxTableNameWidth calculates the maximum width for test names in
// table output based on terminal width and the fixed numeric columns.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns plus borders and padding.
	available := termWidth - 50
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// writeWithFile handles the common pattern of opening a file, writing
// to it, and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
