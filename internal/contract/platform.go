package contract

import (
	"runtime"
	"strings"
)

// DetectPlatform returns the normalized "{os}-{arch}" tag for the
// current process. Baselines recorded on a different platform are never
// compared numerically against this run.
func DetectPlatform() string {
	return strings.ToLower(runtime.GOOS) + "-" + NormalizeArch(runtime.GOARCH)
}

// NormalizeArch folds equivalent architecture names into a single tag
// so the same hardware reported by different toolchains compares equal.
// Unknown architectures pass through lowercased.
func NormalizeArch(machine string) string {
	switch strings.ToLower(machine) {
	case "x86_64", "amd64":
		return "x64"
	case "aarch64", "arm64":
		return "arm64"
	default:
		return strings.ToLower(machine)
	}
}
