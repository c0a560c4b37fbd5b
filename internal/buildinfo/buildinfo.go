// Package buildinfo carries build identifiers set via -ldflags.
package buildinfo

import "fmt"

// Name is the product name shown in the window title and the log banner.
const Name = "arplace"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Banner is the one-line startup log entry.
func Banner() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, Commit, Date)
}
