// Package version exposes build metadata injected with -ldflags, e.g.
// -X github.com/faizmokh/daysplit/internal/version.Version=1.0.0
package version

import (
	"fmt"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version string shown by --version. Local builds without
// metadata report just the version.
func Info() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	shortCommit := Commit
	if len(shortCommit) > 7 {
		shortCommit = shortCommit[:7]
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, shortCommit, Date)
}
