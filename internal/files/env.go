package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = "journal"

	// RootEnv overrides the configured root directory.
	RootEnv = "DAYSPLIT_ROOT"
)

// ResolveBasePath determines where split journals are written. The first
// non-empty candidate wins: the explicit value (usually the --root flag),
// DAYSPLIT_ROOT, the configured value, then ~/journal.
func ResolveBasePath(explicit, configured string) (string, error) {
	candidates := []string{explicit}
	if override, ok := os.LookupEnv(RootEnv); ok {
		candidates = append(candidates, override)
	}
	candidates = append(candidates, configured)

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		return normalizePath(candidate)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
