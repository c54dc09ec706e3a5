package files

import (
	"path/filepath"
	"testing"
)

func TestResolveBasePathPrefersExplicit(t *testing.T) {
	tmp := t.TempDir()
	explicit := filepath.Join(tmp, "flag-root")
	t.Setenv(RootEnv, filepath.Join(tmp, "env-root"))

	got, err := ResolveBasePath(explicit, filepath.Join(tmp, "config-root"))
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}
	if got != explicit {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, explicit)
	}
}

func TestResolveBasePathHonorsEnvOverConfig(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom-root")
	t.Setenv(RootEnv, custom)

	got, err := ResolveBasePath("", filepath.Join(tmp, "config-root"))
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, custom)
	}
}

func TestResolveBasePathFallsBackToConfig(t *testing.T) {
	tmp := t.TempDir()
	configured := filepath.Join(tmp, "config-root")
	t.Setenv(RootEnv, "  ")

	got, err := ResolveBasePath("", configured)
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}
	if got != configured {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, configured)
	}
}

func TestResolveBasePathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(RootEnv, "~/journal-data")

	got, err := ResolveBasePath("", "")
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(home, "journal-data")
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}

func TestResolveBasePathDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(RootEnv, "")

	got, err := ResolveBasePath("", "")
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName)
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}
