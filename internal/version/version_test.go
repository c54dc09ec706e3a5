package version

import "testing"

func TestInfo(t *testing.T) {
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	if got := Info(); got != "dev" {
		t.Fatalf("Info() = %q, want %q", got, "dev")
	}

	Version, Commit, Date = "1.2.0", "0123456789abcdef", "2025-11-02"
	want := "1.2.0 (commit 0123456, built 2025-11-02)"
	if got := Info(); got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}
}
