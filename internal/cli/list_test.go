package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestListCommandShowsDays(t *testing.T) {
	env := newTestEnv(t)
	splitFixture(t, env)

	out := executeCommand(t, newListCommand(context.Background(), env))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two days, got %q", out)
	}
	want := "2005-02-14  " + filepath.Join(env.manager.BasePath(), "2005", "02", "journal_2005-02-14.md")
	if lines[0] != want {
		t.Fatalf("first line = %q, want %q", lines[0], want)
	}
}

func TestListCommandFiltersRange(t *testing.T) {
	env := newTestEnv(t)
	splitFixture(t, env)

	out := executeCommand(t, newListCommand(context.Background(), env), "--from", "2005-02-15")
	assertContains(t, out, "2005-02-15")
	assertNotContains(t, out, "2005-02-14")

	out = executeCommand(t, newListCommand(context.Background(), env), "--to", "2005-02-01")
	assertContains(t, out, "No journals under")
}

func TestListCommandRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	if _, err := runCommand(newListCommand(context.Background(), env), "--from", "yesterday"); err == nil {
		t.Fatalf("expected an error for a non-ISO date")
	}
}
