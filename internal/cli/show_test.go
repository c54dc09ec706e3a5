package cli

import (
	"context"
	"strings"
	"testing"
)

func splitFixture(t *testing.T, env *environment) {
	t.Helper()
	export := writeExport(t,
		"Date: February 14, 2005 at 9:00 AM",
		"Dear diary,",
		"",
		"Photo: 2005-02-14.jpg",
		"Date: February 15, 2005 at 9:00 AM",
		"World",
	)
	executeCommand(t, newSplitCommand(context.Background(), env), export)
}

func TestShowCommandPrintsDay(t *testing.T) {
	env := newTestEnv(t)
	splitFixture(t, env)

	out := executeCommand(t, newShowCommand(context.Background(), env), "--date", "2005-02-14")
	assertContains(t, out, "2005-02-14\n──────────\n")
	assertContains(t, out, "Dear diary,\n\n\n![](2005-02-14.jpg)\n")
	assertNotContains(t, out, "World")
}

func TestShowCommandRendersHTML(t *testing.T) {
	env := newTestEnv(t)
	splitFixture(t, env)

	out := executeCommand(t, newShowCommand(context.Background(), env), "--date", "2005-02-14", "--html")
	assertContains(t, out, "<p>Dear diary,</p>")
	assertContains(t, out, `<img src="2005-02-14.jpg" alt="">`)
}

func TestShowCommandWithoutJournal(t *testing.T) {
	env := newTestEnv(t)

	out := executeCommand(t, newShowCommand(context.Background(), env), "--date", "2005-03-01")
	if strings.TrimSpace(out) != "No journal for 2005-03-01" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestShowCommandRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	if _, err := runCommand(newShowCommand(context.Background(), env), "--date", "14/02/2005"); err == nil {
		t.Fatalf("expected an error for a non-ISO date")
	}
}
