package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/faizmokh/daysplit/internal/files"
)

func TestRootCommandSplitsPositionalExport(t *testing.T) {
	t.Setenv("DAYSPLIT_CONFIG_HOME", t.TempDir())
	t.Setenv(files.RootEnv, "")
	root := filepath.Join(t.TempDir(), "j")
	export := writeExport(t,
		"Date: February 14, 2005 at 9:00 AM",
		"Hello",
		"Date: February 15, 2005 at 9:00 AM",
		"World",
	)

	out := executeCommand(t, NewRootCommand(context.Background()), "--root", root, "--log-level", "off", export)
	assertContains(t, out, "Split 2 days into "+root)

	for day, want := range map[string]string{
		"journal_2005-02-14.md": "Hello\n",
		"journal_2005-02-15.md": "World\n",
	} {
		data, err := os.ReadFile(filepath.Join(root, "2005", "02", day))
		if err != nil {
			t.Fatalf("ReadFile %s: %v", day, err)
		}
		if string(data) != want {
			t.Fatalf("%s = %q, want %q", day, data, want)
		}
	}
}

func TestRootCommandUsesConfigFile(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("DAYSPLIT_CONFIG_HOME", configDir)
	t.Setenv(files.RootEnv, "")

	root := filepath.Join(t.TempDir(), "from-config")
	config := "root: " + root + "\nlog:\n  level: off\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(config), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	export := writeExport(t, "Date: March 1, 2006 at 1:00 PM", "Configured")

	executeCommand(t, NewRootCommand(context.Background()), "split", export)

	if _, err := os.Stat(filepath.Join(root, "2006", "03", "journal_2006-03-01.md")); err != nil {
		t.Fatalf("expected day file under configured root: %v", err)
	}

	out := executeCommand(t, NewRootCommand(context.Background()), "show", "--date", "2006-03-01")
	assertContains(t, out, "Configured")
}

func TestRootCommandRejectsBrokenConfig(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("DAYSPLIT_CONFIG_HOME", configDir)
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("root: [oops\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := runCommand(NewRootCommand(context.Background()), "list"); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}

func TestRootCommandWithoutArgsShowsHelp(t *testing.T) {
	t.Setenv("DAYSPLIT_CONFIG_HOME", t.TempDir())
	t.Setenv(files.RootEnv, t.TempDir())

	out := executeCommand(t, NewRootCommand(context.Background()))
	assertContains(t, out, "Usage:")
	assertContains(t, out, "daysplit [export-file]")
}
