package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command against a fresh home directory and
// returns stdout and stderr.
func runCommand(t *testing.T, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--home", home))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// newTestHome returns a home directory whose config disables the assistant.
func newTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	cfg := "log_level: warn\nassistant:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return home
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "uniqyou") {
		t.Errorf("Help text should contain 'uniqyou', got: %s", output)
	}
	if !strings.Contains(output, "not a diagnosis") {
		t.Errorf("Help text should carry the disclaimer, got: %s", output)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	if cmd.Use != "uniqyou" {
		t.Errorf("Expected Use to be 'uniqyou', got '%s'", cmd.Use)
	}

	want := []string{"screen", "results", "reset", "consent", "prefs", "chat", "export", "mcp"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "home", "log-level", "store"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestInvalidStoreFlag(t *testing.T) {
	_, _, err := runCommand(t, newTestHome(t), "", "prefs", "--store", "postgres")
	if err == nil {
		t.Fatal("expected error for unknown store backend")
	}
	if !strings.Contains(err.Error(), "store.backend") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMalformedConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCommand(t, home, "", "prefs")
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected config load error, got %v", err)
	}
}
