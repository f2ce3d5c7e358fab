package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsent_AllowAndRevoke(t *testing.T) {
	home := newTestHome(t)

	out, _, err := runCommand(t, home, "", "consent", "--allow-ai-chat")
	if err != nil {
		t.Fatalf("consent failed: %v", err)
	}
	if !strings.Contains(out, "Consent recorded.") || !strings.Contains(out, "will be shared") {
		t.Errorf("unexpected consent output: %s", out)
	}

	out, _, _ = runCommand(t, home, "", "prefs")
	if !strings.Contains(out, "allow-ai-chat: true") || !strings.Contains(out, "consent:       true") {
		t.Errorf("consent and sharing should be saved, got: %s", out)
	}

	if _, _, err := runCommand(t, home, "", "consent", "--revoke"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	out, _, _ = runCommand(t, home, "", "prefs")
	if !strings.Contains(out, "allow-ai-chat: false") || !strings.Contains(out, "consent:       false") {
		t.Errorf("revoke should clear consent and sharing, got: %s", out)
	}
}

func TestConsent_ConflictingFlags(t *testing.T) {
	_, _, err := runCommand(t, newTestHome(t), "", "consent", "--revoke", "--allow-ai-chat")
	if err == nil {
		t.Fatal("expected error for --revoke with --allow-ai-chat")
	}
}

func TestPrefs_Update(t *testing.T) {
	home := newTestHome(t)

	out, _, err := runCommand(t, home, "", "prefs")
	if err != nil {
		t.Fatalf("prefs failed: %v", err)
	}
	if !strings.Contains(out, "dark-mode:     auto") {
		t.Errorf("expected default dark mode, got: %s", out)
	}

	if _, _, err := runCommand(t, home, "", "prefs", "--dark-mode", "dark"); err != nil {
		t.Fatalf("prefs update failed: %v", err)
	}
	out, _, _ = runCommand(t, home, "", "prefs")
	if !strings.Contains(out, "dark-mode:     dark") {
		t.Errorf("dark mode should persist, got: %s", out)
	}

	if _, _, err := runCommand(t, home, "", "prefs", "--dark-mode", "neon"); err == nil {
		t.Error("expected error for invalid dark mode")
	}
}

func TestReset(t *testing.T) {
	home := newTestHome(t)

	out, _, err := runCommand(t, home, "", "reset")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !strings.Contains(out, "Nothing to reset.") {
		t.Errorf("expected nothing to reset, got: %s", out)
	}

	if _, _, err := runCommand(t, home, "y\n5\nq\n", "screen"); err != nil {
		t.Fatalf("screen failed: %v", err)
	}

	out, _, _ = runCommand(t, home, "n\n", "reset")
	if !strings.Contains(out, "Operation cancelled.") {
		t.Errorf("expected cancellation, got: %s", out)
	}

	out, _, _ = runCommand(t, home, "y\n", "reset")
	if !strings.Contains(out, "All screening data deleted.") {
		t.Errorf("expected deletion, got: %s", out)
	}

	out, _, _ = runCommand(t, home, "", "reset", "--yes")
	if !strings.Contains(out, "Nothing to reset.") {
		t.Errorf("store should be empty after reset, got: %s", out)
	}
}

func TestResults_Empty(t *testing.T) {
	home := newTestHome(t)

	out, _, err := runCommand(t, home, "", "results")
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if !strings.Contains(out, "No Results Yet") {
		t.Errorf("expected empty state, got: %s", out)
	}

	if _, _, err := runCommand(t, home, "", "results", "--plain"); err == nil {
		t.Error("--plain without results should fail")
	}
}

func TestExport(t *testing.T) {
	home := newTestHome(t)

	input := "y\n" + strings.Repeat("5\n", 35) + "r\n"
	if _, _, err := runCommand(t, home, input, "screen", "--leave-policy", "retain"); err != nil {
		t.Fatalf("screen failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "export.json")
	out, _, err := runCommand(t, home, "", "export", "-o", path)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Exported 35 responses and 14 results") {
		t.Errorf("unexpected export output: %s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if !doc.Consent || len(doc.Responses) != 35 || len(doc.Results) != 14 {
		t.Errorf("unexpected export contents: consent=%t responses=%d results=%d",
			doc.Consent, len(doc.Responses), len(doc.Results))
	}
	if doc.Results[0].Band != "elevated" {
		t.Errorf("all answers at the top of the scale should be elevated, got %s", doc.Results[0].Band)
	}

	out, _, err = runCommand(t, home, "", "export")
	if err != nil {
		t.Fatalf("export to stdout failed: %v", err)
	}
	if !strings.Contains(out, `"responses"`) {
		t.Errorf("expected JSON on stdout, got: %s", out)
	}
}

func TestChat_OneShotOffline(t *testing.T) {
	home := newTestHome(t)

	out, _, err := runCommand(t, home, "", "chat", "How can I focus better?")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if !strings.Contains(out, "(offline reply)") {
		t.Errorf("disabled assistant should answer offline, got: %s", out)
	}
}

func TestChat_Interactive(t *testing.T) {
	home := newTestHome(t)

	out, _, err := runCommand(t, home, "hello\n/clear\n/exit\n", "chat")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if !strings.Contains(out, "Assistant") {
		t.Errorf("expected offline warning, got: %s", out)
	}
	if !strings.Contains(out, "(offline reply)") {
		t.Errorf("expected an offline reply, got: %s", out)
	}
}

func TestStoreFlag_SQLite(t *testing.T) {
	home := newTestHome(t)

	if _, _, err := runCommand(t, home, "", "prefs", "--store", "sqlite", "--dark-mode", "light"); err != nil {
		t.Fatalf("prefs failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "uniqyou.db")); err != nil {
		t.Errorf("expected sqlite database in home: %v", err)
	}

	out, _, _ := runCommand(t, home, "", "prefs", "--store", "sqlite")
	if !strings.Contains(out, "dark-mode:     light") {
		t.Errorf("sqlite store should persist prefs, got: %s", out)
	}

	// The file store is separate.
	out, _, _ = runCommand(t, home, "", "prefs")
	if !strings.Contains(out, "dark-mode:     auto") {
		t.Errorf("file store should be untouched, got: %s", out)
	}
}
