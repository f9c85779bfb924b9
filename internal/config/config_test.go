package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, "TERMCHESS_") {
			t.Setenv(k, "")
		}
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termchess.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
theme:
  cursor: yellow
keys:
  confirm: ["x"]
show_fen: true
start_fen: "8/8/8/8/8/8/p7/8"
`)
	t.Setenv("TERMCHESS_CONFIG", path)
	t.Setenv("TERMCHESS_THEME_MOVE_BLOCK", "green")
	t.Setenv("TERMCHESS_START_FEN", "8/8/8/8/8/8/8/8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Theme.Cursor = "yellow"
	want.Theme.MoveBlock = "green"
	want.Keys.Confirm = []string{"x"}
	want.ShowFEN = true
	want.StartFEN = "8/8/8/8/8/8/8/8"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMCHESS_CONFIG", writeFile(t, "theme: [unclosed"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}

	t.Setenv("TERMCHESS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestLoadRejectsBadShowFEN(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMCHESS_SHOW_FEN", "yes")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TERMCHESS_SHOW_FEN") {
		t.Fatalf("expected TERMCHESS_SHOW_FEN error, got %v", err)
	}
}

func TestValidateKeys(t *testing.T) {
	cfg := Default()
	cfg.Keys.Up = []string{"up"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected multi-character key to be rejected")
	}

	cfg = Default()
	cfg.Keys.Confirm = []string{"k"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected duplicate binding to be rejected")
	}
}
