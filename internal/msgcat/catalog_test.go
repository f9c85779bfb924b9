package msgcat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaults(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Render("status.idle", map[string]any{"Cursor": "(1,1)", "Intent": "other"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "cursor (1,1)  last other" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestMissingKeyAndField(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Render("status.nope", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
	if _, err := c.Render("status.idle", map[string]any{"Cursor": "(1,1)"}); err == nil {
		t.Fatalf("expected missing field error")
	}
	if got := c.MustRender("status.nope", nil, "fallback"); got != "fallback" {
		t.Fatalf("MustRender = %q", got)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	body := "status:\n  idle: \"at {{.Cursor}}\"\n"
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("junk"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Render("status.idle", map[string]any{"Cursor": "(2,3)"})
	if err != nil || got != "at (2,3)" {
		t.Fatalf("Render = %q, %v", got, err)
	}
	// untouched keys still come from the embedded file
	if help, err := c.Render("help.keys", map[string]any{"Extra": "hjkl"}); err != nil || !strings.Contains(help, "hjkl") {
		t.Fatalf("help.keys = %q, %v", help, err)
	}
}

func TestOverrideDuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("help:\n  keys: x\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if _, err := New(dir); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestNewRejectsBrokenTemplate(t *testing.T) {
	dir := t.TempDir()
	body := "status:\n  idle: \"at {{.Cursor\"\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := New(dir)
	if err == nil {
		t.Fatalf("expected template parse error")
	}
	if !strings.Contains(err.Error(), "bad.yaml") || !strings.Contains(err.Error(), "status.idle") {
		t.Fatalf("error should name file and key: %v", err)
	}
}
