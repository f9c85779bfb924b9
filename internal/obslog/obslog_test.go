package obslog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestOptionsFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_TO_CONSOLE", "LOG_TO_FILE", "LOG_FILE", "LOG_FORMAT", "LOG_CALLER"} {
		t.Setenv(k, "")
	}
	opts := OptionsFromEnv()
	if opts.Console {
		t.Fatalf("console logging should default off")
	}
	if !opts.ToFile || opts.File != filepath.Join("logs", "termchess.log") {
		t.Fatalf("unexpected file defaults %+v", opts)
	}
	if opts.Level != "info" || opts.Format != "legacy" {
		t.Fatalf("unexpected level/format defaults %+v", opts)
	}
}

func TestInitWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.log")
	if err := Init(Options{Level: "debug", ToFile: true, File: path, Format: "json"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	L().Debug("piece_select", zap.String("square", "(1,2)"))
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(raw))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", line, err)
	}
	if entry["msg"] != "piece_select" || entry["square"] != "(1,2)" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestInitWithNoSinksIsNop(t *testing.T) {
	if err := Init(Options{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if L().Core().Enabled(zap.ErrorLevel) {
		t.Fatalf("expected a no-op logger")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel(" WARNING ") != zap.WarnLevel {
		t.Fatalf("warning should map to warn")
	}
	if parseLevel("nonsense") != zap.InfoLevel {
		t.Fatalf("unknown level should map to info")
	}
}
