package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitFileOutput(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "tool.log")

	opts := DefaultOptions()
	opts.Console = false
	opts.File = logFile
	opts.Level = "debug"

	if err := Init(opts); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	Sugar.Debugw("hello", "answer", 42)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry, got %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"warn":    "warn",
		"error":   "error",
		"":        "info",
		"bananas": "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
