package logger

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesJSONFile(t *testing.T) {
	// The logger writes under ./logs, so run in a temp dir.
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	l, err := NewLogger("eventcheck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.LogConfig("loaded defaults")
	l.LogSearch("chess", 2)
	l.LogEligibility("register", "ev-1", "ALLOWED")
	l.Close()

	entries, err := os.ReadDir("logs")
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", entries, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "eventcheck-") || !strings.HasSuffix(name, ".log") {
		t.Errorf("log file name = %q", name)
	}

	data, err := os.ReadFile("logs/" + name)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Startup line, three entries, close line.
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(lines[2]), &entry); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("level = %q, want INFO", entry.Level)
	}
	if entry.Service != "eventcheck" {
		t.Errorf("service = %q, want eventcheck", entry.Service)
	}
	if entry.Category != "SEARCH" {
		t.Errorf("category = %q, want SEARCH", entry.Category)
	}
	if !strings.Contains(entry.Message, "chess") {
		t.Errorf("message = %q", entry.Message)
	}
}
