package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitDisabled(t *testing.T) {
	if err := Init(Options{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if L.Enabled(t.Context(), slog.LevelError) {
		t.Fatalf("disabled logger should discard")
	}
}

func TestInitWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Init(Options{}) })

	Debug("loaded corpus", "words", 3)
	if !strings.Contains(buf.String(), "loaded corpus") || !strings.Contains(buf.String(), "words=3") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

func TestInitLogDir(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, logPrefix+"2000-01-01"+logSuffix)
	if err := os.WriteFile(old, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := Init(Options{Enabled: true, LogDir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Init(Options{}) })
	Info("grouped", "groups", 2)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be cleaned up", old)
	}
	today := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(today)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"grouped"`) {
		t.Fatalf("unexpected log file: %s", data)
	}
}

func TestCleanOldLogsKeepsOthers(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	keep := []string{
		logPrefix + "2024-05-20" + logSuffix,
		logPrefix + "garbage" + logSuffix,
		"other-2000-01-01.log",
	}
	for _, name := range append(keep, logPrefix+"2024-04-01"+logSuffix) {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	cleanOldLogs(dir, now)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != len(keep) {
		t.Fatalf("got %d files, want %d", len(entries), len(keep))
	}
}
