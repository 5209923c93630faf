package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emoji-city/internal/config"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "logs", "city.log")
			log, err := newLogger(config.LoggingConfig{Level: "debug", Format: format, File: path})
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}
			log.Debug("city opened")
			_ = log.Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("log file not written: %v", err)
			}
			if !strings.Contains(string(data), "city opened") {
				t.Errorf("log file = %q", data)
			}
		})
	}
}

func TestLogPathDefaultsToDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	path, err := logPath("")
	if err != nil {
		t.Fatalf("logPath: %v", err)
	}
	if want := filepath.Join(tmp, "emoji-city", "emoji-city.log"); path != want {
		t.Errorf("path = %q; want %q", path, want)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("log dir not created: %v", err)
	}
}
