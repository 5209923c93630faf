package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"emoji-city/internal/city"
)

// SessionLog is one line of sessions.jsonl.
type SessionLog struct {
	Started time.Time `json:"started"`
	Ended   time.Time `json:"ended"`
	city.Stats
}

// saveSessionLog appends the finished session as a single JSON line to
// sessions.jsonl in the data directory.
func saveSessionLog(entry SessionLog) error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	path := filepath.Join(dir, "sessions.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DataDir returns the directory for session and log files.
// Uses $XDG_DATA_HOME/emoji-city,
// defaulting to ~/.local/share/emoji-city.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "emoji-city"), nil
}
