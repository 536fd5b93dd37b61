// Package prefs persists tool settings between runs. The canvas and the
// edit history are deliberately never written anywhere; only the toolbar
// state (radius, color, mode) survives a restart.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "settings.json"

// Settings are the persisted tool options.
type Settings struct {
	Radius float64  `json:"radius"`
	Color  [3]uint8 `json:"color"`
	Mode   string   `json:"mode"` // "stamp" or "drag"
}

func defaults() Settings {
	return Settings{Radius: 15, Color: [3]uint8{0, 0, 0}, Mode: "drag"}
}

// Store is a small JSON-backed settings store.
type Store struct {
	mu   sync.Mutex
	path string
	cur  Settings
}

// Load reads settings from ~/.config/stampboard/settings.json, falling
// back to defaults when the file is missing or unreadable.
func Load() *Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return loadFrom(filepath.Join(configDir, "stampboard", prefsFile))
}

func loadFrom(path string) *Store {
	s := &Store{path: path, cur: defaults()}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var set Settings
	if err := json.Unmarshal(data, &set); err != nil {
		return s
	}
	if set.Radius < 0 {
		set.Radius = 0
	}
	s.cur = set
	return s
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Update replaces the settings and writes them to disk.
func (s *Store) Update(set Settings) error {
	s.mu.Lock()
	s.cur = set
	data, err := json.MarshalIndent(s.cur, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
