// Package prefs stores device-local preferences, currently just the UI
// theme. Preferences are read once at startup and written on toggle; they are
// never mirrored to the remote store.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	fileName = ".prefs.json"
)

type Prefs struct {
	Theme string `json:"theme"`
}

// Path returns the preference file location inside the store directory.
func Path(storePath string) string {
	return filepath.Join(storePath, fileName)
}

// Load reads preferences, defaulting to the dark theme when the file is
// absent or unreadable.
func Load(path string) Prefs {
	p := Prefs{Theme: ThemeDark}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil || (p.Theme != ThemeLight && p.Theme != ThemeDark) {
		p.Theme = ThemeDark
	}
	return p
}

// Save writes preferences, creating the store directory if needed.
func (p Prefs) Save(path string) error {
	if path == "" {
		return errors.New("prefs: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs: ensure directory: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write: %w", err)
	}
	return nil
}

// ToggleTheme flips between light and dark.
func (p Prefs) ToggleTheme() Prefs {
	if p.Theme == ThemeDark {
		p.Theme = ThemeLight
	} else {
		p.Theme = ThemeDark
	}
	return p
}
