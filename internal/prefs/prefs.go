// Package prefs persists eventscout UI preferences: the colour theme and the
// form defaults remembered between sessions. Preferences live in
// ~/.config/eventscout/prefs.toml. Search results are never stored here.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/eventscout/internal/config"
)

// Prefs holds the remembered UI state.
type Prefs struct {
	Theme      string `toml:"theme"`
	Category   string `toml:"category,omitempty"`
	Location   string `toml:"location,omitempty"`
	AutoDetect bool   `toml:"auto_detect"`
}

const (
	// DefaultPath is where preferences live unless overridden.
	DefaultPath  = "~/.config/eventscout/prefs.toml"
	defaultTheme = "Nightfox"
)

// Default returns the preferences used when nothing has been saved yet.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Category: config.DefaultCategory}
}

// Load reads preferences from path. Defaults are always returned usable; a
// non-nil error only reports why the file was ignored.
func Load(path string) (Prefs, error) {
	p := Default()
	resolved, err := resolvePath(path)
	if err != nil {
		return p, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read prefs: %w", err)
	}

	var loaded Prefs
	if err := toml.Unmarshal(bytes, &loaded); err != nil {
		return p, fmt.Errorf("parse prefs: %w", err)
	}
	if t := strings.TrimSpace(loaded.Theme); t != "" {
		p.Theme = t
	}
	if c := strings.TrimSpace(loaded.Category); c != "" {
		p.Category = c
	}
	p.Location = strings.TrimSpace(loaded.Location)
	p.AutoDetect = loaded.AutoDetect
	if p.AutoDetect {
		p.Location = ""
	}
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return config.ExpandPath(path)
}
