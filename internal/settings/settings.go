// Package settings persists user preferences as a small JSON file.
//
// Loading is fail-soft: a missing, unreadable, or corrupt file yields the
// defaults so the app always starts. Saving is explicit and atomic enough
// for a single-user desktop tool (write temp, rename).
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Known theme names. An unknown persisted value falls back to DefaultTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultTheme     = ThemeDark
	DefaultFontScale = 1.0
)

const fileName = "settings.json"

// Settings is the persisted preference set.
type Settings struct {
	Theme     string  `json:"theme"`
	FontScale float64 `json:"font_scale"`
}

// Defaults returns the settings used when nothing is persisted yet.
func Defaults() Settings {
	return Settings{Theme: DefaultTheme, FontScale: DefaultFontScale}
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeDark || name == ThemeLight
}

// Store reads and writes the settings file under a data directory.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a settings store rooted at dataDir. Load failures are
// cosmetic, so they are logged through log at debug rather than returned.
func NewStore(dataDir string, log zerolog.Logger) *Store {
	return &Store{path: filepath.Join(dataDir, fileName), log: log}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings, sanitizing unknown or out-of-range values.
// Any read or parse failure returns the defaults.
func (s *Store) Load() Settings {
	out := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug().Err(err).Str("path", s.path).Msg("settings unreadable, using defaults")
		}
		return out
	}
	var raw Settings
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Debug().Err(err).Str("path", s.path).Msg("settings corrupt, using defaults")
		return out
	}

	if ValidTheme(raw.Theme) {
		out.Theme = raw.Theme
	} else if raw.Theme != "" {
		s.log.Debug().Str("theme", raw.Theme).Msg("unknown theme, using default")
	}
	if raw.FontScale >= 0.5 && raw.FontScale <= 3.0 {
		out.FontScale = raw.FontScale
	} else if raw.FontScale != 0 {
		s.log.Debug().Float64("font_scale", raw.FontScale).Msg("font scale out of range, using default")
	}
	return out
}

// Save persists the settings, creating the directory as needed.
func (s *Store) Save(cfg Settings) error {
	if !ValidTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme %q", cfg.Theme)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
