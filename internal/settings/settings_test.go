package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := NewStore(t.TempDir(), zerolog.Nop())

	got := s.Load()
	if got != Defaults() {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir(), zerolog.Nop())

	want := Settings{Theme: ThemeLight, FontScale: 1.25}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := s.Load()
	if got != want {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, zerolog.Nop())

	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := s.Load()
	if got != Defaults() {
		t.Errorf("Corrupt file should yield defaults, got %+v", got)
	}
}

func TestLoadSanitizesValues(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, zerolog.Nop())

	data := []byte(`{"theme": "hotdog-stand", "font_scale": 99}`)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), data, 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := s.Load()
	if got.Theme != DefaultTheme {
		t.Errorf("Unknown theme should fall back, got %q", got.Theme)
	}
	if got.FontScale != DefaultFontScale {
		t.Errorf("Out-of-range scale should fall back, got %v", got.FontScale)
	}
}

func TestLoadLogsFallbacks(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	s := NewStore(dir, zerolog.New(&buf).Level(zerolog.DebugLevel))

	// A missing file is the normal first run, not worth a log line.
	s.Load()
	if buf.Len() != 0 {
		t.Errorf("Missing file should not log, got %q", buf.String())
	}

	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s.Load()
	if !strings.Contains(buf.String(), "settings corrupt") {
		t.Errorf("Corrupt file should log at debug, got %q", buf.String())
	}

	buf.Reset()
	data := []byte(`{"theme": "hotdog-stand", "font_scale": 99}`)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), data, 0o644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s.Load()
	if !strings.Contains(buf.String(), "unknown theme") {
		t.Errorf("Unknown theme should log at debug, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "font scale out of range") {
		t.Errorf("Out-of-range scale should log at debug, got %q", buf.String())
	}
}

func TestSaveRejectsUnknownTheme(t *testing.T) {
	s := NewStore(t.TempDir(), zerolog.Nop())

	if err := s.Save(Settings{Theme: "neon", FontScale: 1.0}); err == nil {
		t.Error("Expected error for unknown theme")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	s := NewStore(dir, zerolog.Nop())

	if err := s.Save(Defaults()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("Settings file was not created: %v", err)
	}
}
