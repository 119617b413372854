// Package prefs handles pixday user preferences persistence.
// Preferences are stored in ~/.config/pixday/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences toggled from inside the UI.
type Prefs struct {
	Theme       string `toml:"theme"`
	ExportSize  string `toml:"export_size"`
	GallerySort string `toml:"gallery_sort"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	ExportUpscaled = "upscaled"
	ExportOriginal = "original"

	SortNewest = "newest"
	SortOldest = "oldest"
)

const defaultPrefsPath = "~/.config/pixday/prefs.toml"

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: ThemeDark, ExportSize: ExportUpscaled, GallerySort: SortNewest}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	return p.normalize(), nil
}

func (p Prefs) normalize() Prefs {
	def := Defaults()
	switch strings.ToLower(strings.TrimSpace(p.Theme)) {
	case ThemeLight:
		p.Theme = ThemeLight
	default:
		p.Theme = def.Theme
	}
	switch strings.ToLower(strings.TrimSpace(p.ExportSize)) {
	case ExportOriginal:
		p.ExportSize = ExportOriginal
	default:
		p.ExportSize = def.ExportSize
	}
	switch strings.ToLower(strings.TrimSpace(p.GallerySort)) {
	case SortOldest:
		p.GallerySort = SortOldest
	default:
		p.GallerySort = def.GallerySort
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.normalize())
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
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
