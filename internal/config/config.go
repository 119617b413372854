package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pixday/internal/canvas"
)

// Config holds the application settings read from config.toml.
type Config struct {
	DataDir      string
	ExportDir    string
	PaletteFile  string
	GridSize     int
	BrushSize    int
	UpscaleSize  int
	FitPadding   float64
	RefreshEvery time.Duration
}

const (
	defaultConfigPath   = "~/.config/pixday/config.toml"
	defaultDataDir      = "~/.local/share/pixday"
	defaultExportDir    = "~/Pictures/pixday"
	defaultPaletteFile  = "~/.config/pixday/palette.yaml"
	defaultBrushSize    = 1
	defaultUpscaleSize  = 1024
	defaultFitPadding   = 2
	defaultRefreshEvery = 30 * time.Second
	maxBrushSize        = 8
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir:      mustExpand(defaultDataDir),
		ExportDir:    mustExpand(defaultExportDir),
		PaletteFile:  mustExpand(defaultPaletteFile),
		GridSize:     canvas.DefaultSize,
		BrushSize:    defaultBrushSize,
		UpscaleSize:  defaultUpscaleSize,
		FitPadding:   defaultFitPadding,
		RefreshEvery: defaultRefreshEvery,
	}
}

// Load locates and parses config.toml, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir     string   `toml:"data_dir"`
		ExportDir   string   `toml:"export_dir"`
		PaletteFile string   `toml:"palette_file"`
		GridSize    int      `toml:"grid_size"`
		BrushSize   int      `toml:"brush_size"`
		UpscaleSize int      `toml:"upscale_size"`
		FitPadding  *float64 `toml:"fit_padding"`
		RefreshSecs int      `toml:"refresh_secs"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}
	if file := strings.TrimSpace(raw.PaletteFile); file != "" {
		cfg.PaletteFile = mustExpand(file)
	}
	if raw.GridSize != 0 {
		if !canvas.IsSupportedSize(raw.GridSize) {
			return Config{}, fmt.Errorf("grid_size %d: must be one of %v", raw.GridSize, canvas.SupportedSizes)
		}
		cfg.GridSize = raw.GridSize
	}
	if raw.BrushSize > 0 {
		cfg.BrushSize = min(raw.BrushSize, maxBrushSize)
	}
	if raw.UpscaleSize > 0 {
		cfg.UpscaleSize = raw.UpscaleSize
	}
	if raw.FitPadding != nil && *raw.FitPadding >= 0 {
		cfg.FitPadding = *raw.FitPadding
	}
	if raw.RefreshSecs > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSecs) * time.Second
	}

	return cfg, nil
}

// DatabasePath returns the SQLite file holding the gallery and calendar.
func (c Config) DatabasePath() string {
	return filepath.Join(c.dataDir(), "pixday.db")
}

// LogPath returns the file the application log is written to.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "pixday.log")
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
