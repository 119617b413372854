package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pixday/internal/canvas"
	"github.com/five82/pixday/internal/config"
	"github.com/five82/pixday/internal/gallery"
	"github.com/five82/pixday/internal/palette"
	"github.com/five82/pixday/internal/prefs"
	"github.com/five82/pixday/internal/state"
	"github.com/five82/pixday/internal/ui"
)

// Options configure the pixday application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pixday/prefs.toml
	Size       int    // grid size override; zero uses the config
}

// Run boots the pixday TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Size != 0 {
		if !canvas.IsSupportedSize(opts.Size) {
			return fmt.Errorf("grid size %d: must be one of %v", opts.Size, canvas.SupportedSizes)
		}
		cfg.GridSize = opts.Size
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.Printf("prefs %s: %v", prefsPath, err)
	}

	galleryStore, err := gallery.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open gallery: %w", err)
	}
	defer func() {
		if err := galleryStore.Close(); err != nil {
			log.Printf("close gallery: %v", err)
		}
	}()

	if err := ensurePaletteFile(cfg.PaletteFile); err != nil {
		log.Printf("palette %s: %v", cfg.PaletteFile, err)
	}
	pal, err := palette.Load(cfg.PaletteFile)
	if err != nil {
		log.Printf("palette %s: %v (using defaults)", cfg.PaletteFile, err)
	}

	var paletteEvents <-chan string
	if w, err := palette.NewWatcher(cfg.PaletteFile); err != nil {
		log.Printf("palette watch disabled: %v", err)
	} else {
		defer func() { _ = w.Close() }()
		log.Printf("watching palette %s", w.Path())
		paletteEvents = w.Events
	}

	store := &state.Store{}
	refresher := NewRefresher(store, galleryStore)

	// Populate the store before the UI draws its first frame.
	refresher.Refresh(ctx)
	refresher.Start(ctx, cfg.RefreshEvery)

	return ui.Run(ui.Options{
		Context:       ctx,
		Store:         store,
		Gallery:       galleryStore,
		Refresher:     refresher,
		Exporter:      gallery.Exporter{Dir: cfg.ExportDir, UpscaleSize: cfg.UpscaleSize},
		Config:        &cfg,
		Palette:       pal,
		PaletteEvents: paletteEvents,
		Prefs:         userPrefs,
		PrefsPath:     prefsPath,
	})
}

// ensurePaletteFile writes the built-in palette to path when no file exists,
// so the directory can be watched and the user has a file to edit.
func ensurePaletteFile(path string) error {
	if _, err := os.Stat(path); err == nil || !errors.Is(err, os.ErrNotExist) {
		return err
	}
	data, err := palette.Marshal(palette.Default())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create palette dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write palette: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to the data directory. The terminal
// belongs to the UI, so when the file cannot be opened logs are dropped.
func setupLogging(cfg config.Config) func() {
	logPath := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if f, err := tea.LogToFile(logPath, "pixday"); err == nil {
			return func() { _ = f.Close() }
		}
	}
	log.SetOutput(io.Discard)
	return func() {}
}
