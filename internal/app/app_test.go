package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/pixday/internal/config"
	"github.com/five82/pixday/internal/palette"
)

func TestEnsurePaletteFile_FreshHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()

	if err := ensurePaletteFile(cfg.PaletteFile); err != nil {
		t.Fatalf("ensurePaletteFile: %v", err)
	}

	p, err := palette.Load(cfg.PaletteFile)
	if err != nil {
		t.Fatalf("palette.Load: %v", err)
	}
	if p.Len() != palette.Default().Len() || p.Name != "default" {
		t.Fatalf("palette = %s with %d colors, want default with %d", p.Name, p.Len(), palette.Default().Len())
	}

	w, err := palette.NewWatcher(cfg.PaletteFile)
	if err != nil {
		t.Fatalf("NewWatcher after bootstrap: %v", err)
	}
	_ = w.Close()
}

func TestEnsurePaletteFile_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	custom := []byte("name: mine\ncolors: [\"#123456\"]\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := ensurePaletteFile(path); err != nil {
		t.Fatalf("ensurePaletteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(custom) {
		t.Fatalf("palette file = %q, want unchanged %q", got, custom)
	}
}
