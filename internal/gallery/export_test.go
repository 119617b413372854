package gallery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/pixday/internal/canvas"
)

func TestExportFilename(t *testing.T) {
	at := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	if got, want := ExportFilename(at), "pixel-art-2024-03-05T07-08-09.png"; got != want {
		t.Fatalf("ExportFilename = %q, want %q", got, want)
	}
}

func TestExporter_Sizes(t *testing.T) {
	g := canvas.New(16)
	g.Set(2, 2, canvas.Paint(canvas.Black))
	data, err := EncodePNG(g.Snapshot())
	if err != nil {
		t.Fatalf("EncodePNG returned error: %v", err)
	}
	entry := Entry{ID: "e1", Image: data, GridSize: 16}
	at := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name string
		size ExportSize
		edge int
	}{
		{"upscaled", ExportUpscaled, 256},
		{"original", ExportOriginal, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			x := Exporter{Dir: dir, UpscaleSize: 256}

			path, err := x.Export(entry, tt.size, at)
			if err != nil {
				t.Fatalf("Export returned error: %v", err)
			}
			if filepath.Base(path) != "pixel-art-2024-03-05T07-08-09.png" {
				t.Fatalf("path = %q, want pixel-art-2024-03-05T07-08-09.png", path)
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			img, err := DecodePNG(raw)
			if err != nil {
				t.Fatalf("DecodePNG returned error: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.edge || b.Dy() != tt.edge {
				t.Fatalf("bounds = %v, want %dx%d", b, tt.edge, tt.edge)
			}
		})
	}
}

func TestExporter_DefaultUpscaleSize(t *testing.T) {
	data, _ := EncodePNG(canvas.New(16).Snapshot())
	x := Exporter{Dir: t.TempDir()}
	path, err := x.Export(Entry{ID: "e", Image: data}, ExportUpscaled, time.Now())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	raw, _ := os.ReadFile(path)
	img, err := DecodePNG(raw)
	if err != nil {
		t.Fatalf("DecodePNG returned error: %v", err)
	}
	if img.Bounds().Dx() != DefaultUpscaleSize {
		t.Fatalf("width = %d, want %d", img.Bounds().Dx(), DefaultUpscaleSize)
	}
}

func TestExporter_RejectsEmptyImage(t *testing.T) {
	x := Exporter{Dir: t.TempDir()}
	if _, err := x.Export(Entry{ID: "e"}, ExportOriginal, time.Now()); err == nil {
		t.Fatal("Export error = nil, want error for empty payload")
	}
}
