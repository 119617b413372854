package gallery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
)

// ExportSize selects the pixel dimensions of an exported file.
type ExportSize string

const (
	ExportUpscaled ExportSize = "upscaled"
	ExportOriginal ExportSize = "original"
)

// DefaultUpscaleSize is the edge length of upscaled exports.
const DefaultUpscaleSize = 1024

// ExportFilename names an export written at t (UTC, second precision).
func ExportFilename(t time.Time) string {
	return "pixel-art-" + t.UTC().Format("2006-01-02T15-04-05") + ".png"
}

// Exporter writes gallery entries to PNG files.
type Exporter struct {
	Dir         string
	UpscaleSize int
}

// Export writes the entry into the export directory and returns the file path.
func (x Exporter) Export(entry Entry, size ExportSize, now time.Time) (string, error) {
	data, err := x.encode(entry, size)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(x.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(x.Dir, ExportFilename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func (x Exporter) encode(entry Entry, size ExportSize) ([]byte, error) {
	if len(entry.Image) == 0 {
		return nil, fmt.Errorf("export %s: no image data", entry.ID)
	}
	if size != ExportUpscaled {
		return entry.Image, nil
	}
	img, err := DecodePNG(entry.Image)
	if err != nil {
		return nil, err
	}
	edge := x.UpscaleSize
	if edge <= 0 {
		edge = DefaultUpscaleSize
	}
	var buf bytes.Buffer
	dc := gg.NewContextForImage(Scale(img, edge, edge))
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return buf.Bytes(), nil
}
