package gallery

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/five82/pixday/internal/canvas"
)

// Rasterize draws the snapshot at one pixel per cell. Empty cells are white.
func Rasterize(snap canvas.Snapshot) image.Image {
	if snap.Size() <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	return rasterContext(snap).Image()
}

func rasterContext(snap canvas.Snapshot) *gg.Context {
	n := snap.Size()
	dc := gg.NewContext(n, n)
	dc.SetColor(color.White)
	dc.Clear()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cell, _ := snap.At(x, y)
			if cell.IsEmpty() {
				continue
			}
			dc.SetColor(cell.Color.NRGBA())
			dc.SetPixel(x, y)
		}
	}
	return dc
}

// EncodePNG rasterizes the snapshot and returns the PNG bytes.
func EncodePNG(snap canvas.Snapshot) ([]byte, error) {
	if snap.Size() <= 0 {
		return nil, fmt.Errorf("encode png: empty snapshot")
	}
	var buf bytes.Buffer
	if err := rasterContext(snap).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePNG decodes a stored image payload.
func DecodePNG(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// Scale resizes img to w×h with nearest-neighbour sampling, keeping pixel
// edges hard.
func Scale(img image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
