package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/gallery"
)

type thumbKey struct {
	id         string
	cols, rows int
}

// cellPair is the two stacked pixels drawn by one "▀" cell.
type cellPair struct {
	top, bottom string
}

// halfBlockCells scales img to cols × 2*rows pixels and pairs vertically
// adjacent pixels into terminal cells.
func halfBlockCells(img image.Image, cols, rows int) [][]cellPair {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	scaled := gallery.Scale(img, cols, rows*2)
	out := make([][]cellPair, rows)
	for r := 0; r < rows; r++ {
		line := make([]cellPair, cols)
		for c := 0; c < cols; c++ {
			line[c] = cellPair{
				top:    rgbHex(scaled.RGBAAt(c, 2*r)),
				bottom: rgbHex(scaled.RGBAAt(c, 2*r+1)),
			}
		}
		out[r] = line
	}
	return out
}

func renderHalfBlocks(cells [][]cellPair) []string {
	lines := make([]string, len(cells))
	var b strings.Builder
	for i, line := range cells {
		b.Reset()
		for _, p := range line {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(p.top)).
				Background(lipgloss.Color(p.bottom)).
				Render("▀"))
		}
		lines[i] = b.String()
	}
	return lines
}

func rgbHex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// thumbnail renders an entry as half-block lines, caching by size.
func (m Model) thumbnail(e gallery.Entry, cols, rows int) ([]string, error) {
	k := thumbKey{id: e.ID, cols: cols, rows: rows}
	if lines, ok := m.thumbs[k]; ok {
		return lines, nil
	}
	img, err := gallery.DecodePNG(e.Image)
	if err != nil {
		return nil, err
	}
	lines := renderHalfBlocks(halfBlockCells(img, cols, rows))
	if m.thumbs != nil {
		m.thumbs[k] = lines
	}
	return lines, nil
}
