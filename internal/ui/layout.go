package ui

import "time"

// Screen layout. The canvas uses square screen units one row high and
// colsPerUnit columns wide, so grid cells look square in most fonts.
const (
	headerRows  = 2 // title bar + tool/info bar
	footerRows  = 1
	colsPerUnit = 2
)

// Keyboard pan steps, in screen units.
const (
	panStepX = 2.0
	panStepY = 1.0
)

// Gallery and calendar sizing.
const (
	galleryListWidth = 36
	calendarCellCols = 8 // day number line plus a 6×6 half-block thumbnail
	calendarCellRows = 4
	calendarThumb    = 6
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second

	// StatusTimeout is how long a status message stays in the footer.
	StatusTimeout = 5 * time.Second

	// OpTimeout bounds a single storage or export operation.
	OpTimeout = 5 * time.Second
)

// rect is an area of the terminal in cells.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(col, row int) bool {
	return col >= r.X && col < r.X+r.W && row >= r.Y && row < r.Y+r.H
}

// units returns the size of r in canvas screen units.
func (r rect) units() (w, h float64) {
	return float64(r.W) / colsPerUnit, float64(r.H)
}

// screenPoint maps the centre of terminal cell (col, row) to canvas screen
// units relative to r's origin.
func (r rect) screenPoint(col, row int) (px, py float64) {
	return (float64(col-r.X) + 0.5) / colsPerUnit, float64(row-r.Y) + 0.5
}

// contentRect is the area between the header and the footer.
func (m Model) contentRect() rect {
	h := m.height - headerRows - footerRows
	if h < 0 {
		h = 0
	}
	return rect{X: 0, Y: headerRows, W: m.width, H: h}
}
