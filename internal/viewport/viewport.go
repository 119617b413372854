// Package viewport maps continuous pointer positions onto discrete grid cells
// under a pan offset and zoom scale.
//
// Screen positions are in abstract screen units; the terminal shell reports
// one unit per column horizontally and two per row vertically so that grid
// cells stay roughly square.
package viewport

import "math"

const (
	// MinScale and MaxScale bound the zoom factor.
	MinScale = 0.1
	MaxScale = 50.0

	// ZoomStep is the multiplicative change applied per wheel notch.
	ZoomStep = 0.1

	// DefaultPadding is the margin Fit leaves around the grid.
	DefaultPadding = 40.0
)

// Transform is the pan/zoom state of one canvas view. The zero value is not
// useful; start from New.
type Transform struct {
	Scale float64
	PanX  float64
	PanY  float64

	panning bool
	lastX   float64
	lastY   float64
}

// New returns an identity transform.
func New() Transform {
	return Transform{Scale: 1}
}

// ScreenToGrid returns the grid cell under the screen point (px, py).
func (t Transform) ScreenToGrid(px, py float64) (gx, gy int) {
	return int(math.Floor((px - t.PanX) / t.Scale)), int(math.Floor((py - t.PanY) / t.Scale))
}

// ZoomAt zooms in (direction > 0) or out (direction < 0) by one step,
// keeping the grid point under (px, py) fixed on screen. A zero direction
// leaves the transform unchanged.
func (t *Transform) ZoomAt(px, py float64, direction int) {
	if direction == 0 {
		return
	}
	factor := 1 + ZoomStep
	if direction < 0 {
		factor = 1 - ZoomStep
	}
	newScale := clampScale(t.Scale * factor)

	gridX := (px - t.PanX) / t.Scale
	gridY := (py - t.PanY) / t.Scale
	t.PanX = px - gridX*newScale
	t.PanY = py - gridY*newScale
	t.Scale = newScale
}

// Fit sizes the view so an n×n grid fills the container minus padding at an
// integral scale of at least 1, and centres it.
func (t *Transform) Fit(containerW, containerH float64, n int, padding float64) {
	if n <= 0 {
		return
	}
	scaleW := (containerW - padding) / float64(n)
	scaleH := (containerH - padding) / float64(n)
	scale := math.Floor(math.Min(scaleW, scaleH))
	if scale < 1 {
		scale = 1
	}
	displayed := float64(n) * scale
	t.Scale = scale
	t.PanX = (containerW - displayed) / 2
	t.PanY = (containerH - displayed) / 2
}

// Pan shifts the view by (dx, dy). The grid may be moved fully off-screen.
func (t *Transform) Pan(dx, dy float64) {
	t.PanX += dx
	t.PanY += dy
}

// BeginPan starts a pan gesture at screen point (x, y).
func (t *Transform) BeginPan(x, y float64) {
	t.panning = true
	t.lastX, t.lastY = x, y
}

// DragPan moves the view by the pointer delta since the last call. It does
// nothing when no pan gesture is active.
func (t *Transform) DragPan(x, y float64) bool {
	if !t.panning {
		return false
	}
	t.Pan(x-t.lastX, y-t.lastY)
	t.lastX, t.lastY = x, y
	return true
}

// EndPan finishes the current pan gesture.
func (t *Transform) EndPan() {
	t.panning = false
}

// Panning reports whether a pan gesture is in progress.
func (t Transform) Panning() bool {
	return t.panning
}

func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(s, MaxScale))
}
