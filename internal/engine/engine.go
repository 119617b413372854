// Package engine is the pixel editing engine: it owns one document's grid,
// undo history, tool state and view transform, and turns pointer events into
// grid edits.
//
// An Engine is not safe for concurrent use. The shell calls it from a single
// event loop and hands ExportSnapshot copies to anything running elsewhere.
package engine

import (
	"errors"
	"fmt"

	"github.com/five82/pixday/internal/canvas"
	"github.com/five82/pixday/internal/history"
	"github.com/five82/pixday/internal/viewport"
)

// ErrUnsupportedSize is returned by Resize for sizes outside canvas.SupportedSizes.
var ErrUnsupportedSize = errors.New("unsupported grid size")

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers carries keyboard state that alters a pointer press.
type Modifiers struct {
	// Pan turns a left press into a pan gesture.
	Pan bool
}

// Outcome summarises what a pointer event did.
type Outcome struct {
	Painted  int  // cells whose value changed
	Recorded bool // a history snapshot was pushed
	Picked   bool // the active color was replaced by the eyedropper
	Moved    bool // the view transform changed
}

// Changed reports whether anything visible happened.
func (o Outcome) Changed() bool {
	return o.Painted > 0 || o.Picked || o.Moved
}

// Options configures a new Engine. Zero fields take defaults.
type Options struct {
	Size         int
	BrushSize    int
	Color        canvas.Color
	HistoryLimit int
	FitPadding   float64
}

// Engine is one open document.
type Engine struct {
	grid    *canvas.Grid
	history *history.Stack

	tool  Tool
	brush int
	color canvas.Color

	view     viewport.Transform
	drawing  bool
	erasing  bool
	padding  float64
	contW    float64
	contH    float64
	hasFrame bool
}

// New returns an engine with an empty grid and the pen selected.
func New(opts Options) *Engine {
	size := opts.Size
	if !canvas.IsSupportedSize(size) {
		size = canvas.DefaultSize
	}
	brush := opts.BrushSize
	if brush < 1 {
		brush = 1
	}
	padding := opts.FitPadding
	if padding < 0 {
		padding = 0
	}
	return &Engine{
		grid:    canvas.New(size),
		history: history.New(opts.HistoryLimit),
		tool:    Pen,
		brush:   brush,
		color:   opts.Color,
		view:    viewport.New(),
		padding: padding,
	}
}

// Size returns the grid edge length.
func (e *Engine) Size() int { return e.grid.Size() }

// At reads one cell of the live grid for rendering.
func (e *Engine) At(x, y int) (canvas.Cell, bool) { return e.grid.At(x, y) }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// BrushSize returns the pen/eraser block edge length.
func (e *Engine) BrushSize() int { return e.brush }

// ActiveColor returns the color the pen and fill write.
func (e *Engine) ActiveColor() canvas.Color { return e.color }

// View returns a copy of the view transform.
func (e *Engine) View() viewport.Transform { return e.view }

// Drawing reports whether a pen/eraser stroke is in progress.
func (e *Engine) Drawing() bool { return e.drawing }

// CanUndo reports whether Undo has anything to restore.
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// HistoryLen returns the number of retained snapshots.
func (e *Engine) HistoryLen() int { return e.history.Len() }

// SelectTool switches the active tool and abandons any stroke in progress.
func (e *Engine) SelectTool(t Tool) {
	e.tool = t
	e.drawing = false
}

// SetBrushSize sets the brush edge length; values below 1 are ignored.
func (e *Engine) SetBrushSize(n int) bool {
	if n < 1 {
		return false
	}
	e.brush = n
	return true
}

// SetActiveColor replaces the active color.
func (e *Engine) SetActiveColor(c canvas.Color) {
	e.color = c
}

// OnPointerDown starts a gesture at screen point (x, y).
func (e *Engine) OnPointerDown(x, y float64, button Button, mods Modifiers) Outcome {
	if button == ButtonMiddle || (button == ButtonLeft && mods.Pan) {
		e.drawing = false
		e.view.BeginPan(x, y)
		return Outcome{}
	}
	if button != ButtonLeft && !(button == ButtonRight && e.tool == Fill) {
		return Outcome{}
	}

	gx, gy := e.view.ScreenToGrid(x, y)
	switch e.tool {
	case Fill:
		replacement := canvas.Paint(e.color)
		if button == ButtonRight {
			replacement = canvas.Empty
		}
		return e.fill(gx, gy, replacement)
	case Eyedropper:
		return e.pick(gx, gy)
	default:
		e.history.Push(e.grid)
		e.drawing = true
		e.erasing = e.tool == Eraser
		out := e.stamp(gx, gy)
		out.Recorded = true
		return out
	}
}

// OnPointerMove continues the active pan or stroke.
func (e *Engine) OnPointerMove(x, y float64) Outcome {
	if e.view.DragPan(x, y) {
		return Outcome{Moved: true}
	}
	if !e.drawing {
		return Outcome{}
	}
	gx, gy := e.view.ScreenToGrid(x, y)
	return e.stamp(gx, gy)
}

// OnPointerUp ends whatever gesture is active.
func (e *Engine) OnPointerUp(x, y float64) {
	e.drawing = false
	e.view.EndPan()
}

// OnWheel zooms one step at (x, y); positive direction zooms in.
func (e *Engine) OnWheel(x, y float64, direction int) Outcome {
	if direction == 0 {
		return Outcome{}
	}
	e.view.ZoomAt(x, y, direction)
	return Outcome{Moved: true}
}

// Pan moves the view without a pointer gesture.
func (e *Engine) Pan(dx, dy float64) {
	e.view.Pan(dx, dy)
}

// SetContainer records the on-screen area available to the canvas.
func (e *Engine) SetContainer(w, h float64) {
	e.contW, e.contH = w, h
	e.hasFrame = true
}

// FitToContainer scales and centres the grid in the last container size.
func (e *Engine) FitToContainer() {
	if !e.hasFrame {
		return
	}
	e.view.Fit(e.contW, e.contH, e.grid.Size(), e.padding)
}

// Resize discards the grid for a new empty n×n one, resets history and
// re-fits the view.
func (e *Engine) Resize(n int) error {
	if !canvas.IsSupportedSize(n) {
		return fmt.Errorf("resize to %d: %w", n, ErrUnsupportedSize)
	}
	e.grid = canvas.New(n)
	e.history.Reset()
	e.drawing = false
	e.view.EndPan()
	e.FitToContainer()
	return nil
}

// Clear empties the grid as one undoable step.
func (e *Engine) Clear() {
	e.history.Push(e.grid)
	e.drawing = false
	e.grid.Clear()
}

// Undo restores the most recent snapshot.
func (e *Engine) Undo() bool {
	e.drawing = false
	return e.history.Undo(e.grid)
}

// ExportSnapshot returns an immutable copy of the cells for persistence.
func (e *Engine) ExportSnapshot() canvas.Snapshot {
	return e.grid.Snapshot()
}

func (e *Engine) stamp(gx, gy int) Outcome {
	cell := canvas.Paint(e.color)
	if e.erasing {
		cell = canvas.Empty
	}
	offset := (e.brush - 1) / 2
	var out Outcome
	for dy := 0; dy < e.brush; dy++ {
		for dx := 0; dx < e.brush; dx++ {
			if e.grid.Set(gx-offset+dx, gy-offset+dy, cell) {
				out.Painted++
			}
		}
	}
	return out
}

func (e *Engine) fill(gx, gy int, replacement canvas.Cell) Outcome {
	target, ok := e.grid.At(gx, gy)
	if !ok {
		return Outcome{}
	}
	// Pushed even when target equals replacement, so every in-bounds click is one undo step.
	e.history.Push(e.grid)
	return Outcome{
		Painted:  canvas.FloodFill(e.grid, gx, gy, target, replacement),
		Recorded: true,
	}
}

func (e *Engine) pick(gx, gy int) Outcome {
	cell, ok := e.grid.At(gx, gy)
	if !ok || cell.IsEmpty() {
		return Outcome{}
	}
	e.color = cell.Color
	return Outcome{Picked: true}
}
