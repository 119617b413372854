package engine

import (
	"errors"
	"testing"

	"github.com/five82/pixday/internal/canvas"
	"github.com/five82/pixday/internal/history"
)

var (
	red  = canvas.MustParseHex("#ff0000")
	blue = canvas.MustParseHex("#0000ff")
)

func sameCells(a, b canvas.Snapshot) bool {
	if a.Size() != b.Size() {
		return false
	}
	for y := 0; y < a.Size(); y++ {
		for x := 0; x < a.Size(); x++ {
			ca, _ := a.At(x, y)
			cb, _ := b.At(x, y)
			if ca != cb {
				return false
			}
		}
	}
	return true
}

// newTestEngine returns a 16x16 engine with an identity view, so screen
// point (x+0.5, y+0.5) lands on cell (x, y).
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(Options{Size: 16, Color: red})
}

func click(e *Engine, x, y int) Outcome {
	out := e.OnPointerDown(float64(x)+0.5, float64(y)+0.5, ButtonLeft, Modifiers{})
	e.OnPointerUp(float64(x)+0.5, float64(y)+0.5)
	return out
}

func cellAt(t *testing.T, e *Engine, x, y int) canvas.Cell {
	t.Helper()
	c, ok := e.At(x, y)
	if !ok {
		t.Fatalf("At(%d,%d) out of range", x, y)
	}
	return c
}

func TestNew_Defaults(t *testing.T) {
	e := New(Options{Size: 20, BrushSize: -2})
	if e.Size() != canvas.DefaultSize {
		t.Fatalf("Size() = %d, want %d", e.Size(), canvas.DefaultSize)
	}
	if e.BrushSize() != 1 {
		t.Fatalf("BrushSize() = %d, want 1", e.BrushSize())
	}
	if e.Tool() != Pen {
		t.Fatalf("Tool() = %v, want pen", e.Tool())
	}
	if e.ActiveColor() != canvas.Black {
		t.Fatalf("ActiveColor() = %v, want #000000", e.ActiveColor())
	}
}

func TestFill_EmptyGridThenSameColorNoop(t *testing.T) {
	e := newTestEngine(t)
	e.SelectTool(Fill)

	out := click(e, 0, 0)
	if out.Painted != 256 || !out.Recorded {
		t.Fatalf("first fill = %+v, want 256 painted and recorded", out)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if c := cellAt(t, e, x, y); c != canvas.Paint(red) {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, c, red)
			}
		}
	}

	before := e.ExportSnapshot()
	out = click(e, 0, 0)
	if out.Painted != 0 {
		t.Fatalf("second fill painted %d cells, want 0", out.Painted)
	}
	if !sameCells(e.ExportSnapshot(), before) {
		t.Fatalf("second fill changed the grid")
	}
}

func TestFill_OutOfBoundsPushesNothing(t *testing.T) {
	e := newTestEngine(t)
	e.SelectTool(Fill)
	out := click(e, -3, 40)
	if out.Recorded || out.Painted != 0 {
		t.Fatalf("out-of-bounds fill = %+v, want no-op", out)
	}
	if e.HistoryLen() != 0 {
		t.Fatalf("HistoryLen() = %d, want 0", e.HistoryLen())
	}
}

func TestFill_RightButtonErases(t *testing.T) {
	e := newTestEngine(t)
	e.SelectTool(Fill)
	click(e, 3, 3)

	out := e.OnPointerDown(3.5, 3.5, ButtonRight, Modifiers{})
	if out.Painted != 256 {
		t.Fatalf("erase fill painted %d, want 256", out.Painted)
	}
	if c := cellAt(t, e, 15, 15); !c.IsEmpty() {
		t.Fatalf("cell after erase fill = %v, want empty", c)
	}
}

func TestPen_BrushThreeStampsCenteredBlock(t *testing.T) {
	e := newTestEngine(t)
	e.SetBrushSize(3)
	click(e, 5, 5)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			inBlock := x >= 4 && x <= 6 && y >= 4 && y <= 6
			c := cellAt(t, e, x, y)
			if inBlock && c != canvas.Paint(red) {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, c, red)
			}
			if !inBlock && !c.IsEmpty() {
				t.Fatalf("cell (%d,%d) = %v, want empty", x, y, c)
			}
		}
	}
}

func TestPen_EvenBrushOffset(t *testing.T) {
	e := newTestEngine(t)
	e.SetBrushSize(2)
	out := click(e, 5, 5)
	if out.Painted != 4 {
		t.Fatalf("Painted = %d, want 4", out.Painted)
	}
	// offset floor((2-1)/2) = 0: block spans (5,5)..(6,6)
	if c := cellAt(t, e, 6, 6); c.IsEmpty() {
		t.Fatalf("cell (6,6) empty, want painted")
	}
	if c := cellAt(t, e, 4, 4); !c.IsEmpty() {
		t.Fatalf("cell (4,4) painted, want empty")
	}
}

func TestPen_EdgeClipsSilently(t *testing.T) {
	e := newTestEngine(t)
	e.SetBrushSize(3)
	out := click(e, 0, 0)
	if out.Painted != 4 {
		t.Fatalf("Painted at corner = %d, want 4", out.Painted)
	}
}

func TestPen_StrokeIsOneUndoStep(t *testing.T) {
	e := newTestEngine(t)
	e.OnPointerDown(1.5, 1.5, ButtonLeft, Modifiers{})
	for x := 2; x < 10; x++ {
		e.OnPointerMove(float64(x)+0.5, 1.5)
	}
	e.OnPointerUp(9.5, 1.5)

	if e.HistoryLen() != 1 {
		t.Fatalf("HistoryLen() = %d, want 1", e.HistoryLen())
	}
	if c := cellAt(t, e, 9, 1); c != canvas.Paint(red) {
		t.Fatalf("stroke end cell = %v, want %v", c, red)
	}

	if !e.Undo() {
		t.Fatalf("Undo = false, want true")
	}
	if e.ExportSnapshot().FilledCount() != 0 {
		t.Fatalf("undo left %d filled cells, want 0", e.ExportSnapshot().FilledCount())
	}
	if e.Undo() {
		t.Fatalf("second Undo = true, want false")
	}
}

func TestPen_MoveWithoutPressDoesNothing(t *testing.T) {
	e := newTestEngine(t)
	if out := e.OnPointerMove(3.5, 3.5); out.Changed() {
		t.Fatalf("hover move = %+v, want no change", out)
	}
	click(e, 1, 1)
	if out := e.OnPointerMove(3.5, 3.5); out.Painted != 0 {
		t.Fatalf("move after release painted %d cells", out.Painted)
	}
}

func TestPen_RepaintReportsNoChange(t *testing.T) {
	e := newTestEngine(t)
	e.OnPointerDown(2.5, 2.5, ButtonLeft, Modifiers{})
	if out := e.OnPointerMove(2.7, 2.2); out.Painted != 0 {
		t.Fatalf("repainting same cell reported %d changes", out.Painted)
	}
}

func TestEraser(t *testing.T) {
	e := newTestEngine(t)
	e.SelectTool(Fill)
	click(e, 0, 0)

	e.SelectTool(Eraser)
	e.SetBrushSize(3)
	out := click(e, 8, 8)
	if out.Painted != 9 {
		t.Fatalf("eraser Painted = %d, want 9", out.Painted)
	}
	if c := cellAt(t, e, 7, 9); !c.IsEmpty() {
		t.Fatalf("erased cell = %v, want empty", c)
	}
}

func TestEyedropper(t *testing.T) {
	e := newTestEngine(t)
	click(e, 2, 2)
	e.SetActiveColor(blue)
	e.SelectTool(Eyedropper)

	if out := click(e, 9, 9); out.Picked {
		t.Fatalf("picking an empty cell changed the color")
	}
	if out := click(e, 99, 2); out.Picked {
		t.Fatalf("picking out of bounds changed the color")
	}
	out := click(e, 2, 2)
	if !out.Picked || e.ActiveColor() != red {
		t.Fatalf("pick = %+v color %v, want picked %v", out, e.ActiveColor(), red)
	}
	if e.HistoryLen() != 1 {
		t.Fatalf("eyedropper pushed history: len = %d, want 1", e.HistoryLen())
	}
}

func TestPanGesture_MiddleAndModifier(t *testing.T) {
	e := newTestEngine(t)
	e.OnPointerDown(10, 10, ButtonMiddle, Modifiers{})
	if out := e.OnPointerMove(14, 7); !out.Moved {
		t.Fatalf("pan drag = %+v, want moved", out)
	}
	e.OnPointerUp(14, 7)
	if v := e.View(); v.PanX != 4 || v.PanY != -3 {
		t.Fatalf("pan = (%v,%v), want (4,-3)", v.PanX, v.PanY)
	}

	e.OnPointerDown(0, 0, ButtonLeft, Modifiers{Pan: true})
	e.OnPointerMove(1, 1)
	e.OnPointerUp(1, 1)
	if e.ExportSnapshot().FilledCount() != 0 || e.HistoryLen() != 0 {
		t.Fatalf("pan with modifier painted or recorded history")
	}
}

func TestOnWheel_ZoomsAtPointer(t *testing.T) {
	e := newTestEngine(t)
	gx, gy := e.View().ScreenToGrid(7.5, 3.5)
	if out := e.OnWheel(7.5, 3.5, 1); !out.Moved {
		t.Fatalf("OnWheel = %+v, want moved", out)
	}
	if e.View().Scale <= 1 {
		t.Fatalf("Scale = %v, want > 1", e.View().Scale)
	}
	ax, ay := e.View().ScreenToGrid(7.5, 3.5)
	if ax != gx || ay != gy {
		t.Fatalf("grid cell under pointer moved from (%d,%d) to (%d,%d)", gx, gy, ax, ay)
	}
}

func TestResize(t *testing.T) {
	e := newTestEngine(t)
	e.SetContainer(200, 100)
	click(e, 1, 1)

	if err := e.Resize(32); err != nil {
		t.Fatalf("Resize(32) returned error: %v", err)
	}
	if e.Size() != 32 || e.CanUndo() || e.ExportSnapshot().FilledCount() != 0 {
		t.Fatalf("Resize did not reset grid/history")
	}
	// 200x100 container, no padding: min(200/32, 100/32) floors to 3.
	if e.View().Scale != 3 {
		t.Fatalf("Scale after fit = %v, want 3", e.View().Scale)
	}

	err := e.Resize(17)
	if !errors.Is(err, ErrUnsupportedSize) {
		t.Fatalf("Resize(17) error = %v, want ErrUnsupportedSize", err)
	}
	if e.Size() != 32 {
		t.Fatalf("failed Resize changed size to %d", e.Size())
	}
}

func TestFitToContainer(t *testing.T) {
	e := New(Options{Size: 16, FitPadding: 4})
	e.FitToContainer()
	if e.View().Scale != 1 || e.View().PanX != 0 {
		t.Fatalf("fit without container changed view: %+v", e.View())
	}
	e.SetContainer(84, 36)
	e.FitToContainer()
	v := e.View()
	if v.Scale != 2 || v.PanX != 26 || v.PanY != 2 {
		t.Fatalf("fit = scale %v pan (%v,%v), want 2 (26,2)", v.Scale, v.PanX, v.PanY)
	}
}

func TestClear_IsUndoable(t *testing.T) {
	e := newTestEngine(t)
	click(e, 4, 4)
	e.Clear()
	if e.ExportSnapshot().FilledCount() != 0 {
		t.Fatalf("Clear left filled cells")
	}
	e.Undo()
	if c := cellAt(t, e, 4, 4); c != canvas.Paint(red) {
		t.Fatalf("Undo after Clear = %v, want %v", c, red)
	}
}

func TestHistory_BoundedThroughEngine(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < history.MaxEntries+5; i++ {
		click(e, i%16, i/16)
	}
	if e.HistoryLen() != history.MaxEntries {
		t.Fatalf("HistoryLen() = %d, want %d", e.HistoryLen(), history.MaxEntries)
	}
}

func TestExportSnapshot_IsDetached(t *testing.T) {
	e := newTestEngine(t)
	snap := e.ExportSnapshot()
	click(e, 0, 0)
	if snap.FilledCount() != 0 {
		t.Fatalf("snapshot observed a later edit")
	}
}

func TestSetBrushSize_RejectsNonPositive(t *testing.T) {
	e := newTestEngine(t)
	if e.SetBrushSize(0) {
		t.Fatalf("SetBrushSize(0) = true, want false")
	}
	if e.BrushSize() != 1 {
		t.Fatalf("BrushSize() = %d, want 1", e.BrushSize())
	}
}

func TestToolGestureShape(t *testing.T) {
	tests := []struct {
		tool Tool
		want Gesture
	}{
		{Pen, GestureDrag},
		{Eraser, GestureDrag},
		{Fill, GestureClick},
		{Eyedropper, GestureClick},
	}
	for _, tt := range tests {
		if got := tt.tool.Gesture(); got != tt.want {
			t.Fatalf("%v.Gesture() = %v, want %v", tt.tool, got, tt.want)
		}
	}
}
