package engine

import "fmt"

// Tool is the active editing tool.
type Tool int

const (
	Pen Tool = iota
	Eraser
	Fill
	Eyedropper
)

// Gesture describes how a tool consumes pointer input.
type Gesture int

const (
	// GestureDrag tools act on press and on every move until release.
	GestureDrag Gesture = iota
	// GestureClick tools act once on press and ignore movement.
	GestureClick
)

// Gesture returns the pointer gesture shape the tool uses.
func (t Tool) Gesture() Gesture {
	switch t {
	case Fill, Eyedropper:
		return GestureClick
	default:
		return GestureDrag
	}
}

func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	case Fill:
		return "fill"
	case Eyedropper:
		return "eyedropper"
	default:
		return fmt.Sprintf("tool(%d)", int(t))
	}
}
