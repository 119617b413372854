package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

// Black is the default active color.
var Black = Color{}

// ParseHex decodes "#rrggbb" (the leading '#' is optional, case-insensitive).
func ParseHex(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// NRGBA converts to an opaque image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Cell is one grid position: a Color or Empty. The zero value is Empty.
type Cell struct {
	Color  Color
	Filled bool
}

// Empty is the transparent cell value.
var Empty = Cell{}

// Paint returns a filled cell of color c.
func Paint(c Color) Cell {
	return Cell{Color: c, Filled: true}
}

// IsEmpty reports whether the cell holds no color.
func (c Cell) IsEmpty() bool {
	return !c.Filled
}

func (c Cell) String() string {
	if !c.Filled {
		return "empty"
	}
	return c.Color.Hex()
}
