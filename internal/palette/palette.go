// Package palette loads the quick-pick color palette from a YAML file and
// watches it for edits.
package palette

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/pixday/internal/canvas"
)

// Palette is an ordered list of quick-pick colors.
type Palette struct {
	Name   string
	Colors []canvas.Color
}

var defaultHex = []string{
	"#000000", // black
	"#ffffff", // white
	"#ff0000", // red
	"#00ff00", // green
	"#0000ff", // blue
	"#ffff00", // yellow
	"#00ffff", // cyan
	"#ff00ff", // magenta
	"#808080", // gray
	"#ff8000", // orange
	"#800080", // purple
	"#008080", // teal
}

// Default returns the built-in twelve color palette.
func Default() Palette {
	colors := make([]canvas.Color, len(defaultHex))
	for i, h := range defaultHex {
		colors[i] = canvas.MustParseHex(h)
	}
	return Palette{Name: "default", Colors: colors}
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.Colors)
}

// At returns color i, wrapping in both directions. An empty palette yields black.
func (p Palette) At(i int) canvas.Color {
	n := len(p.Colors)
	if n == 0 {
		return canvas.Black
	}
	return p.Colors[((i%n)+n)%n]
}

// Index returns the position of c, or -1.
func (p Palette) Index(c canvas.Color) int {
	for i, pc := range p.Colors {
		if pc == c {
			return i
		}
	}
	return -1
}

type hexColor canvas.Color

func (h *hexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", value.Line)
	}
	c, err := canvas.ParseHex(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*h = hexColor(c)
	return nil
}

func (h hexColor) MarshalYAML() (any, error) {
	return canvas.Color(h).Hex(), nil
}

type fileSpec struct {
	Name   string     `yaml:"name"`
	Colors []hexColor `yaml:"colors"`
}

// Load reads a palette file. A missing file or empty path yields Default with
// no error; a malformed file yields Default and the parse error.
func Load(path string) (Palette, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read palette: %w", err)
	}
	return Parse(data)
}

// Parse decodes palette YAML. An empty color list falls back to Default.
func Parse(data []byte) (Palette, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Default(), fmt.Errorf("parse palette: %w", err)
	}
	if len(spec.Colors) == 0 {
		return Default(), nil
	}
	p := Palette{Name: strings.TrimSpace(spec.Name), Colors: make([]canvas.Color, len(spec.Colors))}
	if p.Name == "" {
		p.Name = "custom"
	}
	for i, c := range spec.Colors {
		p.Colors[i] = canvas.Color(c)
	}
	return p, nil
}

// Marshal encodes p in the palette file format.
func Marshal(p Palette) ([]byte, error) {
	spec := fileSpec{Name: p.Name, Colors: make([]hexColor, len(p.Colors))}
	for i, c := range p.Colors {
		spec.Colors[i] = hexColor(c)
	}
	out, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal palette: %w", err)
	}
	return out, nil
}
