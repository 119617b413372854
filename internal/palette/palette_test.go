package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/pixday/internal/canvas"
)

func TestDefault_TwelveColors(t *testing.T) {
	p := Default()
	if p.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", p.Len())
	}
	if p.At(0) != canvas.Black {
		t.Fatalf("At(0) = %v, want black", p.At(0))
	}
	if got := p.At(-1).Hex(); got != "#008080" {
		t.Fatalf("At(-1) = %q, want #008080", got)
	}
	if got := p.At(14).Hex(); got != "#ff0000" {
		t.Fatalf("At(14) = %q, want #ff0000", got)
	}
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Name != "default" {
		t.Fatalf("Name = %q, want default", p.Name)
	}
}

func TestParse_ReadsHexColors(t *testing.T) {
	p, err := Parse([]byte(`
name: sunset
colors:
  - "#FF8800"
  - "220044"
`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if p.Name != "sunset" || p.Len() != 2 {
		t.Fatalf("palette = %+v, want sunset with 2 colors", p)
	}
	if p.Colors[1].Hex() != "#220044" {
		t.Fatalf("Colors[1] = %q, want #220044", p.Colors[1].Hex())
	}
	if p.Index(canvas.MustParseHex("#ff8800")) != 0 {
		t.Fatalf("Index(#ff8800) != 0")
	}
}

func TestParse_InvalidHexReportsValue(t *testing.T) {
	p, err := Parse([]byte("colors:\n  - \"#12345\"\n"))
	if err == nil {
		t.Fatalf("Parse returned nil error, want invalid color")
	}
	if !strings.Contains(err.Error(), "#12345") {
		t.Fatalf("error = %q, want it to name the bad value", err.Error())
	}
	if p.Name != "default" {
		t.Fatalf("fallback Name = %q, want default", p.Name)
	}
}

func TestParse_EmptyColorsFallsBack(t *testing.T) {
	p, err := Parse([]byte("name: nothing\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if p.Len() != 12 {
		t.Fatalf("Len() = %d, want default 12", p.Len())
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	in := Palette{Name: "duo", Colors: []canvas.Color{canvas.MustParseHex("#102030"), canvas.MustParseHex("#a0b0c0")}}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if !strings.Contains(string(data), "#102030") {
		t.Fatalf("marshalled palette = %q, want hex strings", data)
	}
	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if out.Name != "duo" || out.Len() != 2 || out.Colors[1] != in.Colors[1] {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	if err := os.WriteFile(path, []byte("colors: [\"#000000\"]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	// Writes to sibling files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(path, []byte("colors: [\"#ffffff\"]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Clean(got) != w.Path() {
			t.Fatalf("event path = %q, want %q", got, w.Path())
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for palette write event")
	}
}
