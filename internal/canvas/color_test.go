package canvas

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{R: 0xff}, false},
		{"00FF00", Color{G: 0xff}, false},
		{"  #0000ff ", Color{B: 0xff}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHex_Lowercase(t *testing.T) {
	c := MustParseHex("#ABCDEF")
	if got := c.Hex(); got != "#abcdef" {
		t.Fatalf("Hex() = %q, want #abcdef", got)
	}
	if got := c.NRGBA().A; got != 0xff {
		t.Fatalf("NRGBA alpha = %d, want 255", got)
	}
}

func TestCell_ZeroValueIsEmpty(t *testing.T) {
	var c Cell
	if !c.IsEmpty() || c != Empty {
		t.Fatalf("zero Cell = %v, want Empty", c)
	}
	if Paint(Black).IsEmpty() {
		t.Fatalf("Paint(Black) is empty, want filled")
	}
	if Paint(Black) == Empty {
		t.Fatalf("black must be distinguishable from empty")
	}
}
