package canvas

import (
	"math/rand"
	"testing"
)

var (
	red  = MustParseHex("#ff0000")
	blue = MustParseHex("#0000ff")
)

func TestNew_AllEmpty(t *testing.T) {
	g := New(16)
	if g.Size() != 16 {
		t.Fatalf("Size() = %d, want 16", g.Size())
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c, ok := g.At(x, y)
			if !ok || !c.IsEmpty() {
				t.Fatalf("At(%d,%d) = %v,%v, want empty,true", x, y, c, ok)
			}
		}
	}
}

func TestNew_NegativeSizeIsEmptyGrid(t *testing.T) {
	g := New(-3)
	if g.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", g.Size())
	}
	if g.Set(0, 0, Paint(red)) {
		t.Fatalf("Set on 0x0 grid reported a change")
	}
}

func TestSet_ReportsChange(t *testing.T) {
	g := New(4)
	if !g.Set(1, 2, Paint(red)) {
		t.Fatalf("first Set = false, want true")
	}
	if g.Set(1, 2, Paint(red)) {
		t.Fatalf("repeated Set = true, want false")
	}
	if !g.Set(1, 2, Empty) {
		t.Fatalf("Set to Empty = false, want true")
	}
}

func TestSetAndAt_OutOfRange(t *testing.T) {
	g := New(4)
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x == n", 4, 0},
		{"y == n", 0, 4},
		{"far away", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g.Set(tt.x, tt.y, Paint(red)) {
				t.Fatalf("Set(%d,%d) = true, want false", tt.x, tt.y)
			}
			if _, ok := g.At(tt.x, tt.y); ok {
				t.Fatalf("At(%d,%d) ok = true, want false", tt.x, tt.y)
			}
		})
	}
}

func TestSet_LastWriteWins(t *testing.T) {
	const n = 8
	g := New(n)
	want := make(map[[2]int]Cell)
	rng := rand.New(rand.NewSource(7))
	palette := []Cell{Empty, Paint(red), Paint(blue), Paint(Black)}

	for i := 0; i < 500; i++ {
		x, y := rng.Intn(n), rng.Intn(n)
		c := palette[rng.Intn(len(palette))]
		g.Set(x, y, c)
		want[[2]int{x, y}] = c
	}
	for pos, c := range want {
		got, _ := g.At(pos[0], pos[1])
		if got != c {
			t.Fatalf("At(%d,%d) = %v, want %v", pos[0], pos[1], got, c)
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := New(4)
	g.Set(0, 0, Paint(red))
	dup := g.Clone()
	if !dup.Equal(g) {
		t.Fatalf("clone not equal to source")
	}
	g.Set(0, 0, Paint(blue))
	if c, _ := dup.At(0, 0); c != Paint(red) {
		t.Fatalf("clone changed with source: got %v", c)
	}
}

func TestClear(t *testing.T) {
	g := New(4)
	g.Set(3, 3, Paint(red))
	g.Clear()
	if !g.Equal(New(4)) {
		t.Fatalf("Clear left filled cells")
	}
}

func TestSnapshot_RestoreRoundTrip(t *testing.T) {
	g := New(4)
	g.Set(1, 1, Paint(red))
	snap := g.Snapshot()

	g.Set(1, 1, Paint(blue))
	g.Set(2, 2, Paint(blue))
	if c, _ := snap.At(1, 1); c != Paint(red) {
		t.Fatalf("snapshot mutated with grid: got %v", c)
	}

	if !g.Restore(snap) {
		t.Fatalf("Restore = false, want true")
	}
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			got, _ := g.At(x, y)
			want, _ := snap.At(x, y)
			if got != want {
				t.Fatalf("restored cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if snap.FilledCount() != 1 {
		t.Fatalf("FilledCount = %d, want 1", snap.FilledCount())
	}
}

func TestRestore_RejectsSizeMismatch(t *testing.T) {
	g := New(4)
	g.Set(0, 0, Paint(red))
	if g.Restore(New(8).Snapshot()) {
		t.Fatalf("Restore with different size = true, want false")
	}
	if c, _ := g.At(0, 0); c != Paint(red) {
		t.Fatalf("failed Restore modified grid")
	}
}

func TestNextSize(t *testing.T) {
	tests := []struct{ in, want int }{
		{16, 32},
		{32, 64},
		{64, 16},
		{7, 16},
	}
	for _, tt := range tests {
		if got := NextSize(tt.in); got != tt.want {
			t.Fatalf("NextSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if IsSupportedSize(20) {
		t.Fatalf("IsSupportedSize(20) = true, want false")
	}
}
