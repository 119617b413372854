package canvas

// SupportedSizes lists the grid edge lengths offered to the user.
var SupportedSizes = []int{16, 32, 64}

// DefaultSize is the grid size used when none is configured.
const DefaultSize = 16

// IsSupportedSize reports whether n is one of SupportedSizes.
func IsSupportedSize(n int) bool {
	for _, s := range SupportedSizes {
		if s == n {
			return true
		}
	}
	return false
}

// NextSize returns the supported size after n, wrapping around.
func NextSize(n int) int {
	for i, s := range SupportedSizes {
		if s == n {
			return SupportedSizes[(i+1)%len(SupportedSizes)]
		}
	}
	return SupportedSizes[0]
}

// Grid is a square raster of cells. Its size never changes after New.
type Grid struct {
	n     int
	cells [][]Cell
}

// New allocates an n×n grid of Empty cells. Negative sizes yield an empty grid.
func New(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{n: n, cells: makeCells(n)}
}

func makeCells(n int) [][]Cell {
	backing := make([]Cell, n*n)
	rows := make([][]Cell, n)
	for y := range rows {
		rows[y] = backing[y*n : (y+1)*n : (y+1)*n]
	}
	return rows
}

// Size returns the edge length N.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// At returns the cell at (x, y). ok is false when out of range.
func (g *Grid) At(x, y int) (cell Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}
	return g.cells[y][x], true
}

// Set writes c at (x, y) and reports whether the stored value changed.
// Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	if g.cells[y][x] == c {
		return false
	}
	g.cells[y][x] = c
	return true
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	dup := New(g.n)
	copyCells(dup.cells, g.cells)
	return dup
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Snapshot captures the current cells as an immutable value.
func (g *Grid) Snapshot() Snapshot {
	cells := makeCells(g.n)
	copyCells(cells, g.cells)
	return Snapshot{n: g.n, cells: cells}
}

// Restore overwrites the grid from s. It fails without writing anything when
// the snapshot was taken from a grid of a different size.
func (g *Grid) Restore(s Snapshot) bool {
	if s.n != g.n {
		return false
	}
	copyCells(g.cells, s.cells)
	return true
}

func copyCells(dst, src [][]Cell) {
	for y := range src {
		copy(dst[y], src[y])
	}
}

// Snapshot is a read-only copy of a grid's cells at one instant.
type Snapshot struct {
	n     int
	cells [][]Cell
}

// Size returns the edge length of the grid the snapshot was taken from.
func (s Snapshot) Size() int {
	return s.n
}

// At returns the cell at (x, y); ok is false when out of range.
func (s Snapshot) At(x, y int) (cell Cell, ok bool) {
	if x < 0 || x >= s.n || y < 0 || y >= s.n {
		return Empty, false
	}
	return s.cells[y][x], true
}

// FilledCount returns the number of non-empty cells.
func (s Snapshot) FilledCount() int {
	count := 0
	for y := range s.cells {
		for _, c := range s.cells[y] {
			if c.Filled {
				count++
			}
		}
	}
	return count
}
