package canvas

type point struct {
	x, y int
}

// FloodFill replaces the 4-connected region containing (x0, y0) whose cells
// equal target with fill, returning the number of cells written.
//
// Nothing is written when the start is out of bounds or target == fill.
// Callers normally pass the start cell's current value as target; if it does
// not match, the fill touches nothing.
func FloodFill(g *Grid, x0, y0 int, target, fill Cell) int {
	if !g.InBounds(x0, y0) || target == fill {
		return 0
	}

	n := g.n
	visited := make([]bool, n*n)
	work := []point{{x0, y0}}
	changed := 0

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		if !g.InBounds(p.x, p.y) {
			continue
		}
		idx := p.y*n + p.x
		if visited[idx] || g.cells[p.y][p.x] != target {
			continue
		}
		visited[idx] = true
		g.cells[p.y][p.x] = fill
		changed++

		work = append(work,
			point{p.x + 1, p.y},
			point{p.x - 1, p.y},
			point{p.x, p.y + 1},
			point{p.x, p.y - 1},
		)
	}
	return changed
}
