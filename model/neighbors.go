package model

import "iter"

// neighborhood returns the in-bounds box around (col, row). The center must
// already be validated.
func (g *Grid) neighborhood(col, row int) (minX, maxX, minY, maxY int) {
	return max(0, col-1), min(g.width-1, col+1), max(0, row-1), min(g.height-1, row+1)
}

// Neighbors yields the states of the Moore neighbors of (col, row) that lie on
// the grid: 3 at a corner, 5 along an edge, 8 in the interior. Cells are read
// lazily as the sequence is consumed, and the sequence can be ranged over again.
// It panics if (col, row) is off the grid.
func (g *Grid) Neighbors(col, row int) iter.Seq[bool] {
	g.index(col, row)
	minX, maxX, minY, maxY := g.neighborhood(col, row)

	return func(yield func(bool) bool) {
		for ny := minY; ny <= maxY; ny++ {
			for nx := minX; nx <= maxX; nx++ {
				if nx == col && ny == row {
					continue
				}
				if !yield(g.cells[ny*g.width+nx]) {
					return
				}
			}
		}
	}
}

// LiveNeighbors counts the live cells among Neighbors(col, row).
func (g *Grid) LiveNeighbors(col, row int) int {
	count := 0
	for alive := range g.Neighbors(col, row) {
		if alive {
			count++
		}
	}
	return count
}
