package model

import "iter"

// CellView is a read-only window onto a Grid's live cell buffer.
//
// The layout is row-major with one bool per cell and Len() == Width()*Height().
// No copy is made, so a view is only valid until the grid is next mutated by
// Set, Flip, SetCells, Place, Clear, Randomize, Scatter, InjectRandomLife
// or Tick.
type CellView struct {
	cells []bool
	width int
}

// Cells returns a zero-copy view of the cell buffer.
func (g *Grid) Cells() CellView {
	return CellView{cells: g.cells, width: g.width}
}

// Len returns the number of cells
func (v CellView) Len() int { return len(v.cells) }

// Width returns the row length of the underlying grid
func (v CellView) Width() int { return v.width }

// Height returns the number of rows of the underlying grid
func (v CellView) Height() int {
	if v.width == 0 {
		return 0
	}
	return len(v.cells) / v.width
}

// At returns the cell at flat index i.
func (v CellView) At(i int) bool { return v.cells[i] }

// All yields every (index, state) pair in row-major order.
func (v CellView) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i, alive := range v.cells {
			if !yield(i, alive) {
				return
			}
		}
	}
}

// CopyTo copies the cells into dst and returns the number copied.
func (v CellView) CopyTo(dst []bool) int {
	return copy(dst, v.cells)
}
