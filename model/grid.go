package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Grid is a fixed-size, non-wrapping Game of Life board.
//
// Cells are stored row-major in a single slice: the cell at (col, row) lives at
// index row*width + col. A Grid is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// Point addresses a single cell by column and row.
type Point struct {
	Col, Row int
}

func newGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(errors.Errorf("invalid grid size: dimensions must be positive, got width=%d height=%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// NewEmptyGrid creates a grid with every cell dead. It panics if either
// dimension is not positive.
func NewEmptyGrid(width, height int) *Grid {
	return newGrid(width, height)
}

// NewSeededGrid creates a grid holding the fixed demonstration pattern: the
// cell at flat index i is alive iff i%2 == 0 || i%7 == 0.
func NewSeededGrid(width, height int) *Grid {
	g := newGrid(width, height)
	for i := range g.cells {
		g.cells[i] = i%2 == 0 || i%7 == 0
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// index maps (col, row) to its offset in cells, panicking on out-of-range input.
func (g *Grid) index(col, row int) int {
	if col < 0 || col >= g.width {
		panic(errors.Errorf("column %d out of range [0,%d)", col, g.width))
	}
	if row < 0 || row >= g.height {
		panic(errors.Errorf("row %d out of range [0,%d)", row, g.height))
	}
	return row*g.width + col
}

// Get returns the state of a cell
func (g *Grid) Get(col, row int) bool {
	return g.cells[g.index(col, row)]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(col, row int, alive bool) {
	g.cells[g.index(col, row)] = alive
}

// Flip inverts the state of a cell
func (g *Grid) Flip(col, row int) {
	idx := g.index(col, row)
	g.cells[idx] = !g.cells[idx]
}

// SetCells marks every given coordinate alive.
func (g *Grid) SetCells(points ...Point) {
	for _, p := range points {
		g.Set(p.Col, p.Row, true)
	}
}

// Clear kills every cell, keeping the dimensions.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Randomize replaces every cell with an independent coin flip drawn from src.
// A nil src falls back to SystemRandom.
func (g *Grid) Randomize(src RandomSource) {
	if src == nil {
		src = SystemRandom
	}
	for i := range g.cells {
		g.cells[i] = src.Float64() > 0.5
	}
}

// Tick advances the grid by one generation.
//
// Every cell that changes state is collected from reads of the current
// generation before any of them is written back.
func (g *Grid) Tick() {
	flips := flipBuffers.Get()
	defer flipBuffers.Put(flips)

	for row := range g.height {
		for col := range g.width {
			idx := row*g.width + col
			if rules.Flips(g.LiveNeighbors(col, row), g.cells[idx]) {
				*flips = append(*flips, idx)
			}
		}
	}

	for _, idx := range *flips {
		g.cells[idx] = !g.cells[idx]
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current cell states.
func (g *Grid) Hash() string {
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}
