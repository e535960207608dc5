package model

import "strings"

// Pattern is a rectangular stamp of cells. Each row is a string in which 'O'
// marks a live cell and any other byte a dead one.
type Pattern struct {
	Name string
	Rows []string
}

var (
	// Glider travels one cell diagonally down and right every four generations.
	Glider = Pattern{Name: "glider", Rows: []string{
		".O.",
		"..O",
		"OOO",
	}}

	// Blinker is a period-2 oscillator.
	Blinker = Pattern{Name: "blinker", Rows: []string{
		"OOO",
	}}

	// Block is a still life.
	Block = Pattern{Name: "block", Rows: []string{
		"OO",
		"OO",
	}}
)

// Width returns the length of the longest row
func (p Pattern) Width() (w int) {
	for _, r := range p.Rows {
		w = max(w, len(r))
	}
	return
}

// Height returns the number of rows
func (p Pattern) Height() int {
	return len(p.Rows)
}

// String renders the pattern one row per line
func (p Pattern) String() string {
	return strings.Join(p.Rows, "\n")
}

// Place stamps p onto the grid with its top-left corner at (col, row),
// overwriting every cell the pattern covers. It panics if any part of the
// pattern would fall off the grid.
func (g *Grid) Place(p Pattern, col, row int) {
	if p.Height() == 0 || p.Width() == 0 {
		return
	}
	g.index(col, row)
	g.index(col+p.Width()-1, row+p.Height()-1)

	for dy, line := range p.Rows {
		for dx := 0; dx < len(line); dx++ {
			g.Set(col+dx, row+dy, line[dx] == 'O')
		}
	}
}
