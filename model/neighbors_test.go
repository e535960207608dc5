package model

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(g *Grid, col, row int) []bool {
	var states []bool
	for alive := range g.Neighbors(col, row) {
		states = append(states, alive)
	}
	return states
}

var probes = []struct {
	col, row int
	want     int
}{
	{1, 1, 8},
	{0, 0, 3},
	{0, 9, 3},
	{9, 0, 3},
	{9, 9, 3},
	{0, 3, 5},
	{3, 0, 5},
	{8, 9, 5},
	{9, 8, 5},
}

func TestNeighbors_AllEmpty(t *testing.T) {
	g := NewEmptyGrid(10, 10)

	for _, p := range probes {
		for _, alive := range collect(g, p.col, p.row) {
			require.False(t, alive, "neighbor of (%d,%d)", p.col, p.row)
		}
	}
	for row := range g.Height() {
		for col := range g.Width() {
			require.Zero(t, g.LiveNeighbors(col, row))
		}
	}
}

func TestNeighbors_Boundary(t *testing.T) {
	g := NewEmptyGrid(10, 10)

	for _, p := range probes {
		assert.Len(t, collect(g, p.col, p.row), p.want, "neighbors of (%d,%d)", p.col, p.row)
	}
}

func TestNeighbors_BoundaryNonSquare(t *testing.T) {
	g := NewEmptyGrid(7, 4)

	for row := range g.Height() {
		for col := range g.Width() {
			onX := col == 0 || col == g.Width()-1
			onY := row == 0 || row == g.Height()-1

			want := 8
			switch {
			case onX && onY:
				want = 3
			case onX || onY:
				want = 5
			}
			require.Len(t, collect(g, col, row), want, "neighbors of (%d,%d)", col, row)
		}
	}
}

func TestNeighbors_SingleRowAndColumn(t *testing.T) {
	row := NewEmptyGrid(5, 1)
	require.Len(t, collect(row, 0, 0), 1)
	require.Len(t, collect(row, 2, 0), 2)

	col := NewEmptyGrid(1, 5)
	require.Len(t, collect(col, 0, 4), 1)
	require.Len(t, collect(col, 0, 2), 2)
}

func TestNeighbors_AllFull(t *testing.T) {
	g := NewEmptyGrid(199, 100)
	fill(g, func(int, int) bool { return true })

	for _, p := range probes {
		for _, alive := range collect(g, p.col, p.row) {
			require.True(t, alive, "neighbor of (%d,%d)", p.col, p.row)
		}
	}
}

func TestNeighbors_Mixed(t *testing.T) {
	g := NewEmptyGrid(199, 100)
	fill(g, func(col, row int) bool { return (col+row)%2 == 0 })

	live, dead := 0, 0
	for alive := range g.Neighbors(1, 1) {
		if alive {
			live++
		} else {
			dead++
		}
	}
	require.Equal(t, 4, live)
	require.Equal(t, 4, dead)
	require.Equal(t, 4, g.LiveNeighbors(1, 1))
}

func TestNeighbors_LazyAndRestartable(t *testing.T) {
	g := NewEmptyGrid(3, 3)
	seq := g.Neighbors(1, 1)

	require.Zero(t, count(seq))

	// reads happen while ranging, not when the sequence is created
	g.Set(0, 0, true)
	g.Set(2, 2, true)
	require.Equal(t, 2, count(seq))
	require.Equal(t, 2, count(seq))

	seen := 0
	for range seq {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

func TestNeighbors_ExcludesCenter(t *testing.T) {
	g := NewEmptyGrid(3, 3)
	g.Set(1, 1, true)

	require.Zero(t, g.LiveNeighbors(1, 1))
	require.Equal(t, 1, g.LiveNeighbors(0, 0))
}

func count(seq iter.Seq[bool]) (n int) {
	for alive := range seq {
		if alive {
			n++
		}
	}
	return
}
