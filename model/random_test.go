package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays a fixed list of values, wrapping around.
type sequence struct {
	values []float64
	next   int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestRandomize_FixedSource(t *testing.T) {
	g := NewEmptyGrid(4, 2)
	g.Randomize(&sequence{values: []float64{0.1, 0.9, 0.5, 0.75}})

	want := []bool{false, true, false, true, false, true, false, true}
	got := make([]bool, g.Cells().Len())
	g.Cells().CopyTo(got)
	require.Equal(t, want, got)
}

func TestRandomize_Distribution(t *testing.T) {
	g := NewEmptyGrid(100, 100)
	g.Randomize(NewRandomSource(42))

	require.Equal(t, 100, g.Width())
	require.Equal(t, 100, g.Height())

	ratio := float64(g.CountLivingCells()) / float64(g.Cells().Len())
	assert.InDelta(t, 0.5, ratio, 0.05, "about half the cells should be alive")
}

func TestRandomize_SeedIsReproducible(t *testing.T) {
	a, b := NewEmptyGrid(32, 16), NewEmptyGrid(32, 16)
	a.Randomize(NewRandomSource(7))
	b.Randomize(NewRandomSource(7))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestRandomize_NilSourceUsesSystem(t *testing.T) {
	g := NewEmptyGrid(3, 3)
	require.NotPanics(t, func() { g.Randomize(nil) })
	require.Equal(t, 9, g.Cells().Len())
}

func TestScatter(t *testing.T) {
	g := NewEmptyGrid(4, 1)
	g.Set(3, 0, true)
	g.Scatter(&sequence{values: []float64{0.1, 0.9, 0.2, 0.9}}, 0.15)

	require.True(t, g.Get(0, 0))
	require.False(t, g.Get(1, 0))
	require.False(t, g.Get(2, 0), "0.2 is above the density")
	require.True(t, g.Get(3, 0), "live cells are never killed")
}

func TestScatter_ZeroDensity(t *testing.T) {
	g := NewEmptyGrid(10, 10)
	g.Scatter(NewRandomSource(1), 0)
	require.Zero(t, g.CountLivingCells())
}

func TestInjectRandomLife(t *testing.T) {
	g := NewEmptyGrid(5, 2)
	g.InjectRandomLife(&sequence{values: []float64{0, 0.55, 0.99}}, 3)

	require.Equal(t, 3, g.CountLivingCells())
	require.True(t, g.Get(0, 0))
	require.True(t, g.Get(0, 1))
	require.True(t, g.Get(4, 1))
}
