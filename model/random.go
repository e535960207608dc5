package model

import "math/rand/v2"

// RandomSource produces uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a deterministic PCG-backed source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

type systemRandom struct{}

func (systemRandom) Float64() float64 { return rand.Float64() }

// SystemRandom draws from the process-wide generator.
var SystemRandom RandomSource = systemRandom{}

// Scatter brings each cell to life with probability density, drawn from src.
// Live cells stay alive.
func (g *Grid) Scatter(src RandomSource, density float64) {
	if src == nil {
		src = SystemRandom
	}
	for i := range g.cells {
		if src.Float64() < density {
			g.cells[i] = true
		}
	}
}

// InjectRandomLife sets count randomly chosen cells alive
func (g *Grid) InjectRandomLife(src RandomSource, count int) {
	if src == nil {
		src = SystemRandom
	}
	for range count {
		g.cells[int(src.Float64()*float64(len(g.cells)))] = true
	}
}
