package utils

const (
	historySize = 5
	// longest oscillator period recognised as stagnation
	maxPeriod = 3
)

// StagnationTracker remembers the hashes of recent generations to spot still
// lifes and short-period oscillators.
type StagnationTracker struct {
	history []string
}

func NewStagnationTracker() *StagnationTracker {
	return &StagnationTracker{history: make([]string, 0, historySize)}
}

// Observe records hash and reports whether it repeats one of the previous
// maxPeriod generations.
func (s *StagnationTracker) Observe(hash string) bool {
	stagnant := false
	for i := 1; i <= maxPeriod && i <= len(s.history); i++ {
		if s.history[len(s.history)-i] == hash {
			stagnant = true
			break
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
	return stagnant
}

// Reset forgets all recorded generations
func (s *StagnationTracker) Reset() {
	s.history = s.history[:0]
}
