package game

import (
	rand "math/rand/v2"
	"time"
)

// Difficulty selects the opponent's move-selection strategy.
type Difficulty string

const (
	Easy   Difficulty = "Easy"   // uniform random
	Medium Difficulty = "Medium" // adapts to recent player choices
	Hard   Difficulty = "Hard"   // predicts and counters the player
)

// ParseDifficulty maps a string to a Difficulty. Only exact names are
// accepted; anything else is rejected.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), true
	}
	return "", false
}

// Strategy blend probabilities: how often the adaptive and counter
// strategies play the countering move instead of a random one.
const (
	adaptiveCounterChance = 0.6
	hardCounterChance     = 0.8
	// adaptiveRecent is how many recent player choices the Medium strategy
	// inspects.
	adaptiveRecent = 3
)

// Strategist selects the opponent's move for a given difficulty. It owns
// the single process-wide random source so win/lose outcomes stay
// traceable to one seed under test; no other component draws randomness.
type Strategist struct {
	rng *rand.Rand
}

// NewStrategist creates a Strategist seeded from the wall clock.
func NewStrategist() *Strategist {
	return NewSeededStrategist(uint64(time.Now().UnixNano()))
}

// NewSeededStrategist creates a deterministic Strategist for tests.
func NewSeededStrategist(seed uint64) *Strategist {
	return &Strategist{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Choose selects the opponent's move given the difficulty and the player's
// recorded choice history.
func (s *Strategist) Choose(level Difficulty, hist *History) Move {
	switch level {
	case Medium:
		return s.adaptiveChoice(hist)
	case Hard:
		return s.counterChoice(hist)
	default:
		return s.randomMove()
	}
}

func (s *Strategist) randomMove() Move {
	return Moves[s.rng.IntN(len(Moves))]
}

// adaptiveChoice counters the player's most common recent move 60% of the
// time once enough history exists.
func (s *Strategist) adaptiveChoice(hist *History) Move {
	if hist.Len() < 2 {
		return s.randomMove()
	}

	recent := mostFrequent(tallyOf(hist.Last(adaptiveRecent)))
	if recent != MoveNone && s.rng.Float64() < adaptiveCounterChance {
		return Counter(recent)
	}
	return s.randomMove()
}

// counterChoice predicts the player's next move and counters it 80% of the
// time.
func (s *Strategist) counterChoice(hist *History) Move {
	if hist.Len() == 0 {
		return s.randomMove()
	}

	predicted := s.predictMove(hist)
	if s.rng.Float64() < hardCounterChance {
		return Counter(predicted)
	}
	return s.randomMove()
}

// predictMove guesses the player's next choice: a move played twice in a
// row is expected a third time, otherwise the single most frequent choice
// across the whole session wins.
func (s *Strategist) predictMove(hist *History) Move {
	if hist.Len() < 2 {
		return s.randomMove()
	}
	if m, ok := hist.Repeated(); ok {
		return m
	}
	return hist.MostFrequent()
}
