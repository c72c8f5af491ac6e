package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strategyTrials = 5000

// sampleChoices draws repeated choices from a fresh seeded strategist
// against a fixed history and returns the per-move frequencies.
func sampleChoices(level Difficulty, moves []Move) map[Move]float64 {
	s := NewSeededStrategist(42)
	hist := NewHistory()
	for _, m := range moves {
		hist.Record(m)
	}

	counts := make(map[Move]int)
	for i := 0; i < strategyTrials; i++ {
		counts[s.Choose(level, hist)]++
	}

	freq := make(map[Move]float64, len(counts))
	for m, c := range counts {
		freq[m] = float64(c) / strategyTrials
	}
	return freq
}

func TestParseDifficulty(t *testing.T) {
	for _, name := range []string{"Easy", "Medium", "Hard"} {
		d, ok := ParseDifficulty(name)
		assert.True(t, ok)
		assert.Equal(t, Difficulty(name), d)
	}

	_, ok := ParseDifficulty("Impossible")
	assert.False(t, ok)
	_, ok = ParseDifficulty("easy")
	assert.False(t, ok, "difficulty names are case-sensitive")
}

func TestStrategist_Easy(t *testing.T) {
	freq := sampleChoices(Easy, []Move{Rock, Rock, Rock})

	// Uniform regardless of history.
	for _, m := range Moves {
		assert.InDelta(t, 1.0/3, freq[m], 0.03, "move %s", m)
	}
}

func TestStrategist_Medium(t *testing.T) {
	t.Run("thin history falls back to random", func(t *testing.T) {
		freq := sampleChoices(Medium, []Move{Rock})
		for _, m := range Moves {
			assert.InDelta(t, 1.0/3, freq[m], 0.03, "move %s", m)
		}
	})

	t.Run("counters the dominant recent move", func(t *testing.T) {
		// Recent window is all Rock, so 60% of choices counter with Paper
		// and the rest are uniform: 0.6 + 0.4/3 ~ 0.733.
		freq := sampleChoices(Medium, []Move{Rock, Rock, Rock})

		assert.InDelta(t, 0.733, freq[Paper], 0.03)
		assert.InDelta(t, 0.133, freq[Rock], 0.03)
		assert.InDelta(t, 0.133, freq[Scissors], 0.03)
	})

	t.Run("only the recent window matters", func(t *testing.T) {
		// Early Rocks are outside the three-move window; the recent
		// majority is Scissors, countered by Rock.
		freq := sampleChoices(Medium, []Move{Rock, Rock, Scissors, Scissors, Paper})

		assert.InDelta(t, 0.733, freq[Rock], 0.03)
	})
}

func TestStrategist_Hard(t *testing.T) {
	t.Run("empty history falls back to random", func(t *testing.T) {
		freq := sampleChoices(Hard, nil)
		for _, m := range Moves {
			assert.InDelta(t, 1.0/3, freq[m], 0.03, "move %s", m)
		}
	})

	t.Run("counters a repeated move", func(t *testing.T) {
		// Rock played twice in a row predicts a third Rock; 80% of choices
		// counter with Paper, the rest are uniform: 0.8 + 0.2/3 ~ 0.867.
		freq := sampleChoices(Hard, []Move{Rock, Rock})

		assert.InDelta(t, 0.867, freq[Paper], 0.03)
		assert.InDelta(t, 0.067, freq[Rock], 0.03)
		assert.InDelta(t, 0.067, freq[Scissors], 0.03)
	})

	t.Run("counters the session-wide favorite without a repeat", func(t *testing.T) {
		// No repeat in the last two moves; the overall favorite is
		// Scissors, countered by Rock.
		freq := sampleChoices(Hard, []Move{Scissors, Scissors, Paper, Scissors, Rock})

		assert.InDelta(t, 0.867, freq[Rock], 0.03)
	})
}

func TestNewSeededStrategist_Deterministic(t *testing.T) {
	a := NewSeededStrategist(7)
	b := NewSeededStrategist(7)
	hist := NewHistory()

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Choose(Easy, hist), b.Choose(Easy, hist))
	}
}
