package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Record(t *testing.T) {
	h := NewHistory()

	h.Record(Rock)
	h.Record(Paper)
	h.Record(MoveNone) // unrecognized gestures carry no signal
	h.Record(Rock)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []Move{Paper, Rock}, h.Last(2))
	assert.Equal(t, []Move{Rock, Paper, Rock}, h.Last(10), "Last caps at history length")
}

func TestHistory_Repeated(t *testing.T) {
	h := NewHistory()

	_, ok := h.Repeated()
	assert.False(t, ok, "empty history has no repeat")

	h.Record(Rock)
	_, ok = h.Repeated()
	assert.False(t, ok, "one entry has no repeat")

	h.Record(Rock)
	m, ok := h.Repeated()
	assert.True(t, ok)
	assert.Equal(t, Rock, m)

	h.Record(Scissors)
	_, ok = h.Repeated()
	assert.False(t, ok, "repeat must be the two most recent entries")
}

func TestHistory_MostFrequent(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, MoveNone, h.MostFrequent())

	h.Record(Scissors)
	h.Record(Paper)
	h.Record(Scissors)
	assert.Equal(t, Scissors, h.MostFrequent())

	// Rock outranks Paper outranks Scissors on frequency ties.
	h.Record(Paper)
	assert.Equal(t, Paper, h.MostFrequent())

	h2 := NewHistory()
	h2.Record(Scissors)
	h2.Record(Rock)
	assert.Equal(t, Rock, h2.MostFrequent())
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory()
	h.Record(Rock)
	h.Record(Paper)

	h.Reset()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, MoveNone, h.MostFrequent())
}
