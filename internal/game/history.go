package game

// History is the append-only record of the player's confirmed choices for
// the current session, with a per-move frequency tally. It grows once per
// completed round and is cleared only by a session reset.
//
// History is not safe for concurrent use on its own; the owning Session
// serializes access.
type History struct {
	moves []Move
	tally map[Move]int
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{tally: make(map[Move]int)}
}

// Record appends one confirmed player choice. MoveNone is never recorded:
// an unrecognized gesture tells the opponent nothing about player habits.
func (h *History) Record(m Move) {
	if m == MoveNone {
		return
	}
	h.moves = append(h.moves, m)
	h.tally[m]++
}

// Len returns the number of recorded choices.
func (h *History) Len() int {
	return len(h.moves)
}

// Last returns up to n of the most recent choices, oldest first.
func (h *History) Last(n int) []Move {
	if n > len(h.moves) {
		n = len(h.moves)
	}
	return h.moves[len(h.moves)-n:]
}

// Repeated reports whether the two most recent choices are the same move,
// and which move that is.
func (h *History) Repeated() (Move, bool) {
	n := len(h.moves)
	if n < 2 || h.moves[n-1] != h.moves[n-2] {
		return MoveNone, false
	}
	return h.moves[n-1], true
}

// MostFrequent returns the most common move over the whole history, with
// ties broken by the fixed Moves priority order. Returns MoveNone for an
// empty history.
func (h *History) MostFrequent() Move {
	return mostFrequent(h.tally)
}

// Reset clears all recorded choices and tallies.
func (h *History) Reset() {
	h.moves = h.moves[:0]
	h.tally = make(map[Move]int)
}

// mostFrequent picks the highest-count move from a tally using the fixed
// priority order for ties.
func mostFrequent(tally map[Move]int) Move {
	best := MoveNone
	bestCount := 0
	for _, m := range Moves {
		if c := tally[m]; c > bestCount {
			best = m
			bestCount = c
		}
	}
	return best
}

// tallyOf counts occurrences in a slice of moves.
func tallyOf(moves []Move) map[Move]int {
	t := make(map[Move]int, len(Moves))
	for _, m := range moves {
		t[m]++
	}
	return t
}
