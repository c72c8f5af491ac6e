package gesture

// Smoothing defaults.
const (
	// DefaultWindow is the gesture history length used for the
	// confidence-weighted vote.
	DefaultWindow = 4
	// defaultPromoteScore is the summed-confidence bar a gesture must clear
	// before it becomes the stable output: two corroborating
	// high-confidence frames are enough, one is never.
	defaultPromoteScore = 1.5
	// observeFloor drops ambiguous frames from the history entirely.
	observeFloor = 0.5
)

// trackedMoves is the fixed vote iteration order; when two gestures tie on
// score the earlier entry wins.
var trackedMoves = [3]Gesture{Rock, Paper, Scissors}

// Tracker debounces per-frame classification into a stable gesture.
//
// Raw classification is visibly jittery frame to frame; the game needs one
// debounced signal it can sample at the moment a round locks in. The
// tracker keeps a bounded history of recent confident results, promotes a
// gesture only on confident consensus, and holds the last stable value
// through no-hand and low-confidence frames. Only Reset clears it.
//
// A Tracker is not safe for concurrent use; the pipeline feeds it one
// frame at a time.
type Tracker struct {
	window       int
	promoteScore float64
	history      []Result
	stable       Gesture
	stableCount  int
}

// NewTracker creates a Tracker with the given smoothing window.
// Windows below 2 are raised to 2 since a single frame can never
// demonstrate stability.
func NewTracker(window int) *Tracker {
	if window < 2 {
		window = 2
	}
	return &Tracker{
		window:       window,
		promoteScore: defaultPromoteScore,
		history:      make([]Result, 0, window),
	}
}

// Observe feeds one frame's classification and returns the current stable
// gesture. The output is sticky: an ambiguous or empty frame leaves it
// unchanged.
func (t *Tracker) Observe(r Result) Gesture {
	if r.Gesture != None && r.Confidence > observeFloor {
		if len(t.history) == t.window {
			copy(t.history, t.history[1:])
			t.history = t.history[:t.window-1]
		}
		t.history = append(t.history, r)
	}

	if len(t.history) < 2 {
		return t.stable
	}

	scores := make(map[Gesture]float64, len(trackedMoves))
	for _, h := range t.history {
		scores[h.Gesture] += h.Confidence
	}

	best := None
	bestScore := 0.0
	for _, g := range trackedMoves {
		if s := scores[g]; s > bestScore {
			best = g
			bestScore = s
		}
	}

	if best == None || bestScore < t.promoteScore {
		return t.stable
	}

	// Anti-flicker: the candidate must also own both of the two most
	// recent history entries, so one dissenting frame never flips the
	// output.
	n := len(t.history)
	if t.history[n-1].Gesture != best || t.history[n-2].Gesture != best {
		return t.stable
	}

	if best == t.stable {
		t.stableCount++
	} else {
		t.stable = best
		t.stableCount = 1
	}
	return t.stable
}

// Stable returns the last promoted gesture, or None before any promotion.
func (t *Tracker) Stable() Gesture {
	return t.stable
}

// StableCount returns how many consecutive promotions the current stable
// gesture has accumulated.
func (t *Tracker) StableCount() int {
	return t.stableCount
}

// Reset clears the history and the stable gesture. This is the only path
// that drops a promoted gesture; a hand leaving the frame does not.
func (t *Tracker) Reset() {
	t.history = t.history[:0]
	t.stable = None
	t.stableCount = 0
}
