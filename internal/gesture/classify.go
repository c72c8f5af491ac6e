package gesture

import (
	"github.com/ayusman/janken/internal/detector"
)

// Gesture is a recognized rock-paper-scissors hand shape. The zero value
// means no gesture was recognized.
type Gesture string

const (
	None     Gesture = ""
	Rock     Gesture = "Rock"
	Paper    Gesture = "Paper"
	Scissors Gesture = "Scissors"
)

// Result is one frame's classification with its confidence in [0,1].
// A None gesture always carries confidence 0.
type Result struct {
	Gesture    Gesture `json:"gesture"`
	Confidence float64 `json:"confidence"`
}

// Confidence scoring constants.
const (
	// baseConfidence is assigned once the primary method recognizes a
	// gesture; each corroborating secondary method adds methodBonus.
	baseConfidence = 0.8
	methodBonus    = 0.1
	// minConfidence is the global floor below which a frame is discarded.
	minConfidence = 0.6
)

// Distance-method thresholds, in palm units (wrist to middle MCP = 1).
const (
	paperReach    = 1.6  // mean fingertip-to-wrist distance for an open palm
	paperSpread   = 0.6  // mean adjacent-fingertip spread for an open palm
	scissorsReach = 1.1  // two long fingers pull the mean above this
	scissorsGap   = 0.45 // index and middle tips held together
)

// Angle-method thresholds, in degrees at the PIP joint.
const (
	straightFinger = 160.0
	bentFinger     = 120.0
)

// Config holds classifier tuning. Floors are per-gesture minimum
// confidences applied on top of the global floor; a classification below
// its floor is reported as None for the frame.
type Config struct {
	MinConfidence float64
	Floors        map[Gesture]float64
}

// DefaultConfig returns the stock thresholds. Paper demands the most
// certainty since an opening hand passes through paper-like shapes.
func DefaultConfig() Config {
	return Config{
		MinConfidence: minConfidence,
		Floors: map[Gesture]float64{
			Rock:     0.75,
			Paper:    0.85,
			Scissors: 0.80,
		},
	}
}

// Classifier turns one landmark frame into a confidence-scored gesture.
// Three independent heuristics are evaluated per frame: the finger-count
// method decides, the distance and angle methods only corroborate.
type Classifier struct {
	config Config
}

// NewClassifier creates a Classifier with the given configuration.
func NewClassifier(config Config) *Classifier {
	return &Classifier{config: config}
}

// Classify scores one frame. Frames whose confidence lands below the
// applicable floor come back as {None, 0} so downstream smoothing never
// sees low-quality spikes.
func (c *Classifier) Classify(h *detector.HandLandmarks) Result {
	if h == nil {
		return Result{}
	}

	primary := classifyByCount(ExtractFingerState(h))
	if primary == None {
		return Result{}
	}

	confidence := baseConfidence
	if classifyByDistance(h) == primary {
		confidence += methodBonus
	}
	if classifyByAngle(h) == primary {
		confidence += methodBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	floor := c.config.MinConfidence
	if f, ok := c.config.Floors[primary]; ok && f > floor {
		floor = f
	}
	if confidence < floor {
		return Result{}
	}

	return Result{Gesture: primary, Confidence: confidence}
}

// classifyByCount is the primary method: it maps the extended-finger
// vector to a gesture.
func classifyByCount(fs FingerState) Gesture {
	total := fs.Count()
	switch {
	case total >= 4:
		return Paper
	case total == 2 && fs.Index && fs.Middle && !fs.Ring && !fs.Pinky:
		return Scissors
	case total <= 2:
		return Rock
	default:
		return None
	}
}

// classifyByDistance looks at how far the fingertips sit from the wrist
// and from each other, scale-normalized to palm units.
func classifyByDistance(h *detector.HandLandmarks) Gesture {
	palm := h.PalmSize()
	if palm < 1e-10 {
		return None
	}

	wrist := h.Points[detector.Wrist]

	var reach float64
	for _, tip := range detector.FingertipIndices {
		reach += detector.Dist(h.Points[tip], wrist)
	}
	reach /= 5 * palm

	var spread float64
	for i := 0; i < len(detector.FingertipIndices)-1; i++ {
		a := h.Points[detector.FingertipIndices[i]]
		b := h.Points[detector.FingertipIndices[i+1]]
		spread += detector.Dist(a, b)
	}
	spread /= 4 * palm

	tipGap := detector.Dist(h.Points[detector.IndexTip], h.Points[detector.MiddleTip]) / palm

	switch {
	case reach >= paperReach && spread >= paperSpread:
		return Paper
	case reach >= scissorsReach && tipGap <= scissorsGap:
		return Scissors
	case reach < scissorsReach:
		return Rock
	default:
		return None
	}
}

// classifyByAngle measures the bend at each non-thumb PIP joint: the angle
// between the PIP->MCP and PIP->tip rays is ~180 degrees for a straight
// finger and collapses as the finger curls.
func classifyByAngle(h *detector.HandLandmarks) Gesture {
	var straight [4]bool
	straightCount, bentCount := 0, 0

	for i, j := range fingerJoints {
		angle := detector.Angle(h.Points[j[1]], h.Points[j[0]], h.Points[j[2]])
		if angle > straightFinger {
			straight[i] = true
			straightCount++
		}
		if angle < bentFinger {
			bentCount++
		}
	}

	switch {
	case straightCount >= 3:
		return Paper
	case straightCount == 2 && straight[0] && straight[1]:
		return Scissors
	case bentCount >= 3:
		return Rock
	default:
		return None
	}
}
