// Package gesture classifies hand landmarks into rock-paper-scissors
// gestures and debounces the noisy per-frame results into a stable signal.
package gesture

import (
	"math"

	"github.com/ayusman/janken/internal/detector"
)

// Finger extension thresholds, in normalized image units.
const (
	// orientationRatio decides vertical vs horizontal hand orientation from
	// the wrist to middle fingertip displacement.
	orientationRatio = 1.2
	// thumbSpreadX is the minimum horizontal thumb tip to MCP displacement
	// for an extended thumb on a vertical hand.
	thumbSpreadX = 0.06
	// thumbSpreadDist is the minimum thumb tip to MCP distance for an
	// extended thumb on a horizontal hand.
	thumbSpreadDist = 0.08
	// tipAboveMargin is how far a fingertip must sit above its PIP joint
	// (vertical hands) to count as extended.
	tipAboveMargin = 0.015
	// tipReachRatio compares tip-to-MCP against PIP-to-MCP distance for
	// horizontal hands.
	tipReachRatio = 1.4
)

// FingerState is the extended/retracted state of each finger, in canonical
// order thumb, index, middle, ring, pinky.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// Count returns the number of extended fingers.
func (f FingerState) Count() int {
	n := 0
	for _, up := range [5]bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if up {
			n++
		}
	}
	return n
}

// fingerJoints lists (MCP, PIP, tip) landmark indices for the four
// non-thumb fingers in canonical order.
var fingerJoints = [4][3]int{
	{detector.IndexMCP, detector.IndexPIP, detector.IndexTip},
	{detector.MiddleMCP, detector.MiddlePIP, detector.MiddleTip},
	{detector.RingMCP, detector.RingPIP, detector.RingTip},
	{detector.PinkyMCP, detector.PinkyPIP, detector.PinkyTip},
}

// verticalHand reports whether the hand points up or down in the image
// rather than sideways.
func verticalHand(h *detector.HandLandmarks) bool {
	d := h.Points[detector.MiddleTip].Sub(h.Points[detector.Wrist])
	return math.Abs(d.Y) > math.Abs(d.X)*orientationRatio
}

// ExtractFingerState derives the per-finger extension vector from one
// landmark frame. The caller must supply exactly 21 valid points; malformed
// frames are rejected upstream at the detector boundary.
func ExtractFingerState(h *detector.HandLandmarks) FingerState {
	vertical := verticalHand(h)

	var fs FingerState

	thumbTip := h.Points[detector.ThumbTip]
	thumbMCP := h.Points[detector.ThumbMCP]
	if vertical {
		fs.Thumb = math.Abs(thumbTip.X-thumbMCP.X) > thumbSpreadX
	} else {
		fs.Thumb = detector.Dist(thumbTip, thumbMCP) > thumbSpreadDist
	}

	var up [4]bool
	for i, j := range fingerJoints {
		mcp := h.Points[j[0]]
		pip := h.Points[j[1]]
		tip := h.Points[j[2]]
		if vertical {
			// Y grows downward: an extended fingertip sits above its PIP.
			up[i] = tip.Y < pip.Y-tipAboveMargin
		} else {
			up[i] = detector.Dist(tip, mcp) > tipReachRatio*detector.Dist(pip, mcp)
		}
	}
	fs.Index, fs.Middle, fs.Ring, fs.Pinky = up[0], up[1], up[2], up[3]

	return fs
}
