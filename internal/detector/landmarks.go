// Package detector provides hand detection interfaces and landmark types.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// FingertipIndices lists the five fingertip landmarks in canonical finger
// order (thumb, index, middle, ring, pinky).
var FingertipIndices = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// Point3D represents a 3D point in normalized image coordinates.
// X and Y are in [0,1] with Y growing downward; Z is relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns the vector from q to p.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Angle returns the angle in degrees at vertex v between the rays v->a and
// v->b. Returns 0 for degenerate rays.
func Angle(v, a, b Point3D) float64 {
	u := a.Sub(v)
	w := b.Sub(v)
	nu := math.Sqrt(u.X*u.X + u.Y*u.Y + u.Z*u.Z)
	nw := math.Sqrt(w.X*w.X + w.Y*w.Y + w.Z*w.Z)
	if nu < 1e-10 || nw < 1e-10 {
		return 0
	}
	cos := (u.X*w.X + u.Y*w.Y + u.Z*w.Z) / (nu * nw)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// HandLandmarks represents the 21 hand landmarks for one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// PalmSize returns the wrist to middle finger MCP distance, a scale
// reference that stays stable across finger poses.
func (h *HandLandmarks) PalmSize() float64 {
	return Dist(h.Points[Wrist], h.Points[MiddleMCP])
}

// Normalize returns a copy of the landmarks translated so the wrist sits at
// the origin and scaled so the wrist to middle MCP distance is 1.0. The
// result is independent of hand position and camera distance.
func (h *HandLandmarks) Normalize() *HandLandmarks {
	if h == nil {
		return nil
	}

	normalized := &HandLandmarks{
		Handedness: h.Handedness,
		Score:      h.Score,
	}

	wrist := h.Points[Wrist]
	for i := 0; i < NumLandmarks; i++ {
		normalized.Points[i] = h.Points[i].Sub(wrist)
	}

	scale := Dist(Point3D{}, normalized.Points[MiddleMCP])
	if scale < 1e-10 {
		return normalized
	}

	for i := 0; i < NumLandmarks; i++ {
		normalized.Points[i].X /= scale
		normalized.Points[i].Y /= scale
		normalized.Points[i].Z /= scale
	}

	return normalized
}
