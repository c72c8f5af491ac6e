package detector

// Canned landmark poses for tests and for the mock detector. Coordinates are
// normalized image coordinates (Y grows downward) for an upright right hand
// with the wrist near the bottom of the frame, palm size ~0.25.

func basePose() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.90}
	lm.Points[ThumbCMC] = Point3D{X: 0.60, Y: 0.85}
	lm.Points[ThumbMCP] = Point3D{X: 0.66, Y: 0.78}
	lm.Points[IndexMCP] = Point3D{X: 0.42, Y: 0.66}
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.65}
	lm.Points[RingMCP] = Point3D{X: 0.58, Y: 0.66}
	lm.Points[PinkyMCP] = Point3D{X: 0.66, Y: 0.68}
	return lm
}

func curlThumb(lm *HandLandmarks) {
	lm.Points[ThumbIP] = Point3D{X: 0.62, Y: 0.74}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.72}
}

func extendThumb(lm *HandLandmarks) {
	lm.Points[ThumbIP] = Point3D{X: 0.72, Y: 0.72}
	lm.Points[ThumbTip] = Point3D{X: 0.76, Y: 0.66}
}

func curlFinger(lm *HandLandmarks, pip, dip, tip int, x float64) {
	lm.Points[pip] = Point3D{X: x, Y: 0.58}
	lm.Points[dip] = Point3D{X: x, Y: 0.64}
	lm.Points[tip] = Point3D{X: x, Y: 0.68}
}

// RockPose returns a closed fist: all fingers curled toward the palm.
func RockPose() HandLandmarks {
	lm := basePose()
	curlThumb(&lm)
	curlFinger(&lm, IndexPIP, IndexDIP, IndexTip, 0.42)
	curlFinger(&lm, MiddlePIP, MiddleDIP, MiddleTip, 0.50)
	curlFinger(&lm, RingPIP, RingDIP, RingTip, 0.58)
	lm.Points[PinkyPIP] = Point3D{X: 0.66, Y: 0.60}
	lm.Points[PinkyDIP] = Point3D{X: 0.66, Y: 0.65}
	lm.Points[PinkyTip] = Point3D{X: 0.66, Y: 0.70}
	return lm
}

// PaperPose returns an open palm: all five fingers extended and fanned.
func PaperPose() HandLandmarks {
	lm := basePose()
	extendThumb(&lm)
	lm.Points[IndexPIP] = Point3D{X: 0.41, Y: 0.54}
	lm.Points[IndexDIP] = Point3D{X: 0.40, Y: 0.47}
	lm.Points[IndexTip] = Point3D{X: 0.38, Y: 0.40}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.45}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.38}
	lm.Points[RingPIP] = Point3D{X: 0.59, Y: 0.54}
	lm.Points[RingDIP] = Point3D{X: 0.60, Y: 0.47}
	lm.Points[RingTip] = Point3D{X: 0.62, Y: 0.40}
	lm.Points[PinkyPIP] = Point3D{X: 0.68, Y: 0.58}
	lm.Points[PinkyDIP] = Point3D{X: 0.69, Y: 0.51}
	lm.Points[PinkyTip] = Point3D{X: 0.70, Y: 0.44}
	return lm
}

// ScissorsPose returns index and middle fingers extended close together with
// the remaining fingers curled.
func ScissorsPose() HandLandmarks {
	lm := RockPose()
	lm.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.54}
	lm.Points[IndexDIP] = Point3D{X: 0.455, Y: 0.47}
	lm.Points[IndexTip] = Point3D{X: 0.46, Y: 0.40}
	lm.Points[MiddlePIP] = Point3D{X: 0.51, Y: 0.52}
	lm.Points[MiddleDIP] = Point3D{X: 0.515, Y: 0.46}
	lm.Points[MiddleTip] = Point3D{X: 0.52, Y: 0.39}
	return lm
}

func baseSidePose() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	lm.Points[Wrist] = Point3D{X: 0.85, Y: 0.50}
	lm.Points[ThumbCMC] = Point3D{X: 0.78, Y: 0.40}
	lm.Points[ThumbMCP] = Point3D{X: 0.70, Y: 0.34}
	lm.Points[IndexMCP] = Point3D{X: 0.60, Y: 0.42}
	lm.Points[MiddleMCP] = Point3D{X: 0.59, Y: 0.50}
	lm.Points[RingMCP] = Point3D{X: 0.60, Y: 0.58}
	lm.Points[PinkyMCP] = Point3D{X: 0.62, Y: 0.64}
	return lm
}

// SidePaperPose returns an open palm held sideways, fingers pointing left in
// the image, to exercise the horizontal-orientation extension rules.
func SidePaperPose() HandLandmarks {
	lm := baseSidePose()
	lm.Points[ThumbIP] = Point3D{X: 0.64, Y: 0.30}
	lm.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.28}
	lm.Points[IndexPIP] = Point3D{X: 0.48, Y: 0.42}
	lm.Points[IndexDIP] = Point3D{X: 0.41, Y: 0.42}
	lm.Points[IndexTip] = Point3D{X: 0.35, Y: 0.42}
	lm.Points[MiddlePIP] = Point3D{X: 0.47, Y: 0.50}
	lm.Points[MiddleDIP] = Point3D{X: 0.40, Y: 0.50}
	lm.Points[MiddleTip] = Point3D{X: 0.34, Y: 0.50}
	lm.Points[RingPIP] = Point3D{X: 0.48, Y: 0.58}
	lm.Points[RingDIP] = Point3D{X: 0.41, Y: 0.58}
	lm.Points[RingTip] = Point3D{X: 0.35, Y: 0.58}
	lm.Points[PinkyPIP] = Point3D{X: 0.50, Y: 0.64}
	lm.Points[PinkyDIP] = Point3D{X: 0.44, Y: 0.64}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.64}
	return lm
}

// SideFistPose returns a closed fist held sideways.
func SideFistPose() HandLandmarks {
	lm := baseSidePose()
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.36}
	lm.Points[ThumbTip] = Point3D{X: 0.66, Y: 0.38}
	lm.Points[IndexPIP] = Point3D{X: 0.54, Y: 0.42}
	lm.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.43}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.44}
	lm.Points[MiddlePIP] = Point3D{X: 0.53, Y: 0.50}
	lm.Points[MiddleDIP] = Point3D{X: 0.56, Y: 0.51}
	lm.Points[MiddleTip] = Point3D{X: 0.57, Y: 0.52}
	lm.Points[RingPIP] = Point3D{X: 0.54, Y: 0.58}
	lm.Points[RingDIP] = Point3D{X: 0.57, Y: 0.58}
	lm.Points[RingTip] = Point3D{X: 0.58, Y: 0.59}
	lm.Points[PinkyPIP] = Point3D{X: 0.56, Y: 0.64}
	lm.Points[PinkyDIP] = Point3D{X: 0.58, Y: 0.64}
	lm.Points[PinkyTip] = Point3D{X: 0.60, Y: 0.64}
	return lm
}
