package app

import (
	"time"

	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/gesture"
)

// runPipeline is the main loop: one iteration per frame, synchronous end
// to end so no two frames are in flight for the same tracker.
//
// Per tick:
//  1. Read a mirrored frame from the camera.
//  2. Motion-gate the frame rate: idle at IdleFPS, ramp to ActiveFPS on
//     motion or while a round is armed.
//  3. Detect hand landmarks (first hand only).
//  4. Classify and feed the stability tracker; a frame with no hand or a
//     low-confidence result leaves the tracker's stable output untouched.
//  5. Advance the round countdown with the current stable gesture.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	setRate := func(fps int) {
		a.camera.SetFPS(fps)
		frameInterval = time.Second / time.Duration(fps)
		ticker.Reset(frameInterval)
	}

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				a.log.Debug().Err(err).Msg("reading frame")
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			armed := a.controller.Armed()

			if motionDetected || armed {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					setRate(ActiveFPS)
					a.log.Debug().Msg("switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > idleTimeout {
				activeMode = false
				setRate(IdleFPS)
				a.log.Debug().Msg("switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				continue
			}

			hands, err := a.currentDetector().Detect(frame)
			frame.Close()
			if err != nil {
				a.log.Debug().Err(err).Msg("detecting hands")
				continue
			}

			result := gesture.Result{}
			if len(hands) > 0 {
				result = a.classifier.Classify(&hands[0])
			}

			a.mu.Lock()
			a.preview = result
			stable := a.tracker.Observe(result)
			a.mu.Unlock()

			a.controller.Tick(game.Move(stable))
		}
	}
}
