// Package app wires the capture, detection, classification, and game
// components into the frame-processing pipeline.
package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayusman/janken/internal/capture"
	"github.com/ayusman/janken/internal/detector"
	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/gesture"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while no round is armed and the scene is
	// still.
	IdleFPS = 5
	// ActiveFPS is the frame rate during an armed round or recent motion.
	ActiveFPS = 15
	// idleTimeout is how long after the last motion the pipeline drops
	// back to the idle rate.
	idleTimeout = 2 * time.Second
)

// Config holds configuration options for the application.
type Config struct {
	CameraID     int
	MotionThresh float64
	Logger       zerolog.Logger
}

// App owns the detection pipeline and the game state it feeds.
type App struct {
	config     Config
	log        zerolog.Logger
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	classifier *gesture.Classifier
	tracker    *gesture.Tracker
	session    *game.Session
	controller *game.Controller

	mu      sync.RWMutex
	enabled bool
	stopCh  chan struct{}
	preview gesture.Result // latest raw per-frame classification
}

// New creates an App around an existing session and round controller.
func New(config Config, session *game.Session, controller *game.Controller) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	a := &App{
		config:     config,
		log:        config.Logger,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		classifier: gesture.NewClassifier(gesture.DefaultConfig()),
		tracker:    gesture.NewTracker(gesture.DefaultWindow),
		session:    session,
		controller: controller,
		enabled:    true,
	}

	// Prefer MediaPipe, fall back to the mock detector so the server and
	// tray still come up on machines without the Python helper.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		a.log.Info().Msg("using MediaPipe hand detection")
	} else {
		a.log.Warn().Err(err).Msg("MediaPipe not available, using mock detector")
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture detection.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector swaps the hand detector implementation (used by tests).
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera swaps the camera implementation (used by tests).
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Start opens the camera and begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	a.log.Info().Msg("detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		a.log.Error().Err(err).Msg("closing camera")
	}
	a.motion.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			a.log.Error().Err(err).Msg("closing detector")
		}
	}

	a.log.Info().Msg("detection pipeline stopped")
}

// Camera returns the camera instance for the stream handler.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Session returns the game session.
func (a *App) Session() *game.Session {
	return a.session
}

// Controller returns the round controller.
func (a *App) Controller() *game.Controller {
	return a.controller
}

// Tracker returns the stability tracker.
func (a *App) Tracker() *gesture.Tracker {
	return a.tracker
}

// Preview returns the latest raw per-frame classification, shown in the
// UI before the countdown locks a gesture in.
func (a *App) Preview() gesture.Result {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.preview
}

// StableGesture returns the debounced gesture as a game move.
func (a *App) StableGesture() game.Move {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return game.Move(a.tracker.Stable())
}

func (a *App) setPreview(r gesture.Result) {
	a.mu.Lock()
	a.preview = r
	a.mu.Unlock()
}

func (a *App) currentDetector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
