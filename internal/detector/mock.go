package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// Tests script a sequence of per-frame results; once the sequence is
// exhausted the last entry repeats.
type MockDetector struct {
	mu     sync.Mutex
	frames [][]HandLandmarks
	index  int
	err    error
}

// NewMockDetector creates a new MockDetector instance that reports no hands.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands makes every subsequent Detect call return the given hands.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = [][]HandLandmarks{hands}
	m.index = 0
}

// SetSequence scripts one Detect result per frame.
func (m *MockDetector) SetSequence(frames [][]HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = frames
	m.index = 0
}

// SetError makes Detect return the given error.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the next scripted result.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, nil
	}
	if m.index >= len(m.frames) {
		return m.frames[len(m.frames)-1], nil
	}
	hands := m.frames[m.index]
	m.index++
	return hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
