// Package tray provides a system tray interface for the Janken game.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu: toggle detection, show the last stable
// gesture and the score, open the game UI, quit.
type Tray struct {
	onToggle func(enabled bool)
	onOpen   func()
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	menuToggle  *systray.MenuItem
	menuGesture *systray.MenuItem
	menuScore   *systray.MenuItem
}

// New creates a Tray with detection enabled by default.
func New() *Tray {
	return &Tray{enabled: true}
}

// OnToggle sets the callback invoked when detection is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnOpen sets the callback invoked when "Open Game" is clicked.
func (t *Tray) OnOpen(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpen = fn
}

// OnQuit sets the callback invoked when the quit item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// SetGesture updates the last-gesture menu entry.
func (t *Tray) SetGesture(gesture string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.menuGesture == nil {
		return
	}
	if gesture == "" {
		gesture = "none"
	}
	t.menuGesture.SetTitle("Gesture: " + gesture)
}

// SetScore updates the score menu entry.
func (t *Tray) SetScore(score string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.menuScore == nil {
		return
	}
	t.menuScore.SetTitle("Score: " + score)
}

// Run starts the system tray. Blocks until systray.Quit is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle("Janken")
	systray.SetTooltip("Janken - Rock Paper Scissors")

	t.mu.Lock()
	t.menuToggle = systray.AddMenuItem("● Detection On", "Toggle hand detection")
	systray.AddSeparator()

	t.menuGesture = systray.AddMenuItem("Gesture: none", "Last stable gesture")
	t.menuGesture.Disable()
	t.menuScore = systray.AddMenuItem("Score: 0-0", "Current session score")
	t.menuScore.Disable()
	systray.AddSeparator()

	menuOpen := systray.AddMenuItem("Open Game...", "Open the game in a browser")
	systray.AddSeparator()
	menuQuit := systray.AddMenuItem("Quit", "Quit Janken")
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.toggle()
			case <-menuOpen.ClickedCh:
				t.mu.RLock()
				fn := t.onOpen
				t.mu.RUnlock()
				if fn != nil {
					fn()
				}
			case <-menuQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *Tray) toggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled
	fn := t.onToggle
	if enabled {
		t.menuToggle.SetTitle("● Detection On")
	} else {
		t.menuToggle.SetTitle("○ Detection Off")
	}
	t.mu.Unlock()

	if fn != nil {
		fn(enabled)
	}
}

func (t *Tray) onExit() {
	t.mu.RLock()
	fn := t.onQuit
	t.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
