package game

import (
	"sync"
	"time"

	"github.com/coder/quartz"
)

// CountdownSeconds is the fixed get-ready countdown before a round locks
// in the player's gesture.
const CountdownSeconds = 3

// RoundState is a snapshot of the in-progress round for the control
// surface.
type RoundState struct {
	Armed          bool   `json:"armed"`
	Countdown      int    `json:"countdown"`
	GameStarted    bool   `json:"game_started"`
	UserChoice     Move   `json:"user_choice"`
	ComputerChoice Move   `json:"computer_choice"`
	Winner         string `json:"winner,omitempty"`
}

// Controller runs the countdown/lock-in lifecycle for one round. The
// pipeline calls Tick once per frame with the current stable gesture; the
// countdown is coarse, compared against a stored timestamp rather than
// driven by timers, so a stalled camera stalls the game instead of
// expiring it. The clock is injected so tests control time.
type Controller struct {
	mu      sync.Mutex
	clock   quartz.Clock
	session *Session

	armed       bool
	started     bool
	countdown   int
	lastTick    time.Time
	userChoice  Move
	computer    Move
	banner      string
	lastRecord  *RoundRecord
}

// NewController creates a Controller bound to a session.
func NewController(session *Session, clock quartz.Clock) *Controller {
	return &Controller{
		clock:     clock,
		session:   session,
		countdown: CountdownSeconds,
	}
}

// Arm starts the countdown for the next round, discarding any displayed
// result from the previous one.
func (c *Controller) Arm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armed = true
	c.started = false
	c.countdown = CountdownSeconds
	c.lastTick = c.clock.Now()
	c.userChoice = MoveNone
	c.computer = MoveNone
	c.banner = ""
	c.lastRecord = nil
}

// Tick advances the countdown using wall-clock elapsed time and, on
// expiry, locks in the given stable gesture as the player's move, draws
// the opponent's move, and scores the round. Ticks outside an armed
// countdown are no-ops.
func (c *Controller) Tick(stable Move) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.armed || c.started {
		return
	}

	now := c.clock.Now()
	if now.Sub(c.lastTick) >= time.Second {
		c.countdown--
		c.lastTick = now
	}
	if c.countdown >= 0 {
		return
	}

	c.started = true
	c.userChoice = stable
	c.computer = c.session.ComputerChoice()
	c.banner = RoundBanner(c.userChoice, c.computer)
	if record, ok := c.session.PlayRound(c.userChoice, c.computer); ok {
		c.lastRecord = &record
	}
}

// Armed reports whether a countdown or result display is active.
func (c *Controller) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

// LastRecord returns the record of the most recently locked-in round, or
// nil when the lock-in happened after session completion.
func (c *Controller) LastRecord() *RoundRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRecord
}

// State returns a snapshot of the round lifecycle.
func (c *Controller) State() RoundState {
	c.mu.Lock()
	defer c.mu.Unlock()

	countdown := c.countdown
	if countdown < 0 {
		countdown = 0
	}
	return RoundState{
		Armed:          c.armed,
		Countdown:      countdown,
		GameStarted:    c.started,
		UserChoice:     c.userChoice,
		ComputerChoice: c.computer,
		Winner:         c.banner,
	}
}

// Reset disarms the controller and discards in-progress round state.
// There is no mid-round cancellation: a round either locks in naturally
// or is discarded here.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armed = false
	c.started = false
	c.countdown = CountdownSeconds
	c.userChoice = MoveNone
	c.computer = MoveNone
	c.banner = ""
	c.lastRecord = nil
}
