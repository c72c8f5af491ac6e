package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MaxRounds is the fixed session length.
const MaxRounds = 3

// Overall game result strings, surfaced verbatim in the status payload.
const (
	WinnerPlayer   = "Player Wins the Game!"
	WinnerComputer = "Computer Wins the Game!"
	WinnerTie      = "Game is a Tie!"
)

// RoundRecord is the immutable record of one completed round.
type RoundRecord struct {
	Round          int     `json:"round"`
	UserChoice     Move    `json:"user_choice"`
	ComputerChoice Move    `json:"computer_choice"`
	Outcome        Outcome `json:"result"`
	Score          string  `json:"score"` // running "player-computer" score
}

// Status is a point-in-time snapshot of the session, safe to hand to the
// HTTP layer.
type Status struct {
	Level         Difficulty    `json:"level"`
	Round         int           `json:"round"`
	MaxRounds     int           `json:"max_rounds"`
	PlayerScore   int           `json:"player_score"`
	ComputerScore int           `json:"computer_score"`
	Completed     bool          `json:"game_completed"`
	Winner        string        `json:"game_winner,omitempty"`
	RoundHistory  []RoundRecord `json:"round_history"`
}

// Score formats the running score as "player-computer".
func (st Status) Score() string {
	return fmt.Sprintf("%d-%d", st.PlayerScore, st.ComputerScore)
}

// Session is one best-of-three match against the computer opponent. All
// state transitions go through its methods; every method takes the session
// lock so a frame-processing goroutine and a control-plane goroutine can
// share one instance.
type Session struct {
	mu sync.Mutex

	id            string
	level         Difficulty
	strategist    *Strategist
	history       *History
	rounds        []RoundRecord
	playerScore   int
	computerScore int
	completed     bool
}

// NewSession creates a session at the given difficulty using the given
// strategist for opponent moves.
func NewSession(level Difficulty, strategist *Strategist) *Session {
	return &Session{
		id:         uuid.NewString(),
		level:      level,
		strategist: strategist,
		history:    NewHistory(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetDifficulty switches the opponent strategy. Unknown levels are
// rejected and leave the current level unchanged.
func (s *Session) SetDifficulty(level string) bool {
	parsed, ok := ParseDifficulty(level)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = parsed
	return true
}

// Level returns the current difficulty.
func (s *Session) Level() Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// ComputerChoice draws the opponent's move for the upcoming round. The
// strategist always sees the history as of the last completed round.
func (s *Session) ComputerChoice() Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategist.Choose(s.level, s.history)
}

// PlayRound arbitrates one round and appends it to the session. Returns
// false without mutating anything once the session is completed. The
// player's choice is recorded into the history before the round counter
// advances, so the next ComputerChoice call sees it.
func (s *Session) PlayRound(user, computer Move) (RoundRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return RoundRecord{}, false
	}

	s.history.Record(user)

	outcome := Judge(user, computer)
	switch outcome {
	case OutcomePlayer:
		s.playerScore++
	case OutcomeComputer:
		s.computerScore++
	}

	record := RoundRecord{
		Round:          len(s.rounds) + 1,
		UserChoice:     user,
		ComputerChoice: computer,
		Outcome:        outcome,
		Score:          fmt.Sprintf("%d-%d", s.playerScore, s.computerScore),
	}
	s.rounds = append(s.rounds, record)

	if len(s.rounds) >= MaxRounds {
		s.completed = true
	}
	return record, true
}

// Completed reports whether all rounds have been played.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Status returns a snapshot of the session state. The winner string is
// only present once the session is completed.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Level:         s.level,
		Round:         len(s.rounds),
		MaxRounds:     MaxRounds,
		PlayerScore:   s.playerScore,
		ComputerScore: s.computerScore,
		Completed:     s.completed,
		RoundHistory:  append([]RoundRecord(nil), s.rounds...),
	}
	if s.completed {
		st.Winner = s.winnerLocked()
	}
	return st
}

func (s *Session) winnerLocked() string {
	switch {
	case s.playerScore > s.computerScore:
		return WinnerPlayer
	case s.computerScore > s.playerScore:
		return WinnerComputer
	default:
		return WinnerTie
	}
}

// Reset clears scores, round history, and the player history, returning
// the session to its initial state at the current difficulty.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rounds = nil
	s.playerScore = 0
	s.computerScore = 0
	s.completed = false
	s.history.Reset()
}
