package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(Easy, NewSeededStrategist(1))
}

func TestSession_PlayRound(t *testing.T) {
	t.Run("player win advances the score", func(t *testing.T) {
		s := newTestSession()

		record, ok := s.PlayRound(Rock, Scissors)

		require.True(t, ok)
		assert.Equal(t, 1, record.Round)
		assert.Equal(t, OutcomePlayer, record.Outcome)
		assert.Equal(t, "1-0", record.Score)

		status := s.Status()
		assert.Equal(t, 1, status.PlayerScore)
		assert.Equal(t, 0, status.ComputerScore)
		assert.Equal(t, 1, status.Round)
		assert.False(t, status.Completed)
	})

	t.Run("draw leaves both scores unchanged", func(t *testing.T) {
		s := newTestSession()

		record, ok := s.PlayRound(Paper, Paper)

		require.True(t, ok)
		assert.Equal(t, OutcomeDraw, record.Outcome)
		assert.Equal(t, "0-0", record.Score)
	})

	t.Run("missing player move counts as a loss", func(t *testing.T) {
		s := newTestSession()

		record, ok := s.PlayRound(MoveNone, Rock)

		require.True(t, ok)
		assert.Equal(t, OutcomeComputer, record.Outcome)
		assert.Equal(t, "0-1", record.Score)
	})

	t.Run("session completes after three rounds", func(t *testing.T) {
		s := newTestSession()

		s.PlayRound(Rock, Scissors)
		s.PlayRound(Paper, Rock)
		s.PlayRound(Rock, Paper)

		status := s.Status()
		assert.True(t, status.Completed)
		assert.Equal(t, "Player Wins the Game!", status.Winner)
		assert.Len(t, status.RoundHistory, 3)
	})

	t.Run("rounds are rejected after completion", func(t *testing.T) {
		s := newTestSession()

		for i := 0; i < MaxRounds; i++ {
			_, ok := s.PlayRound(Rock, Rock)
			require.True(t, ok)
		}

		_, ok := s.PlayRound(Rock, Scissors)
		assert.False(t, ok)

		status := s.Status()
		assert.Equal(t, MaxRounds, status.Round)
		assert.Equal(t, 0, status.PlayerScore, "extra round must not score")
	})
}

func TestSession_Winner(t *testing.T) {
	t.Run("computer win", func(t *testing.T) {
		s := newTestSession()
		s.PlayRound(Rock, Paper)
		s.PlayRound(Rock, Paper)
		s.PlayRound(Rock, Scissors)

		assert.Equal(t, "Computer Wins the Game!", s.Status().Winner)
	})

	t.Run("tied game", func(t *testing.T) {
		s := newTestSession()
		s.PlayRound(Rock, Paper)
		s.PlayRound(Paper, Rock)
		s.PlayRound(Rock, Rock)

		assert.Equal(t, "Game is a Tie!", s.Status().Winner)
	})

	t.Run("winner hidden until completion", func(t *testing.T) {
		s := newTestSession()
		s.PlayRound(Rock, Scissors)

		assert.Empty(t, s.Status().Winner)
	})
}

func TestSession_SetDifficulty(t *testing.T) {
	s := newTestSession()

	assert.True(t, s.SetDifficulty("Hard"))
	assert.Equal(t, Hard, s.Level())

	assert.False(t, s.SetDifficulty("Impossible"))
	assert.Equal(t, Hard, s.Level(), "rejected level must not change the current one")
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession()
	s.SetDifficulty("Medium")
	for i := 0; i < MaxRounds; i++ {
		s.PlayRound(Rock, Scissors)
	}
	require.True(t, s.Completed())

	s.Reset()

	status := s.Status()
	assert.False(t, status.Completed)
	assert.Equal(t, 0, status.Round)
	assert.Equal(t, 0, status.PlayerScore)
	assert.Equal(t, 0, status.ComputerScore)
	assert.Empty(t, status.RoundHistory)
	assert.Equal(t, Medium, s.Level(), "reset keeps the selected difficulty")

	_, ok := s.PlayRound(Scissors, Paper)
	assert.True(t, ok, "reset session accepts new rounds")
}

func TestSession_StrategistSeesHistory(t *testing.T) {
	// A Hard opponent facing a player who always throws Rock should
	// converge on Paper: PlayRound records the choice before the next
	// ComputerChoice call.
	s := NewSession(Hard, NewSeededStrategist(3))

	s.PlayRound(Rock, s.ComputerChoice())
	s.PlayRound(Rock, s.ComputerChoice())

	paper := 0
	for i := 0; i < 1000; i++ {
		if s.ComputerChoice() == Paper {
			paper++
		}
	}
	assert.Greater(t, paper, 800)
}

func TestStatus_Score(t *testing.T) {
	st := Status{PlayerScore: 2, ComputerScore: 1}
	assert.Equal(t, "2-1", st.Score())
}
