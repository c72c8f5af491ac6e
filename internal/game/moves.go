// Package game implements the rock-paper-scissors match: opponent strategy
// selection, round arbitration, and the best-of-three session lifecycle.
package game

// Move is a rock-paper-scissors choice. The zero value means no move was
// made (no gesture recognized at lock-in).
type Move string

const (
	MoveNone Move = ""
	Rock     Move = "Rock"
	Paper    Move = "Paper"
	Scissors Move = "Scissors"
)

// Moves lists the playable moves in fixed priority order; frequency ties
// are broken by this order (Rock > Paper > Scissors).
var Moves = [3]Move{Rock, Paper, Scissors}

// ParseMove maps a string to a Move. Only exact names are accepted.
func ParseMove(s string) (Move, bool) {
	switch Move(s) {
	case Rock, Paper, Scissors:
		return Move(s), true
	}
	return MoveNone, false
}

// Counter returns the move that defeats m under the fixed cycle
// Rock -> Paper -> Scissors -> Rock.
func Counter(m Move) Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	}
	return Rock
}

// Outcome is the result of a single round from the player's perspective.
type Outcome string

const (
	OutcomePlayer   Outcome = "player"
	OutcomeComputer Outcome = "computer"
	OutcomeDraw     Outcome = "draw"
)

// Judge applies the fixed win rule. A missing move loses to any defined
// move; two equal (or two missing) moves draw.
func Judge(user, computer Move) Outcome {
	if user == computer {
		return OutcomeDraw
	}
	if user == MoveNone {
		return OutcomeComputer
	}
	if computer == MoveNone {
		return OutcomePlayer
	}
	if Counter(computer) == user {
		return OutcomePlayer
	}
	return OutcomeComputer
}

// RoundBanner is the per-round result line shown to the player.
func RoundBanner(user, computer Move) string {
	switch Judge(user, computer) {
	case OutcomePlayer:
		return "You Win!"
	case OutcomeComputer:
		return "Computer Wins!"
	default:
		return "Draw"
	}
}
