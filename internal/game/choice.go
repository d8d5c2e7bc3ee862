package game

import "errors"

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

// Choices lists the legal moves in their fixed iteration order. The order is
// load-bearing for the opponent's tie-break.
var Choices = []Choice{Rock, Paper, Scissors}

// beats maps each choice to the choice it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

var ErrInvalidChoice = errors.New("invalid_choice")

func ParseChoice(s string) (Choice, error) {
	c := Choice(s)
	if _, ok := beats[c]; !ok {
		return "", ErrInvalidChoice
	}
	return c, nil
}

// Beats reports whether a defeats b.
func (a Choice) Beats(b Choice) bool {
	return beats[a] == b
}

// CounterTo returns the choice that defeats c.
func CounterTo(c Choice) Choice {
	for winner, loser := range beats {
		if loser == c {
			return winner
		}
	}
	return c
}

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeDraw Outcome = "draw"
)

// Resolve computes the round outcome from the player's point of view.
func Resolve(user, opponent Choice) Outcome {
	switch {
	case user == opponent:
		return OutcomeDraw
	case user.Beats(opponent):
		return OutcomeWin
	default:
		return OutcomeLose
	}
}
