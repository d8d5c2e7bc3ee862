package game

import (
	"context"
	"math/rand"
)

const historyDepth = 10

// HistorySource yields the player's most recent choices for a game, newest
// first, capped at limit.
type HistorySource interface {
	RecentChoices(ctx context.Context, gameID, playerName string, limit int) ([]Choice, error)
}

// Opponent picks counter-moves by looking for frequency bias in the player's
// recent history. A player mixing uniformly sees a uniformly random opponent.
type Opponent struct {
	history HistorySource
	rng     *rand.Rand
}

func NewOpponent(history HistorySource, rng *rand.Rand) *Opponent {
	return &Opponent{history: history, rng: rng}
}

// ChooseMove returns the opponent's move for the next round. If one choice
// occurs more often than an even three-way split would predict, the move that
// beats it is played deterministically; otherwise the move is uniform random.
func (o *Opponent) ChooseMove(ctx context.Context, gameID, playerName string) (Choice, error) {
	history, err := o.history.RecentChoices(ctx, gameID, playerName, historyDepth)
	if err != nil {
		return "", err
	}
	if len(history) == 0 {
		return o.randomChoice(), nil
	}

	counts := make(map[Choice]int, len(Choices))
	for _, c := range history {
		counts[c]++
	}
	maxCount := 0
	var mostFrequent Choice
	for _, c := range Choices {
		if counts[c] > maxCount {
			maxCount = counts[c]
			mostFrequent = c
		}
	}

	if float64(maxCount) > float64(len(history))/3 {
		return CounterTo(mostFrequent), nil
	}
	return o.randomChoice(), nil
}

func (o *Opponent) randomChoice() Choice {
	return Choices[o.rng.Intn(len(Choices))]
}
