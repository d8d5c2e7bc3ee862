package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

type fakeHistory struct {
	choices []Choice
	err     error
}

func (f *fakeHistory) RecentChoices(_ context.Context, _, _ string, limit int) ([]Choice, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.choices) > limit {
		return f.choices[:limit], nil
	}
	return f.choices, nil
}

func newTestOpponent(h HistorySource) *Opponent {
	return NewOpponent(h, rand.New(rand.NewSource(1)))
}

func TestChooseMoveCountersBias(t *testing.T) {
	// rock occurs 3 times out of 4, above the even-split threshold of 4/3,
	// so the opponent must play paper every time.
	h := &fakeHistory{choices: []Choice{Paper, Rock, Rock, Rock}}
	o := newTestOpponent(h)
	for i := 0; i < 20; i++ {
		got, err := o.ChooseMove(context.Background(), "g1", "alice")
		if err != nil {
			t.Fatalf("ChooseMove: %v", err)
		}
		if got != Paper {
			t.Fatalf("ChooseMove = %s, want paper", got)
		}
	}
}

func TestChooseMoveEmptyHistoryIsUniform(t *testing.T) {
	o := newTestOpponent(&fakeHistory{})
	seen := map[Choice]int{}
	for i := 0; i < 3000; i++ {
		got, err := o.ChooseMove(context.Background(), "g1", "alice")
		if err != nil {
			t.Fatalf("ChooseMove: %v", err)
		}
		seen[got]++
	}
	for _, c := range Choices {
		if seen[c] < 800 {
			t.Fatalf("choice %s drawn %d/3000 times, want roughly uniform", c, seen[c])
		}
	}
}

func TestChooseMoveBalancedHistoryStaysLegal(t *testing.T) {
	h := &fakeHistory{choices: []Choice{Rock, Paper, Scissors, Rock, Paper, Scissors}}
	o := newTestOpponent(h)
	for i := 0; i < 50; i++ {
		got, err := o.ChooseMove(context.Background(), "g1", "alice")
		if err != nil {
			t.Fatalf("ChooseMove: %v", err)
		}
		if _, err := ParseChoice(string(got)); err != nil {
			t.Fatalf("ChooseMove returned illegal choice %q", got)
		}
	}
}

func TestChooseMovePropagatesHistoryError(t *testing.T) {
	wantErr := errors.New("db down")
	o := newTestOpponent(&fakeHistory{err: wantErr})
	if _, err := o.ChooseMove(context.Background(), "g1", "alice"); !errors.Is(err, wantErr) {
		t.Fatalf("ChooseMove error = %v, want %v", err, wantErr)
	}
}
