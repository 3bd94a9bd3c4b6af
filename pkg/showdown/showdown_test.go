package showdown

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pokerhand-evaluator/pkg/deck"
	"pokerhand-evaluator/pkg/handevaluator"
)

func TestEvaluate(t *testing.T) {
	a := assert.New(t)

	board := deck.CardsFromString("2c,7d,9h,13s,13c")
	res, err := Evaluate(board, []Seat{
		{Name: "alice", Hole: deck.CardsFromString("14c,14d")},
		{Name: "bob", Hole: deck.CardsFromString("9c,9d")},
		{Name: "carol", Hole: deck.CardsFromString("3h,4h")},
	})
	require.NoError(t, err)

	a.NotEqual(uuid.Nil, res.HandID)
	a.Len(res.Seats, 3)
	a.Equal(handevaluator.TwoPair, res.Seats[0].Result.Category())
	a.Equal(handevaluator.FullHouse, res.Seats[1].Result.Category())
	a.Equal(handevaluator.Pair, res.Seats[2].Result.Category())
	a.Equal([]int{1}, res.Winners)
	a.Equal([]string{"bob"}, res.WinnerNames())
	a.False(res.IsSplit())
}

func TestEvaluate_splitPot(t *testing.T) {
	board := deck.CardsFromString("10c,11d,12h,13s,14c")
	res, err := Evaluate(board, []Seat{
		{Name: "alice", Hole: deck.CardsFromString("2c,3d")},
		{Name: "bob", Hole: deck.CardsFromString("4c,5d")},
	})
	require.NoError(t, err)

	assert.True(t, res.IsSplit())
	assert.Equal(t, []string{"alice", "bob"}, res.WinnerNames())
}

func TestEvaluate_errors(t *testing.T) {
	a := assert.New(t)

	_, err := Evaluate(deck.CardsFromString("2c,3c,4c"), nil)
	a.Equal(ErrNoSeats, err)

	_, err = Evaluate(deck.CardsFromString("2c,3c,4c,5d,6d"), []Seat{
		{Name: "alice", Hole: deck.CardsFromString("2c,9d")},
	})
	var dup *DuplicateCardError
	if a.True(errors.As(err, &dup)) {
		a.Equal("2c", deck.CardToString(dup.Card))
	}

	_, err = Evaluate(deck.CardsFromString("2c,3c,4c,5d,2c"), []Seat{
		{Name: "alice", Hole: deck.CardsFromString("8c,9d")},
	})
	a.True(errors.As(err, &dup))

	_, err = Evaluate(deck.CardsFromString("2c,3c"), []Seat{
		{Name: "alice", Hole: deck.CardsFromString("8c,9d")},
	})
	a.True(errors.Is(err, handevaluator.ErrTooFewCards))
}

func TestDeal(t *testing.T) {
	a := assert.New(t)

	d := deck.New()
	d.Shuffle(5)

	board, seats, err := Deal(d, []string{"alice", "bob", "carol"})
	require.NoError(t, err)
	a.Len(board, 5)
	a.Len(seats, 3)
	for _, seat := range seats {
		a.Len(seat.Hole, 2)
	}
	a.Equal(52-11, d.CardsLeft())

	res, err := Evaluate(board, seats)
	require.NoError(t, err)
	a.NotEmpty(res.Winners)

	_, _, err = Deal(d, nil)
	a.Equal(ErrNoSeats, err)

	names := make([]string, 24)
	_, _, err = Deal(d, names)
	a.Equal(deck.ErrEndOfDeck, err)
}
