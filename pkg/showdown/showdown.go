package showdown

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"pokerhand-evaluator/pkg/deck"
	"pokerhand-evaluator/pkg/handevaluator"
)

// ErrNoSeats is returned when a showdown has nobody in it
var ErrNoSeats = errors.New("a showdown requires at least one seat")

// DuplicateCardError is returned when the same card is dealt twice
type DuplicateCardError struct {
	Card *deck.Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("card %s was dealt more than once", e.Card)
}

// Seat is a player taking part in the showdown
type Seat struct {
	Name string
	Hole deck.Hand
}

// SeatResult is the evaluated hand of one seat
type SeatResult struct {
	Seat
	Result handevaluator.HandResult
}

// Result is the outcome of a showdown
type Result struct {
	HandID  uuid.UUID
	Board   deck.Hand
	Seats   []SeatResult
	Winners []int
}

// WinnerNames returns the names of the winning seats
func (r *Result) WinnerNames() []string {
	names := make([]string, len(r.Winners))
	for i, idx := range r.Winners {
		names[i] = r.Seats[idx].Name
	}

	return names
}

// IsSplit returns true if the pot is split between more than one seat
func (r *Result) IsSplit() bool {
	return len(r.Winners) > 1
}

// Evaluate finds the best hand of every seat using the shared board and picks the winners
func Evaluate(board deck.Hand, seats []Seat) (*Result, error) {
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}

	seen := make(deck.Hand, 0, len(board)+2*len(seats))
	for _, card := range board {
		if seen.HasCard(card) {
			return nil, &DuplicateCardError{Card: card}
		}
		seen.AddCard(card)
	}

	res := &Result{
		HandID: uuid.New(),
		Board:  board,
		Seats:  make([]SeatResult, len(seats)),
	}

	results := make([]handevaluator.HandResult, len(seats))
	for i, seat := range seats {
		cards := make(deck.Hand, 0, len(board)+len(seat.Hole))
		cards = append(cards, board...)
		for _, card := range seat.Hole {
			if seen.HasCard(card) {
				return nil, &DuplicateCardError{Card: card}
			}
			seen.AddCard(card)
			cards.AddCard(card)
		}

		result, err := handevaluator.EvaluateSeven(cards)
		if err != nil {
			return nil, fmt.Errorf("could not evaluate %s: %w", seat.Name, err)
		}

		results[i] = result
		res.Seats[i] = SeatResult{Seat: seat, Result: result}
	}

	res.Winners = handevaluator.Winners(results...)
	return res, nil
}

// Deal deals a hold'em hand from the deck: two hole cards per seat then five board cards
func Deal(d *deck.Deck, names []string) (deck.Hand, []Seat, error) {
	if len(names) == 0 {
		return nil, nil, ErrNoSeats
	}

	if !d.CanDraw(2*len(names) + 5) {
		return nil, nil, deck.ErrEndOfDeck
	}

	seats := make([]Seat, len(names))
	for i, name := range names {
		seats[i].Name = name
	}

	for round := 0; round < 2; round++ {
		for i := range seats {
			card, err := d.Draw()
			if err != nil {
				return nil, nil, err
			}
			seats[i].Hole.AddCard(card)
		}
	}

	board := make(deck.Hand, 0, 5)
	for i := 0; i < 5; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, nil, err
		}
		board.AddCard(card)
	}

	return board, seats, nil
}
