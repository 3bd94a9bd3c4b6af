package handevaluator

import (
	"errors"
	"sort"

	"pokerhand-evaluator/pkg/deck"
)

// ErrEmptyHand is returned when a hand without any cards is evaluated
var ErrEmptyHand = errors.New("cannot evaluate a hand without cards")

// ErrTooFewCards is returned when a full result is requested for fewer than five cards
var ErrTooFewCards = errors.New("at least five cards are required to build a hand result")

// handSize is the number of cards that make up a poker hand
const handSize = 5

// Evaluator classifies a single hand of cards
// Every scan is performed once by New(). An Evaluator is never modified after
// it is built, so it can be read from multiple goroutines.
type Evaluator struct {
	// ascending by rank, Aces are always high
	cards deck.Hand

	// rank counts, highest rank first within each group
	quads []int
	trips []int
	pairs []int

	suitCounts map[deck.Suit]int

	// the five best ranks of the flush suit, highest first
	flush []int

	// top rank of the best five-card run, zero if there is none
	straight      int
	straightFlush int

	// straight check that tolerates hands with fewer than five cards
	shortStraight bool
}

// New will return a new Evaluator for the cards
// The cards are copied, the caller's slice is never modified.
func New(cards []*deck.Card) (*Evaluator, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyHand
	}

	sorted := make(deck.Hand, len(cards))
	for i, card := range cards {
		sorted[i] = &deck.Card{Rank: card.AceHighRank(), Suit: card.Suit}
	}
	sort.Stable(sorted)

	e := &Evaluator{cards: sorted}
	e.analyzeHand()
	return e, nil
}

// EvaluateFive returns the category of the hand without any tie-break data
func EvaluateFive(cards []*deck.Card) (Category, error) {
	e, err := New(cards)
	if err != nil {
		return HighCard, err
	}

	return e.FiveCardCategory(), nil
}

// EvaluateSeven returns the best hand that can be made from 5-7 cards
func EvaluateSeven(cards []*deck.Card) (HandResult, error) {
	e, err := New(cards)
	if err != nil {
		return HandResult{}, err
	}

	return e.Result()
}

// Cards returns a copy of the sorted cards being evaluated
func (e *Evaluator) Cards() deck.Hand {
	return e.cards.Clone()
}

// analyzeHand runs every scan over the sorted cards
// This must only be called once from the constructor
func (e *Evaluator) analyzeHand() {
	counts := make(map[int]int)
	suitRanks := make(map[deck.Suit][]int)
	e.suitCounts = make(map[deck.Suit]int)

	for _, card := range e.cards {
		counts[card.Rank]++
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
		e.suitCounts[card.Suit]++
	}

	for rank := deck.Ace; rank >= 2; rank-- {
		switch n := counts[rank]; {
		case n >= 4:
			e.quads = append(e.quads, rank)
		case n == 3:
			e.trips = append(e.trips, rank)
		case n == 2:
			e.pairs = append(e.pairs, rank)
		}
	}

	ranks := make([]int, len(e.cards))
	for i, card := range e.cards {
		ranks[i] = card.Rank
	}

	e.straight = bestRun(ranks, handSize)

	minRun := handSize
	if len(ranks) < handSize {
		minRun = len(ranks)
	}
	e.shortStraight = bestRun(ranks, minRun) > 0

	for _, suit := range deck.Suits {
		sr := suitRanks[suit]
		if len(sr) < handSize {
			continue
		}

		if sf := bestRun(sr, handSize); sf > e.straightFlush {
			e.straightFlush = sf
		}

		flush := topRanks(sr, handSize)
		if e.flush == nil || compareRanks(flush, e.flush) > 0 {
			e.flush = flush
		}
	}
}

// FiveCardCategory returns the category of the hand
// Hands with fewer than five cards are a straight when every card is part
// of one run, but can never be a flush.
// The straight and flush checks look at all of the cards independently, and
// two sets of trips are not a full house. With more than five cards the answer
// can differ from Result(), use Category() for those hands.
func (e *Evaluator) FiveCardCategory() Category {
	isFlush := false
	for _, n := range e.suitCounts {
		if n >= handSize {
			isFlush = true
			break
		}
	}

	switch {
	case len(e.quads) > 0:
		return FourOfAKind
	case len(e.trips) > 0 && len(e.pairs) > 0:
		return FullHouse
	case isFlush && e.shortStraight:
		return StraightFlush
	case isFlush:
		return Flush
	case e.shortStraight:
		return Straight
	case len(e.trips) > 0:
		return ThreeOfAKind
	case len(e.pairs) >= 2:
		return TwoPair
	case len(e.pairs) == 1:
		return Pair
	default:
		return HighCard
	}
}

// Category returns the category of the best hand
// It is the category of Result() when there are enough cards, otherwise FiveCardCategory().
func (e *Evaluator) Category() Category {
	if result, err := e.Result(); err == nil {
		return result.Category()
	}

	return e.FiveCardCategory()
}

// Result returns the best hand along with everything needed to break a tie
func (e *Evaluator) Result() (HandResult, error) {
	if len(e.cards) < handSize {
		return HandResult{}, ErrTooFewCards
	}

	if quads, ok := e.GetFourOfAKind(); ok {
		return newFourOfAKind(quads, firstRank(e.kickers(1, quads))), nil
	}

	if fh, ok := e.GetFullHouse(); ok {
		return newFullHouse(fh[0], fh[1]), nil
	}

	if sf, ok := e.GetStraightFlush(); ok {
		return newStraightFlush(sf), nil
	}

	if flush, ok := e.GetFlush(); ok {
		return newFlush(flush), nil
	}

	if straight, ok := e.GetStraight(); ok {
		return newStraight(straight), nil
	}

	if trips, ok := e.GetThreeOfAKind(); ok {
		return newThreeOfAKind(trips, e.kickers(2, trips)), nil
	}

	if tp, ok := e.GetTwoPair(); ok {
		return newTwoPair(tp[0], tp[1], firstRank(e.kickers(1, tp[0], tp[1]))), nil
	}

	if pair, ok := e.GetPair(); ok {
		return newPair(pair, e.kickers(3, pair)), nil
	}

	return newHighCard(e.kickers(handSize)), nil
}

// GetStraightFlush will return the top rank of the best straight flush, if possible
func (e *Evaluator) GetStraightFlush() (int, bool) {
	return e.straightFlush, e.straightFlush > 0
}

// GetFourOfAKind will return the best four of a kind, if possible
func (e *Evaluator) GetFourOfAKind() (int, bool) {
	if len(e.quads) > 0 {
		return e.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best trips and the best pair, if possible
// The pair may come from a second set of trips.
func (e *Evaluator) GetFullHouse() ([]int, bool) {
	if len(e.trips) == 0 {
		return nil, false
	}

	pair := 0
	if len(e.pairs) > 0 {
		pair = e.pairs[0]
	}

	if len(e.trips) > 1 && e.trips[1] > pair {
		pair = e.trips[1]
	}

	if pair == 0 {
		return nil, false
	}

	return []int{e.trips[0], pair}, true
}

// GetFlush will return the five best ranks of the flush, if possible
func (e *Evaluator) GetFlush() ([]int, bool) {
	if e.flush == nil {
		return nil, false
	}

	flush := make([]int, len(e.flush))
	copy(flush, e.flush)
	return flush, true
}

// GetStraight will return the top rank of the best straight, if possible
func (e *Evaluator) GetStraight() (int, bool) {
	return e.straight, e.straight > 0
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (e *Evaluator) GetThreeOfAKind() (int, bool) {
	if len(e.trips) > 0 {
		return e.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the two best pairs, if possible
// Any other pair is left to play as a kicker.
func (e *Evaluator) GetTwoPair() ([]int, bool) {
	if len(e.pairs) >= 2 {
		return []int{e.pairs[0], e.pairs[1]}, true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (e *Evaluator) GetPair() (int, bool) {
	if len(e.pairs) > 0 {
		return e.pairs[0], true
	}

	return 0, false
}

// kickers returns up to n card ranks, highest first, skipping the excluded ranks
func (e *Evaluator) kickers(n int, exclude ...int) []int {
	kickers := make([]int, 0, n)

	for i := len(e.cards) - 1; i >= 0 && len(kickers) < n; i-- {
		rank := e.cards[i].Rank
		if containsRank(exclude, rank) {
			continue
		}

		kickers = append(kickers, rank)
	}

	return kickers
}

func firstRank(ranks []int) int {
	if len(ranks) == 0 {
		return 0
	}

	return ranks[0]
}

func containsRank(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}

	return false
}

// topRanks returns the last n ranks of an ascending slice, highest first
func topRanks(ascending []int, n int) []int {
	top := make([]int, 0, n)
	for i := len(ascending) - 1; i >= 0 && len(top) < n; i-- {
		top = append(top, ascending[i])
	}

	return top
}
