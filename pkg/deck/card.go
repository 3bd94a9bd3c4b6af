package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// AnySuit matches every suit in PullCard
const AnySuit Suit = -1

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// InvalidCardError is returned when a card is constructed with a rank or suit
// outside of the allowed range
type InvalidCardError struct {
	Rank int
	Suit Suit
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card: rank %d of suit %d", e.Rank, int(e.Suit))
}

// Card is an individual playing card
// Both 1 and 14 denote an Ace.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card after validating its rank (1-14) and suit (0-3)
func NewCard(rank int, suit Suit) (*Card, error) {
	if rank < LowAce || rank > HighAce || !suit.Valid() {
		return nil, &InvalidCardError{Rank: rank, Suit: suit}
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

// RankName returns the short name of a rank, i.e., "K" for a King
func RankName(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

func (c *Card) String() string {
	return RankName(c.Rank) + c.Suit.String()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.AceHighRank() == card.AceHighRank()
}

// Compare orders cards by rank only. The suit is never considered.
func (c *Card) Compare(card *Card) int {
	switch {
	case c.Rank < card.Rank:
		return -1
	case c.Rank > card.Rank:
		return 1
	default:
		return 0
	}
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// AceHighRank returns the rank where Ace is considered high
func (c *Card) AceHighRank() int {
	if c.Rank == LowAce {
		return Ace
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-4]|[tjqka])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 1-14 or one of
// [TJQKA] and suit in [cdhs]
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %q", s)
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "t":
		rank = 10
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		var err error
		if rank, err = strconv.Atoi(match[1]); err != nil {
			return nil, fmt.Errorf("could not parse card %q: %w", s, err)
		}
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return NewCard(rank, suit)
}

// CardFromString is like ParseCard but panics on malformed input.
// Intended for fixtures and tests.
func CardFromString(s string) *Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// ParseCards parses a comma separated list of cards, i.e., "14c,2d,10h"
func ParseCards(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, str := range cardStrings {
		card, err := ParseCard(str)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will returns a slice of cards
// Panics if any card cannot be parsed.
func CardsFromString(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err.Error())
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
