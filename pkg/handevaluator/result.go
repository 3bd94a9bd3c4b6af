package handevaluator

import (
	"encoding/json"
	"fmt"
	"strings"

	"pokerhand-evaluator/pkg/deck"
)

// HandResult describes a classified hand and is used to break ties between
// hands of the same category.
//
// A HandResult can only be built through one of the per-category constructors
// so fields that have no meaning for a category are always zero. A zero
// primary or secondary means the value is absent, which sorts below every
// real rank (2-14).
type HandResult struct {
	category  Category
	primary   int
	secondary int
	kickers   []int
}

func newStraightFlush(high int) HandResult {
	return HandResult{category: StraightFlush, primary: high}
}

func newFourOfAKind(quads, kicker int) HandResult {
	return HandResult{category: FourOfAKind, primary: quads, kickers: []int{kicker}}
}

func newFullHouse(trips, pair int) HandResult {
	return HandResult{category: FullHouse, primary: trips, secondary: pair}
}

func newFlush(ranks []int) HandResult {
	return HandResult{category: Flush, kickers: ranks}
}

func newStraight(high int) HandResult {
	return HandResult{category: Straight, primary: high}
}

func newThreeOfAKind(trips int, kickers []int) HandResult {
	return HandResult{category: ThreeOfAKind, primary: trips, kickers: kickers}
}

func newTwoPair(high, low, kicker int) HandResult {
	return HandResult{category: TwoPair, primary: high, secondary: low, kickers: []int{kicker}}
}

func newPair(pair int, kickers []int) HandResult {
	return HandResult{category: Pair, primary: pair, kickers: kickers}
}

func newHighCard(ranks []int) HandResult {
	return HandResult{category: HighCard, primary: ranks[0], kickers: ranks[1:]}
}

// Category returns the category of the hand
func (r HandResult) Category() Category {
	return r.category
}

// Primary returns the value that defines the category, if the category has one
func (r HandResult) Primary() (int, bool) {
	return r.primary, r.primary > 0
}

// Secondary returns the second defining value (pair of a full house, low pair of two pair)
func (r HandResult) Secondary() (int, bool) {
	return r.secondary, r.secondary > 0
}

// Kickers returns a copy of the kickers, highest first
func (r HandResult) Kickers() []int {
	kickers := make([]int, len(r.kickers))
	copy(kickers, r.kickers)
	return kickers
}

// Compare returns -1 if r is weaker than o, 1 if r is stronger, and 0 on a split pot
func (r HandResult) Compare(o HandResult) int {
	if c := compareInt(int(r.category), int(o.category)); c != 0 {
		return c
	}

	if c := compareInt(r.primary, o.primary); c != 0 {
		return c
	}

	if c := compareInt(r.secondary, o.secondary); c != 0 {
		return c
	}

	return compareRanks(r.kickers, o.kickers)
}

// Equal returns true if neither hand beats the other
func (r HandResult) Equal(o HandResult) bool {
	return r.Compare(o) == 0
}

// Less returns true if r loses to o
func (r HandResult) Less(o HandResult) bool {
	return r.Compare(o) < 0
}

// Compare compares two hand results. See HandResult.Compare
func Compare(a, b HandResult) int {
	return a.Compare(b)
}

// Winners returns the indexes of the strongest results
// More than one index means the pot is split.
func Winners(results ...HandResult) []int {
	var winners []int
	for i, result := range results {
		if len(winners) == 0 {
			winners = []int{i}
			continue
		}

		switch result.Compare(results[winners[0]]) {
		case 1:
			winners = []int{i}
		case 0:
			winners = append(winners, i)
		}
	}

	return winners
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareRanks compares element-wise; a shorter slice loses a tie on the shared prefix
func compareRanks(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareInt(a[i], b[i]); c != 0 {
			return c
		}
	}

	return compareInt(len(a), len(b))
}

func (r HandResult) String() string {
	var sb strings.Builder
	sb.WriteString(r.category.String())

	if p, ok := r.Primary(); ok {
		sb.WriteString(", ")
		sb.WriteString(deck.RankName(p))
	}

	if s, ok := r.Secondary(); ok {
		sb.WriteString(" over ")
		sb.WriteString(deck.RankName(s))
	}

	if len(r.kickers) > 0 {
		names := make([]string, len(r.kickers))
		for i, k := range r.kickers {
			names[i] = deck.RankName(k)
		}

		sb.WriteString(fmt.Sprintf(" [%s]", strings.Join(names, " ")))
	}

	return sb.String()
}

type handResultJSON struct {
	Category  string `json:"category"`
	Rank      int    `json:"rank"`
	Primary   *int   `json:"primary,omitempty"`
	Secondary *int   `json:"secondary,omitempty"`
	Kickers   []int  `json:"kickers"`
}

// MarshalJSON encodes the result; absent values are omitted
func (r HandResult) MarshalJSON() ([]byte, error) {
	payload := handResultJSON{
		Category: r.category.String(),
		Rank:     int(r.category),
		Kickers:  r.Kickers(),
	}

	if p, ok := r.Primary(); ok {
		payload.Primary = &p
	}

	if s, ok := r.Secondary(); ok {
		payload.Secondary = &s
	}

	return json.Marshal(payload)
}
