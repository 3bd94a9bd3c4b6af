package handevaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_order(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 9)

	for i, c := range categories {
		assert.Equal(t, i, int(c))
	}

	assert.Equal(t, 0, int(HighCard))
	assert.Equal(t, 8, int(StraightFlush))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Pair", Pair.String())
	assert.Equal(t, "Two pair", TwoPair.String())
	assert.Equal(t, "Three of a kind", ThreeOfAKind.String())
	assert.Equal(t, "Straight", Straight.String())
	assert.Equal(t, "Flush", Flush.String())
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Four of a kind", FourOfAKind.String())
	assert.Equal(t, "Straight flush", StraightFlush.String())

	assert.PanicsWithValue(t, "unknown category: 9", func() {
		_ = Category(9).String()
	})
}
