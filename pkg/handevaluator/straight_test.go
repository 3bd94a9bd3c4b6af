package handevaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_bestRun(t *testing.T) {
	tests := []struct {
		ranks  []int
		minRun int
		want   int
	}{
		{[]int{2, 3, 4, 5, 6}, 5, 6},
		{[]int{2, 3, 4, 5, 14}, 5, 5},
		{[]int{10, 11, 12, 13, 14}, 5, 14},
		{[]int{2, 3, 4, 5, 6, 7, 8}, 5, 8},
		{[]int{2, 3, 3, 4, 4, 5, 6}, 5, 6},
		{[]int{2, 3, 4, 5, 7, 8, 9}, 5, 0},
		{[]int{2, 3, 12, 13, 14}, 5, 0},
		{[]int{2, 3, 4, 5, 6, 14}, 5, 6},
		{[]int{5, 6, 7}, 3, 7},
		{[]int{5, 7}, 2, 0},
		{[]int{9}, 1, 9},
		{[]int{14}, 1, 14},
		{[]int{}, 5, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, bestRun(tc.ranks, tc.minRun), "%v", tc.ranks)
	}
}

func Test_bestRun_doesNotModifyRanks(t *testing.T) {
	ranks := []int{2, 3, 4, 5, 14}
	bestRun(ranks, 5)
	assert.Equal(t, []int{2, 3, 4, 5, 14}, ranks)
}
