package handevaluator

import "pokerhand-evaluator/pkg/deck"

// bestRun returns the top rank of the highest run of at least minRun
// consecutive ranks, or zero if there is no such run.
// ranks must be sorted ascending with Aces high. Repeated ranks neither extend
// nor break a run. When the hand holds an Ace it is also tried as a low Ace so
// the wheel (A-2-3-4-5) is found with a top rank of 5.
func bestRun(ranks []int, minRun int) int {
	if len(ranks) == 0 {
		return 0
	}

	if ranks[len(ranks)-1] == deck.Ace {
		withLowAce := make([]int, 0, len(ranks)+1)
		withLowAce = append(withLowAce, deck.LowAce)
		ranks = append(withLowAce, ranks...)
	}

	best := 0
	streak := 0
	prev := 0
	for _, rank := range ranks {
		switch {
		case streak > 0 && rank == prev:
			continue
		case streak > 0 && rank == prev+1:
			streak++
		default:
			streak = 1
		}

		prev = rank
		if streak >= minRun {
			best = rank
		}
	}

	return best
}
