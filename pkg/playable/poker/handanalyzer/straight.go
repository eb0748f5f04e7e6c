package handanalyzer

import (
	"pokertable-server/pkg/deck"
)

// straightHigh returns the high rank of a straight formed by five descending ranks.
// The ranks must be distinct, so a hand with two aces can never be a straight.
// An ace plays low in the wheel (A-2-3-4-5), whose high card is the five.
func straightHigh(desc []int) (int, bool) {
	if len(desc) != 5 {
		return 0, false
	}

	for i := 1; i < 5; i++ {
		if desc[i] == desc[i-1] {
			return 0, false
		}
	}

	if desc[0]-desc[4] == 4 {
		return desc[0], true
	}

	if desc[0] == deck.Ace && desc[1] == deck.Five && desc[4] == deck.Two {
		return deck.Five, true
	}

	return 0, false
}
