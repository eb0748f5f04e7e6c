package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"pokertable-server/pkg/deck"
)

// ErrInvalidCardCount is returned when fewer than five or more than seven cards are analyzed
var ErrInvalidCardCount = errors.New("hand analyzer requires between 5 and 7 cards")

// keyLength is the longest tie-break key any hand can produce (flush or high card)
const keyLength = 5

// HandAnalyzer finds the best five card poker hand within five to seven cards
type HandAnalyzer struct {
	cards    deck.Hand
	best     deck.Hand
	hand     Hand
	key      []int
	strength int
}

// New will return a new HandAnalyzer instance
// Every five card subset of cards is ranked and the strongest one is kept.
func New(cards []*deck.Card) (*HandAnalyzer, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardCount, len(cards))
	}

	h := &HandAnalyzer{
		cards:    deck.Hand(cards).Clone(),
		strength: -1,
	}

	five := make(deck.Hand, 5)
	forEachCombination(len(cards), 5, func(idx []int) {
		for i, j := range idx {
			five[i] = h.cards[j]
		}

		hand, key := classify(five)
		if s := strengthOf(hand, key); s > h.strength {
			h.strength = s
			h.hand = hand
			h.key = key
			h.best = five.Clone()
		}
	})

	return h, nil
}

// GetHand returns the category of the best hand
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetStrength returns an integer that totally orders hands.
// A greater strength beats a lesser one, equal strengths tie.
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}

// BestFive returns the five cards that make the best hand
func (h *HandAnalyzer) BestFive() deck.Hand {
	return h.best.Clone()
}

// Compare returns 1 if h beats other, -1 if other beats h, and 0 on a tie
func (h *HandAnalyzer) Compare(other *HandAnalyzer) int {
	switch {
	case h.strength > other.strength:
		return 1
	case h.strength < other.strength:
		return -1
	default:
		return 0
	}
}

// Description returns a human-readable description, i.e., "Full house, Kings over Fives"
func (h *HandAnalyzer) Description() string {
	k := h.key
	switch h.hand {
	case RoyalFlush:
		return h.hand.String()
	case StraightFlush, Straight, Flush:
		return fmt.Sprintf("%s, %s high", h.hand, rankName(k[0]))
	case FourOfAKind, ThreeOfAKind:
		return fmt.Sprintf("%s, %s", h.hand, rankPlural(k[0]))
	case FullHouse:
		return fmt.Sprintf("%s, %s over %s", h.hand, rankPlural(k[0]), rankPlural(k[1]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", h.hand, rankPlural(k[0]), rankPlural(k[1]))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankPlural(k[0]))
	default:
		return fmt.Sprintf("%s, %s", h.hand, rankName(k[0]))
	}
}

type rankGroup struct {
	rank  int
	count int
}

// classify ranks exactly five cards.
// The key lists the ranks in the order they break ties for the category.
func classify(cards deck.Hand) (Hand, []int) {
	desc := make([]int, len(cards))
	isFlush := true
	for i, c := range cards {
		desc[i] = c.Rank
		if c.Suit != cards[0].Suit {
			isFlush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))

	high, isStraight := straightHigh(desc)
	if isStraight && isFlush {
		if high == deck.Ace {
			return RoyalFlush, []int{high}
		}

		return StraightFlush, []int{high}
	}

	groups := make([]rankGroup, 0, len(desc))
	for _, r := range desc {
		if n := len(groups); n > 0 && groups[n-1].rank == r {
			groups[n-1].count++
			continue
		}

		groups = append(groups, rankGroup{rank: r, count: 1})
	}

	// larger groups first, then higher ranks; desc is already rank ordered so a stable sort suffices
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	key := make([]int, len(groups))
	for i, g := range groups {
		key[i] = g.rank
	}

	switch {
	case groups[0].count == 4:
		return FourOfAKind, key
	case groups[0].count == 3 && groups[1].count == 2:
		return FullHouse, key
	case isFlush:
		return Flush, desc
	case isStraight:
		return Straight, []int{high}
	case groups[0].count == 3:
		return ThreeOfAKind, key
	case groups[0].count == 2 && groups[1].count == 2:
		return TwoPair, key
	case groups[0].count == 2:
		return OnePair, key
	default:
		return HighCard, desc
	}
}

// strengthOf packs a category and its tie-break key into a single comparable integer.
// Missing key positions are zero, which keeps lexicographic order since a category
// always produces keys of the same length.
func strengthOf(hand Hand, key []int) int {
	s := int(hand)
	for i := 0; i < keyLength; i++ {
		s *= deck.NumRanks
		if i < len(key) {
			s += key[i]
		}
	}

	return s
}

var rankNames = [deck.NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func rankName(rank int) string {
	return rankNames[rank]
}

func rankPlural(rank int) string {
	if rank == deck.Six {
		return "Sixes"
	}

	return rankNames[rank] + "s"
}
