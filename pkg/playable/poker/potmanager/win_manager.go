package potmanager

import (
	"fmt"
	"sort"
)

// Ranker returns the hand strength of a participant, greater strengths win
type Ranker func(pt Participant) (int, error)

type tier struct {
	strength     int
	participants []Participant
}

// WinManager groups participants into tiers of equal hand strength
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant adds a participant to the tier for its strength.
// Participants keep the order they were added in within a tier.
func (w WinManager) AddParticipant(p Participant, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength:     handStrength,
			participants: make([]Participant, 0),
		}
	}

	t.participants = append(t.participants, p)
	w[handStrength] = t
}

// GetSortedTiers returns the tiers, strongest first
func (w WinManager) GetSortedTiers() [][]Participant {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredParticipants := make([][]Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Payout pays every pot, side pots in creation order and then the main pot.
// order lists the participants clockwise starting left of the dealer. It decides who
// receives the odd chips when a pot splits unevenly. rank is only called for pots
// with more than one eligible participant.
func (p *PotManager) Payout(order []Participant, rank Ranker) (map[Participant]int, error) {
	payouts := make(map[Participant]int)

	for i, pot := range p.Pots() {
		if pot.Amount == 0 {
			continue
		}

		candidates := make([]Participant, 0, len(order))
		for _, pt := range order {
			if pot.IsEligible(pt) {
				candidates = append(candidates, pt)
			}
		}

		// everyone the pot was frozen for has folded since
		if len(candidates) == 0 {
			candidates = filterPotEligible(order)
		}

		if len(candidates) == 0 {
			return nil, fmt.Errorf("pot %d with %d chips has no eligible participants", i, pot.Amount)
		}

		winners := candidates
		if len(candidates) > 1 {
			wm := NewWinManager()
			for _, pt := range candidates {
				strength, err := rank(pt)
				if err != nil {
					return nil, fmt.Errorf("could not rank seat %d: %w", pt.Seat(), err)
				}

				wm.AddParticipant(pt, strength)
			}

			winners = wm.GetSortedTiers()[0]
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for j, winner := range winners {
			amount := share
			if j < remainder {
				amount++
			}

			winner.AdjustStack(amount)
			payouts[winner] += amount
		}

		pot.Amount = 0
	}

	return payouts, nil
}
