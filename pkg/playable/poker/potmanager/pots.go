package potmanager

import "encoding/json"

// Pot is a pile of chips and the participants who can win it
type Pot struct {
	Amount int

	// Eligible is frozen when the pot is created as a side pot.
	// A nil set on the main pot means every pot-eligible participant at payout.
	Eligible []Participant
}

type potJSON struct {
	Amount        int   `json:"amount"`
	EligibleSeats []int `json:"eligibleSeats"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	var seats []int
	if p.Eligible != nil {
		seats = make([]int, len(p.Eligible))
		for i, pt := range p.Eligible {
			seats[i] = pt.Seat()
		}
	}

	return json.Marshal(potJSON{
		Amount:        p.Amount,
		EligibleSeats: seats,
	})
}

// IsEligible returns true if the participant can win the pot
func (p *Pot) IsEligible(pt Participant) bool {
	if !pt.IsPotEligible() {
		return false
	}

	if p.Eligible == nil {
		return true
	}

	return contains(p.Eligible, pt)
}

// Pots is a collection of pots
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
