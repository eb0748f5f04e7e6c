package potmanager

import (
	"sort"
)

// PotManager folds the chips committed on each street into a main pot and side pots
type PotManager struct {
	main     *Pot
	sidePots Pots
}

// New instantiates a new PotManager with an empty main pot
func New() *PotManager {
	return &PotManager{
		main:     &Pot{},
		sidePots: Pots{},
	}
}

// MainPot returns the pot that absorbs further commitments
func (p *PotManager) MainPot() *Pot {
	return p.main
}

// SidePots returns the frozen side pots, in the order they were created
func (p *PotManager) SidePots() Pots {
	return p.sidePots
}

// Pots returns the side pots followed by the main pot
func (p *PotManager) Pots() Pots {
	pots := make(Pots, 0, len(p.sidePots)+1)
	pots = append(pots, p.sidePots...)
	return append(pots, p.main)
}

// Total returns the chips held in every pot
func (p *PotManager) Total() int {
	return p.Pots().Total()
}

// Settle moves every participant's current bet into the pots.
// It must be called once the betting round closes. Contributors are layered by the
// smallest outstanding bet. Each layer that doesn't cover every remaining contributor
// is frozen into a side pot with the pot-eligible contributors of that layer.
func (p *PotManager) Settle(participants []Participant) {
	remaining := make([]Participant, 0, len(participants))
	for _, pt := range participants {
		if pt.CurrentBet() > 0 {
			remaining = append(remaining, pt)
		}
	}

	for len(remaining) > 0 {
		// smallest bet first, folded participants before eligible ones at the same level
		sort.SliceStable(remaining, func(i, j int) bool {
			bi, bj := remaining[i].CurrentBet(), remaining[j].CurrentBet()
			if bi != bj {
				return bi < bj
			}

			return !remaining[i].IsPotEligible() && remaining[j].IsPotEligible()
		})

		low := remaining[0]
		layer := low.CurrentBet()

		if !low.IsPotEligible() {
			p.main.Amount += layer
			low.SetCurrentBet(0)
			remaining = remaining[1:]
			continue
		}

		if allBetsEqual(remaining, layer) {
			for _, pt := range remaining {
				p.main.Amount += layer
				pt.SetCurrentBet(0)
			}

			break
		}

		for _, pt := range remaining {
			p.main.Amount += layer
			pt.SetCurrentBet(pt.CurrentBet() - layer)
		}

		p.freeze(filterPotEligible(remaining))

		next := make([]Participant, 0, len(remaining))
		for _, pt := range remaining {
			if pt.CurrentBet() > 0 {
				next = append(next, pt)
			}
		}

		remaining = next
		p.main.Eligible = filterPotEligible(remaining)
	}

	p.freezeAllInMain(participants)
}

// freezeAllInMain closes the main pot when a participant in it is all-in but the others
// can keep betting. Later streets then go into a fresh main pot the all-in participant cannot win.
func (p *PotManager) freezeAllInMain(participants []Participant) {
	if p.main.Amount == 0 {
		return
	}

	hasAllIn := false
	actors := make([]Participant, 0, len(participants))
	for _, pt := range participants {
		if !p.main.IsEligible(pt) {
			continue
		}

		if canAct(pt) {
			actors = append(actors, pt)
		} else if pt.IsAllIn() {
			hasAllIn = true
		}
	}

	if !hasAllIn || len(actors) < 2 {
		return
	}

	eligible := p.main.Eligible
	if eligible == nil {
		eligible = filterPotEligible(participants)
	}

	p.freeze(filterPotEligible(eligible))
	p.main.Eligible = actors
}

// freeze appends the main pot to the side pots and starts a new main pot
func (p *PotManager) freeze(eligible []Participant) {
	p.main.Eligible = eligible
	p.sidePots = append(p.sidePots, p.main)
	p.main = &Pot{}
}

func allBetsEqual(participants []Participant, amount int) bool {
	for _, pt := range participants {
		if pt.CurrentBet() != amount {
			return false
		}
	}

	return true
}
