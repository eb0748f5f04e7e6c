package potmanager

// Participant is a seated player whose committed chips are settled into pots
type Participant interface {
	// Seat returns the seat index at the table
	Seat() int

	// CurrentBet is how many chips the participant committed on the current street
	CurrentBet() int
	SetCurrentBet(amount int)

	// AdjustStack adds (or removes when negative) chips from the participant's stack
	AdjustStack(amount int)

	// IsPotEligible returns true if the participant can still win chips (i.e., has not folded)
	IsPotEligible() bool

	// IsAllIn returns true if the participant has no chips behind
	IsAllIn() bool
}

// canAct returns true if the participant can still put chips in the pot
func canAct(p Participant) bool {
	return p.IsPotEligible() && !p.IsAllIn()
}

func filterPotEligible(participants []Participant) []Participant {
	eligible := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if p.IsPotEligible() {
			eligible = append(eligible, p)
		}
	}

	return eligible
}

func contains(participants []Participant, p Participant) bool {
	for _, pt := range participants {
		if pt == p {
			return true
		}
	}

	return false
}
