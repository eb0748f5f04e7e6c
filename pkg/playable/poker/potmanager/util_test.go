package potmanager

import "errors"

type testParticipant struct {
	seat       int
	stack      int
	currentBet int
	folded     bool
	strength   int
}

func (t *testParticipant) Seat() int {
	return t.seat
}

func (t *testParticipant) CurrentBet() int {
	return t.currentBet
}

func (t *testParticipant) SetCurrentBet(amount int) {
	t.currentBet = amount
}

func (t *testParticipant) AdjustStack(amount int) {
	t.stack += amount
}

func (t *testParticipant) IsPotEligible() bool {
	return !t.folded
}

func (t *testParticipant) IsAllIn() bool {
	return t.stack == 0
}

// bet moves chips from the stack to the current bet
func (t *testParticipant) bet(amount int) {
	t.stack -= amount
	t.currentBet += amount
}

func newTestParticipant(seat, stack int) *testParticipant {
	return &testParticipant{
		seat:  seat,
		stack: stack,
	}
}

func participants(pts ...*testParticipant) []Participant {
	out := make([]Participant, len(pts))
	for i, pt := range pts {
		out[i] = pt
	}

	return out
}

func byStrength(pt Participant) (int, error) {
	return pt.(*testParticipant).strength, nil
}

var errRank = errors.New("rank failed")

func failingRanker(Participant) (int, error) {
	return 0, errRank
}
