package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinManager_GetSortedTiers(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(0, 0)
	p2 := newTestParticipant(1, 0)
	p3 := newTestParticipant(2, 0)

	wm := NewWinManager()
	wm.AddParticipant(p1, 10)
	wm.AddParticipant(p2, 30)
	wm.AddParticipant(p3, 10)

	tiers := wm.GetSortedTiers()
	a.Equal(2, len(tiers))
	a.Equal(participants(p2), tiers[0])
	a.Equal(participants(p1, p3), tiers[1])
}

func TestPotManager_Payout_singleWinner(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(0, 900)
	p2 := newTestParticipant(1, 900)
	p1.strength = 5
	p2.strength = 7
	p1.bet(100)
	p2.bet(100)

	pm := New()
	order := participants(p1, p2)
	pm.Settle(order)

	payouts, err := pm.Payout(order, byStrength)
	a.NoError(err)
	a.Equal(map[Participant]int{p2: 200}, payouts)
	a.Equal(900, p1.stack)
	a.Equal(1100, p2.stack)
	a.Equal(0, pm.Total())
}

func TestPotManager_Payout_oddChip(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(0, 0)
	p2 := newTestParticipant(1, 0)
	p1.strength = 9
	p2.strength = 9

	pm := New()
	pm.MainPot().Amount = 101

	// p2 sits left of the dealer, so it gets the odd chip
	payouts, err := pm.Payout(participants(p2, p1), byStrength)
	a.NoError(err)
	a.Equal(51, payouts[p2])
	a.Equal(50, payouts[p1])
	a.Equal(101, p1.stack+p2.stack)
}

func TestPotManager_Payout_sidePots(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(0, 100)
	p2 := newTestParticipant(1, 300)
	p3 := newTestParticipant(2, 500)
	p4 := newTestParticipant(3, 1000)
	p1.bet(100)
	p2.bet(300)
	p3.bet(500)
	p4.bet(500)

	// the shortest stack has the best hand, then p3
	p1.strength = 100
	p2.strength = 10
	p3.strength = 50
	p4.strength = 20

	order := participants(p1, p2, p3, p4)
	pm := New()
	pm.Settle(order)

	payouts, err := pm.Payout(order, byStrength)
	a.NoError(err)
	a.Equal(400, payouts[p1])
	a.Equal(0, payouts[p2])
	a.Equal(1000, payouts[p3])
	a.Equal(0, payouts[p4])
	a.Equal(1900, p1.stack+p2.stack+p3.stack+p4.stack)
}

func TestPotManager_Payout_uncontested(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(0, 950)
	p2 := newTestParticipant(1, 900)
	p1.bet(50)
	p2.bet(100)
	p1.folded = true

	order := participants(p1, p2)
	pm := New()
	pm.Settle(order)

	// a single candidate is never ranked
	payouts, err := pm.Payout(order, failingRanker)
	a.NoError(err)
	a.Equal(150, payouts[p2])
	a.Equal(1050, p2.stack)
}

func TestPotManager_Payout_eligibleFoldedLater(t *testing.T) {
	a := assert.New(t)

	p1 := newTestParticipant(0, 0)
	p2 := newTestParticipant(1, 0)
	p3 := newTestParticipant(2, 0)

	pm := New()
	pm.sidePots = Pots{{Amount: 60, Eligible: participants(p1)}}
	p1.folded = true

	payouts, err := pm.Payout(participants(p1, p2, p3), func(pt Participant) (int, error) {
		return pt.Seat(), nil
	})
	a.NoError(err)
	a.Equal(60, payouts[p3])
}

func TestPotManager_Payout_rankError(t *testing.T) {
	p1 := newTestParticipant(0, 0)
	p2 := newTestParticipant(1, 0)

	pm := New()
	pm.MainPot().Amount = 10

	_, err := pm.Payout(participants(p1, p2), failingRanker)
	assert.ErrorIs(t, err, errRank)
}

func TestPotManager_Payout_noEligible(t *testing.T) {
	p1 := newTestParticipant(0, 0)
	p1.folded = true

	pm := New()
	pm.MainPot().Amount = 10

	_, err := pm.Payout(participants(p1), byStrength)
	assert.EqualError(t, err, "pot 0 with 10 chips has no eligible participants")
}
