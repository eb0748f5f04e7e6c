package texasholdem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokertable-server/pkg/playable/poker/action"
)

func TestBetting_illegalActionsAreIgnored(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 1000)
	dealHand(t, table)
	assertTick(t, table)

	actRejected(t, table, 0, action.Check)
	actRejected(t, table, 0, action.Bet, 150)
	actRejected(t, table, 0, action.Bet, 100)
	actRejected(t, table, 0, action.Bet, 1001)
	a.Equal(1000, table.PlayerAtSeat(0).Stack())

	// the same decision point accepts a legal retry
	act(t, table, 0, action.Raise, 200)
	a.Equal(PlayerStateRaised, table.PlayerAtSeat(0).State())
	a.Equal(800, table.PlayerAtSeat(0).Stack())
	a.Equal(200, table.latestBet)
	a.Equal(300, table.minRaise)

	assertActionOn(t, table, 1)
	legal := legalActions(t, table, 1)
	a.Equal(200, legal.CallAmount)
	a.Equal(300, legal.MinRaise)
	a.Equal(2, legal.ActionNum)
}

func TestBetting_postflopBet(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 1000)
	dealHand(t, table)
	assertTick(t, table)

	act(t, table, 0, action.Call)
	act(t, table, 1, action.Call)
	act(t, table, 2, action.Check)
	a.Equal(GameStateFlop, table.GameState())
	a.Equal(300, table.potManager.MainPot().Amount)

	assertTick(t, table)
	a.Len(table.Community(), 3)

	// postflop, the first player left of the dealer opens
	assertActionOn(t, table, 1)
	legal := legalActions(t, table, 1)
	a.True(legal.CanCheck)
	a.False(legal.CanCall)
	a.True(legal.CanRaise)
	a.True(legal.BetInsteadOfRaise)
	a.Equal(100, legal.MinRaise)

	actRejected(t, table, 1, action.Call)
	actRejected(t, table, 1, action.Bet, 50)

	act(t, table, 1, action.Check)
	act(t, table, 2, action.Bet, 100)
	a.Equal(PlayerStateBet, table.PlayerAtSeat(2).State())
	a.Equal(200, table.minRaise)

	act(t, table, 0, action.Bet, 300)
	a.Equal(PlayerStateRaised, table.PlayerAtSeat(0).State())
	a.Equal(500, table.minRaise)

	act(t, table, 1, action.Fold)
	act(t, table, 2, action.Call)
	a.Equal(GameStateTurn, table.GameState())
	a.Equal(900, table.potManager.MainPot().Amount)
	a.Equal(600, table.PlayerAtSeat(0).Stack())
	a.Equal(900, table.PlayerAtSeat(1).Stack())
	a.Equal(600, table.PlayerAtSeat(2).Stack())
	a.Equal(3000, table.ChipsInPlay())

	// the folded player is skipped
	assertTick(t, table)
	assertActionOn(t, table, 2)
}

func TestBetting_bigBlindOption(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 1000)
	dealHand(t, table)
	assertTick(t, table)

	act(t, table, 0, action.Call)
	act(t, table, 1, action.Call)

	assertActionOn(t, table, 2)
	legal := legalActions(t, table, 2)
	a.True(legal.CanCheck)
	a.True(legal.CanRaise)

	act(t, table, 2, action.Bet, 300)

	// the raise reopens the betting for everybody
	assertActionOn(t, table, 0)
	a.True(legalActions(t, table, 0).CanRaise)
	act(t, table, 0, action.Call)
	act(t, table, 1, action.Call)
	a.Equal(GameStateFlop, table.GameState())
	a.Equal(900, table.potManager.MainPot().Amount)
}

func TestBetting_shortAllInDoesNotReopen(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 400)
	dealHand(t, table)
	assertTick(t, table)

	act(t, table, 0, action.Bet, 300)
	a.Equal(500, table.minRaise)
	act(t, table, 1, action.Call)

	// the big blind's all-in for 400 is less than a full raise
	legal := legalActions(t, table, 2)
	a.True(legal.CanRaise)
	a.Equal(400, legal.AllInAmount)
	act(t, table, 2, action.Bet, 400)
	a.Equal(PlayerStateAllIn, table.PlayerAtSeat(2).State())
	a.Equal(400, table.latestBet)
	a.Equal(300, table.latestFullRaise)
	a.Equal(500, table.minRaise)

	assertActionOn(t, table, 0)
	legal = legalActions(t, table, 0)
	a.True(legal.CanCall)
	a.Equal(400, legal.CallAmount)
	a.False(legal.CanRaise)
	actRejected(t, table, 0, action.Bet, 600)
	act(t, table, 0, action.Call)

	assertActionOn(t, table, 1)
	a.False(legalActions(t, table, 1).CanRaise)
	act(t, table, 1, action.Call)

	a.Equal(GameStateFlop, table.GameState())

	// the all-in player's pot is frozen and the others play for a new main pot
	sidePots := table.potManager.SidePots()
	if a.Len(sidePots, 1) {
		a.Equal(1200, sidePots[0].Amount)
		a.Len(sidePots[0].Eligible, 3)
	}

	main := table.potManager.MainPot()
	a.Equal(0, main.Amount)
	a.True(main.IsEligible(table.PlayerAtSeat(0)))
	a.True(main.IsEligible(table.PlayerAtSeat(1)))
	a.False(main.IsEligible(table.PlayerAtSeat(2)))

	// two players can still bet, so the hand goes on
	assertTick(t, table)
	a.Equal(GameStateProcessActions, table.GameState())
	assertActionOn(t, table, 1)
}

func TestBetting_canRaiseCountsChipsAlreadyIn(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 250)
	dealHand(t, table)
	assertTick(t, table)

	act(t, table, 0, action.Bet, 200)
	act(t, table, 1, action.Call)

	// 150 behind is less than the 200 bet, but with the 100 blind the big blind can still go to 250
	bb := table.PlayerAtSeat(2)
	a.Equal(150, bb.Stack())
	a.Equal(100, bb.CurrentBet())
	legal := legalActions(t, table, 2)
	a.True(legal.CanRaise)
	a.Equal(250, legal.AllInAmount)
	a.Equal(200, legal.CallAmount)

	act(t, table, 2, action.Bet, 250)
	a.Equal(PlayerStateAllIn, bb.State())
	a.Equal(250, table.latestBet)
	a.Equal(200, table.latestFullRaise)

	// a stack that only covers the call has no raise
	table = setupTable(t, testOptions(), 1000, 1000, 200)
	dealHand(t, table)
	assertTick(t, table)

	act(t, table, 0, action.Bet, 200)
	act(t, table, 1, action.Call)
	legal = legalActions(t, table, 2)
	a.False(legal.CanRaise)
	a.True(legal.CanCall)
	a.Equal(200, legal.CallAmount)
}

func TestBetting_shortAllInReopensForUnansweredPlayers(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 1000, 150)
	dealHand(t, table)
	assertTick(t, table)

	// seat 3 is first to act and goes all-in for less than a full raise
	act(t, table, 3, action.Bet, 150)
	a.Equal(150, table.latestBet)
	a.Equal(100, table.latestFullRaise)

	// the players who haven't answered the big blind can still raise
	assertActionOn(t, table, 0)
	legal := legalActions(t, table, 0)
	a.True(legal.CanRaise)
	a.Equal(150, legal.CallAmount)
	a.Equal(200, legal.MinRaise)
}

func TestBetting_allInBlind(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 60)
	dealHand(t, table)
	a.Equal(PlayerStateAllIn, table.PlayerAtSeat(1).State())
	a.Equal(60, table.latestBet)
	a.Len(table.PlayerAtSeat(1).HoleCards(), 2)

	assertTick(t, table)
	assertActionOn(t, table, 0)
	legal := legalActions(t, table, 0)
	a.Equal(60, legal.CallAmount)

	act(t, table, 0, action.Call)
	a.Equal(GameStateShowdown, table.GameState())
	a.Equal(940, table.PlayerAtSeat(0).Stack())

	assertTick(t, table)
	a.Equal(GameStateShowdownRunout, table.GameState())
	for i := 1; i <= 5; i++ {
		assertTick(t, table)
		a.Len(table.Community(), i)
	}

	a.Equal(GameStateEndHand, table.GameState())
	assertTick(t, table)
	a.Equal(GameStateBeforeHand, table.GameState())
	a.Equal(1060, table.ChipsInPlay())
	a.NotEmpty(table.LastResults())
}

func TestBetting_allInSmallBlindHeadsUp(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 30, 1000)
	dealHand(t, table)
	a.Equal(PlayerStateAllIn, table.PlayerAtSeat(0).State())
	a.Equal(100, table.PlayerAtSeat(1).CurrentBet())

	// the big blind already covers the all-in, there is nothing left to bet on
	assertTick(t, table)
	a.Equal(GameStateShowdown, table.GameState())
	_, ok := table.ActionOnSeat()
	a.False(ok)

	for table.GameState() != GameStateEndHand {
		assertTick(t, table)
	}

	a.Len(table.Community(), 5)
	assertTick(t, table)
	a.Equal(GameStateBeforeHand, table.GameState())
	a.NotEmpty(table.LastResults())
	a.Equal(1030, table.ChipsInPlay())
}

func TestBetting_concurrentSubmissions(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 1000)
	dealHand(t, table)
	assertTick(t, table)

	legal := legalActions(t, table, 0)
	d := Decision{
		HandNum:   legal.HandNum,
		ActionNum: legal.ActionNum,
		Action:    action.Call,
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = table.SubmitAction(playerName(0), d)
		}()
	}

	wg.Wait()

	assertTick(t, table)
	a.Equal(900, table.PlayerAtSeat(0).Stack())
	a.Equal(2, table.ActionNum())
	assertActionOn(t, table, 1)

	// replaying the applied decision is a no-op
	a.Equal(ErrStaleAction, table.SubmitAction(playerName(0), d))
	assertNoUpdate(t, table)
	a.Equal(900, table.PlayerAtSeat(0).Stack())
	a.Equal(2, table.ActionNum())
}

func TestBetting_notYourTurn(t *testing.T) {
	a := assert.New(t)

	table := setupTable(t, testOptions(), 1000, 1000, 1000)
	dealHand(t, table)
	assertTick(t, table)

	err := table.SubmitAction(playerName(1), Decision{HandNum: 1, ActionNum: 1, Action: action.Fold})
	a.Equal(ErrStaleAction, err)

	err = table.SubmitAction(playerName(0), Decision{HandNum: 1, ActionNum: 1, Action: action.Action("shove")})
	a.EqualError(err, `unknown action: "shove"`)

	assertNoUpdate(t, table)
	assertActionOn(t, table, 0)
}
