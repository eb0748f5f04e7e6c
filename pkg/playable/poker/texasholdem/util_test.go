package texasholdem

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokertable-server/internal/rng"
	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/playable/poker/action"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Name = "test"
	opts.NumSeats = 6
	opts.SmallBlind = 50
	opts.BigBlind = 100
	opts.BuyIn = 1000
	opts.Rebuy = RebuyPolicy{Enabled: true, Amount: 1000}
	opts.Generator = rng.NewSeeded(1)
	return opts
}

// testLogger only reports errors, a long test fills the unread log channel
func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func playerName(seat int) string {
	return fmt.Sprintf("player%d", seat)
}

// setupTable seats one player per stack, starting at seat 0
func setupTable(t *testing.T, opts Options, stacks ...int) *Table {
	t.Helper()

	table, err := NewTable(testLogger(), opts)
	require.NoError(t, err)

	for seat, stack := range stacks {
		p, err := table.AddPlayer(playerName(seat), seat)
		require.NoError(t, err)
		require.NoError(t, p.BuyIn(stack))
	}

	return table
}

// dealHand ticks a new table until the first hand is dealt (state is preflop)
func dealHand(t *testing.T, table *Table) {
	t.Helper()

	if table.gameState == GameStateNotStarted {
		assertTick(t, table)
	}

	require.Equal(t, GameStateBeforeHand, table.gameState)
	assertTick(t, table)
	require.Equal(t, GameStatePreflop, table.gameState)
}

func assertTick(t *testing.T, table *Table, msgAndArgs ...interface{}) {
	t.Helper()
	updated, err := table.Tick()
	require.NoError(t, err, msgAndArgs...)
	assert.True(t, updated, msgAndArgs...)
}

func assertNoUpdate(t *testing.T, table *Table, msgAndArgs ...interface{}) {
	t.Helper()
	updated, err := table.Tick()
	require.NoError(t, err, msgAndArgs...)
	assert.False(t, updated, msgAndArgs...)
}

func assertActionOn(t *testing.T, table *Table, seat int, msgAndArgs ...interface{}) {
	t.Helper()
	actionOn, ok := table.ActionOnSeat()
	require.True(t, ok, msgAndArgs...)
	require.Equal(t, seat, actionOn, msgAndArgs...)
}

func legalActions(t *testing.T, table *Table, seat int) *LegalActions {
	t.Helper()
	legal := table.PlayerAtSeat(seat).pendingAction.legalActions()
	require.NotNil(t, legal, "seat %d has no legal actions", seat)
	return legal
}

func submit(t *testing.T, table *Table, seat int, a action.Action, amount ...int) {
	t.Helper()

	legal := legalActions(t, table, seat)
	amt := 0
	if len(amount) == 1 {
		amt = amount[0]
	}

	require.NoError(t, table.SubmitAction(playerName(seat), Decision{
		HandNum:   legal.HandNum,
		ActionNum: legal.ActionNum,
		Action:    a,
		Amount:    amt,
	}))
}

// act submits a decision for the seat on action and ticks once to apply it
func act(t *testing.T, table *Table, seat int, a action.Action, amount ...int) {
	t.Helper()
	assertActionOn(t, table, seat)
	submit(t, table, seat, a, amount...)
	assertTick(t, table, "seat %d %s", seat, a)
}

// actRejected submits a decision that must be silently ignored
func actRejected(t *testing.T, table *Table, seat int, a action.Action, amount ...int) {
	t.Helper()
	assertActionOn(t, table, seat)
	before := *legalActions(t, table, seat)
	submit(t, table, seat, a, amount...)
	assertNoUpdate(t, table, "seat %d %s", seat, a)
	assertActionOn(t, table, seat)
	assert.Equal(t, before, *legalActions(t, table, seat))
}

func setHoleCards(table *Table, seat int, cards string) {
	table.PlayerAtSeat(seat).holeCards = deck.CardsFromString(cards)
}

// stackDeck replaces the undealt cards so the board comes out in order
func stackDeck(table *Table, cards string) {
	table.deck.Cards = deck.CardsFromString(cards)
}
