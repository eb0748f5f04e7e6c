package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("not-started", GameStateNotStarted.String())
	a.Equal("before-hand", GameStateBeforeHand.String())
	a.Equal("preflop", GameStatePreflop.String())
	a.Equal("process-actions", GameStateProcessActions.String())
	a.Equal("showdown-runout", GameStateShowdownRunout.String())
	a.Equal("end-hand", GameStateEndHand.String())
	a.Equal("", GameState(99).String())
}

func TestGameState_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(GameStateFlop)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"flop"}`, string(b))
}

func TestGameState_isHandInProgress(t *testing.T) {
	a := assert.New(t)
	a.False(GameStateNotStarted.isHandInProgress())
	a.False(GameStateBeforeHand.isHandInProgress())
	a.True(GameStatePreflop.isHandInProgress())
	a.True(GameStateProcessActions.isHandInProgress())
	a.True(GameStateEndHand.isHandInProgress())
}

func TestPlayerState(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(PlayerStateAllIn)
	a.NoError(err)
	a.JSONEq(`{"id":9,"name":"all-in"}`, string(b))

	a.False(PlayerStateSittingOut.isDealtIn())
	a.False(PlayerStateNotInHand.isDealtIn())
	a.True(PlayerStateFolded.isDealtIn())
	a.False(PlayerStateFolded.isPotEligible())
	a.True(PlayerStateAllIn.isPotEligible())
	a.False(PlayerStateAllIn.canAct())
	a.True(PlayerStateRaised.canAct())
}
