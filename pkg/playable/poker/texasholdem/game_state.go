package texasholdem

import (
	"encoding/json"
)

// GameState represents where the table is within a hand
type GameState int

// constants for GameState
const (
	GameStateNotStarted GameState = iota
	GameStateBeforeHand
	GameStatePreflop
	GameStateFlop
	GameStateTurn
	GameStateRiver
	GameStateProcessActions
	GameStateShowdown
	GameStateShowdownRunout
	GameStateEndHand
)

func (g GameState) String() string {
	switch g {
	case GameStateNotStarted:
		return "not-started"
	case GameStateBeforeHand:
		return "before-hand"
	case GameStatePreflop:
		return "preflop"
	case GameStateFlop:
		return "flop"
	case GameStateTurn:
		return "turn"
	case GameStateRiver:
		return "river"
	case GameStateProcessActions:
		return "process-actions"
	case GameStateShowdown:
		return "showdown"
	case GameStateShowdownRunout:
		return "showdown-runout"
	case GameStateEndHand:
		return "end-hand"
	}

	return ""
}

// MarshalJSON encodes JSON
func (g GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(g),
		Name: g.String(),
	})
}

// isHandInProgress returns true between the deal and the payout
func (g GameState) isHandInProgress() bool {
	return g != GameStateNotStarted && g != GameStateBeforeHand
}
