package texasholdem

import "encoding/json"

// PlayerState is a player's standing at the table and in the current hand
type PlayerState int

// constants for PlayerState
const (
	PlayerStateNotSeated PlayerState = iota
	PlayerStateSittingOut
	PlayerStateNotInHand
	PlayerStateInHand
	PlayerStateFolded
	PlayerStateChecked
	PlayerStateCalled
	PlayerStateBet
	PlayerStateRaised
	PlayerStateAllIn
)

func (p PlayerState) String() string {
	switch p {
	case PlayerStateNotSeated:
		return "not-seated"
	case PlayerStateSittingOut:
		return "sitting-out"
	case PlayerStateNotInHand:
		return "not-in-hand"
	case PlayerStateInHand:
		return "in-hand"
	case PlayerStateFolded:
		return "folded"
	case PlayerStateChecked:
		return "checked"
	case PlayerStateCalled:
		return "called"
	case PlayerStateBet:
		return "bet"
	case PlayerStateRaised:
		return "raised"
	case PlayerStateAllIn:
		return "all-in"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p PlayerState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// isDealtIn returns true if the player was dealt into the current hand, folded or not
func (p PlayerState) isDealtIn() bool {
	return p >= PlayerStateInHand
}

// isPotEligible returns true if the player can still win chips
func (p PlayerState) isPotEligible() bool {
	return p.isDealtIn() && p != PlayerStateFolded
}

// canAct returns true if the player can still make decisions this hand
func (p PlayerState) canAct() bool {
	return p.isPotEligible() && p != PlayerStateAllIn
}
