package texasholdem

import (
	"errors"

	"pokertable-server/pkg/playable"
	"pokertable-server/pkg/playable/poker/action"
)

var _ playable.Playable = (*Table)(nil)
var _ playable.Tickable = (*Table)(nil)

// Action submits a player's decision from a client payload.
// The table is not updated until the next tick applies the decision.
func (t *Table) Action(playerName string, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	a, err := action.FromString(message.Action)
	if err != nil {
		return nil, false, err
	}

	handNum, ok := message.AdditionalData.GetInt("handNum")
	if !ok {
		return nil, false, errors.New("handNum is required")
	}

	actionNum, ok := message.AdditionalData.GetInt("actionNum")
	if !ok {
		return nil, false, errors.New("actionNum is required")
	}

	amount, ok := message.AdditionalData.GetInt("amount")
	if _, hasAmount := message.AdditionalData["amount"]; hasAmount && !ok {
		return nil, false, errors.New("amount must be a whole number")
	}

	if err := t.SubmitAction(playerName, Decision{
		HandNum:   handNum,
		ActionNum: actionNum,
		Action:    a,
		Amount:    amount,
	}); err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), false, nil
}

// GetPlayerState returns the table as seen by the player
func (t *Table) GetPlayerState(playerName string) (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: t.Key(),
		Data:  t.Snapshot(playerName),
	}, nil
}

// Name returns the table name
func (t *Table) Name() string {
	return t.options.Name
}

// LogChan returns a channel log messages are sent on
func (t *Table) LogChan() <-chan []*playable.LogMessage {
	return t.logChan
}

// Key returns the key
func (t *Table) Key() string {
	return "texas-hold-em"
}
