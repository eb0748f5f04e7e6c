package texasholdem

import (
	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/playable"
)

// HandResult is what a player won at the end of a hand
type HandResult struct {
	Name     string    `json:"name"`
	Seat     int       `json:"seat"`
	Winnings int       `json:"winnings"`
	Hand     string    `json:"hand,omitempty"`
	Cards    deck.Hand `json:"cards,omitempty"`
}

// sendLog emits log messages without ever blocking the control loop
func (t *Table) sendLog(msgs []*playable.LogMessage) {
	select {
	case t.logChan <- msgs:
	default:
		t.logger.Warn("log channel is full, dropping message")
	}
}
