package room

import (
	"pokertable-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages and sends them to every client
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m

	for _, client := range d.Clients() {
		client.trySend(newLogResponse(messages))
	}
}

func newLogResponse(messages []*playable.LogMessage) *playable.Response {
	return &playable.Response{
		Key:  "log",
		Data: messages,
	}
}
