package room

import (
	"pokertable-server/pkg/playable"
)

type clientStatePlayer struct {
	Name        string `json:"name"`
	Seat        int    `json:"seat"`
	IsConnected bool   `json:"isConnected"`
	IsSeated    bool   `json:"isSeated"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
