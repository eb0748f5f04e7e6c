package room

import (
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pokertable-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Send is a channel of messages for the client
	Send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
	name   string
}

// NewClient returns a new client object for the named player
func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{
		Conn:  conn,
		Send:  make(chan interface{}, 256),
		Close: make(chan string),
		name:  name,
	}
}

// Name returns the player's name
func (c *Client) Name() string {
	return c.name
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return c.name
}

// trySend queues a message without blocking, a full queue drops the message
func (c *Client) trySend(msg interface{}) bool {
	select {
	case c.Send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send queue is full, dropping message")
		return false
	}
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
