package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pokertable-server/pkg/playable"
	"pokertable-server/pkg/playable/poker/texasholdem"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// ErrDealerStopped is returned when the dealer's run loop is not running
var ErrDealerStopped = errors.New("dealer has ended its shift")

// Dealer runs a table. It owns the only goroutine that ticks or seats players at the table.
type Dealer struct {
	table   *texasholdem.Table
	logger  logrus.FieldLogger
	clients map[*Client]bool
	lock    sync.RWMutex

	logMessages []*playable.LogMessage
	// tickErr is set when the table reported a broken invariant, the table is no longer ticked
	tickErr error

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(logger logrus.FieldLogger, table *texasholdem.Table) *Dealer {
	return &Dealer{
		table:         table,
		logger:        logger.WithField("table", table.Name()),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	ticker := time.NewTicker(d.table.Interval())
	defer ticker.Stop()

	tick := ticker.C

	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case <-tick:
			updated, err := d.table.Tick()
			if err != nil {
				d.logger.WithError(err).Error("table halted")
				d.tickErr = err
				tick = nil
				continue
			}

			if updated {
				d.sendGameData()
			}
		case msgs := <-d.table.LogChan():
			d.addLogMessages(msgs)
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendPlayerData()
				d.sendGameData()
			case stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn within the run loop and waits for it to return
func (d *Dealer) exec(ctx context.Context, fn func()) error {
	select {
	case <-d.close:
		return ErrDealerStopped
	default:
	}

	done := make(chan bool)
	select {
	case d.execInRunLoop <- func() {
		fn()
		close(done)
	}:
	case <-d.close:
		return ErrDealerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-d.close:
		return ErrDealerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the table as seen by the viewer, an empty viewer is the public view
func (d *Dealer) Snapshot(ctx context.Context, viewer string) (*texasholdem.Snapshot, error) {
	var s *texasholdem.Snapshot
	if err := d.exec(ctx, func() {
		s = d.table.Snapshot(viewer)
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// Err returns the error that halted the table, if any
func (d *Dealer) Err(ctx context.Context) error {
	var tickErr error
	if err := d.exec(ctx, func() {
		tickErr = d.tickErr
	}); err != nil {
		return err
	}

	return tickErr
}

// AddClient adds a client and seats its player, a returning player takes their seat back
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if p := d.table.PlayerByName(client.name); p != nil {
			_ = d.table.SetConnected(client.name, true)
		} else if _, err := d.table.AddPlayerAtRandomSeat(client.name); err != nil {
			d.logger.WithError(err).WithField("client", client.String()).Warn("could not seat player")
			client.trySend(newErrorResponse("", err))
		}

		if len(d.logMessages) > 0 {
			client.trySend(newLogResponse(d.logMessages))
		}

		d.stateChanged <- stateClientEvent
	}
}

// RemoveClient removes a client. The player is flagged disconnected once their last client is gone.
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	lastClient = true
	for c := range d.clients {
		if c.name == client.name {
			lastClient = false
			break
		}
	}
	d.lock.Unlock()

	if lastClient {
		d.execInRunLoop <- func() {
			if err := d.table.SetConnected(client.name, false); err != nil {
				d.logger.WithError(err).WithField("client", client.String()).Debug("could not flag player disconnected")
			}

			d.stateChanged <- stateClientEvent
		}
	}

	return lastClient
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		data, err := d.table.GetPlayerState(client.name)
		if err != nil {
			d.logger.WithError(err).Error("could not get player state")
			continue
		}

		client.trySend(data)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendPlayerData() {
	connected := make(map[string]bool)
	for _, client := range d.Clients() {
		connected[client.name] = true
	}

	players := make([]*clientStatePlayer, 0, len(connected))
	for _, pv := range d.table.Snapshot("").Players {
		players = append(players, &clientStatePlayer{
			Name:        pv.Name,
			Seat:        pv.Seat,
			IsConnected: connected[pv.Name],
			IsSeated:    true,
		})
		delete(connected, pv.Name)
	}

	for name := range connected {
		players = append(players, &clientStatePlayer{
			Name:        name,
			Seat:        -1,
			IsConnected: true,
		})
	}

	for _, client := range d.Clients() {
		client.trySend(&playable.Response{
			Key:  "clientState",
			Data: players,
		})
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "sitOut":
		sitOut, ok := msg.AdditionalData.GetBool("sitOut")
		if !ok {
			c.trySend(newErrorResponse(msg.Context, errors.New("sitOut is not boolean")))
			return
		}

		d.execInRunLoop <- func() {
			if err := d.table.SitOut(c.name, sitOut); err != nil {
				c.trySend(newErrorResponse(msg.Context, err))
				return
			}

			c.trySend(playable.OK(msg.Context))
			d.stateChanged <- stateGameEvent
		}
	case "buyIn":
		amount, ok := msg.AdditionalData.GetInt("amount")
		if !ok {
			c.trySend(newErrorResponse(msg.Context, errors.New("amount is required")))
			return
		}

		d.execInRunLoop <- func() {
			if err := d.table.BuyIn(c.name, amount); err != nil {
				c.trySend(newErrorResponse(msg.Context, err))
				return
			}

			c.trySend(playable.OK(msg.Context))
			d.stateChanged <- stateGameEvent
		}
	default:
		// decisions only touch the player's mailbox, the next tick applies them
		resp, updateState, err := d.table.Action(c.name, msg)
		if err != nil {
			d.logger.WithError(err).WithField("client", c.String()).Debug("could not perform action")
			c.trySend(newErrorResponse(msg.Context, err))
			return
		}

		if resp != nil {
			c.trySend(resp)
		}

		if updateState {
			d.stateChanged <- stateGameEvent
		}
	}
}
