package texasholdem

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pokertable-server/internal/rng"
)

// seat limits for a table
const (
	MinSeats = 2
	MaxSeats = 10
)

// MaxStack is the largest stack a player can hold, so chip totals of a full table fit in an int
const MaxStack = math.MaxInt32

// RebuyPolicy decides what happens to a player with no chips when a hand is about to start
type RebuyPolicy struct {
	// Enabled tops the player back up to Amount, otherwise the player sits out
	Enabled bool
	Amount  int
}

// Options configures a table of No-Limit Texas Hold'em
type Options struct {
	Name         string
	NumSeats     int
	SmallBlind   int
	BigBlind     int
	BuyIn        int
	MaxBuyIn     int
	Rebuy        RebuyPolicy
	TickInterval time.Duration

	// Generator shuffles the deck, a crypto/rand backed generator is used when nil
	Generator rng.Generator
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		Name:       "Texas Hold'em",
		NumSeats:   MaxSeats,
		SmallBlind: 50,
		BigBlind:   100,
		BuyIn:      10000,
		MaxBuyIn:   1000000,
		Rebuy: RebuyPolicy{
			Enabled: true,
			Amount:  10000,
		},
		TickInterval: 1500 * time.Millisecond,
	}
}

// Validate returns an error if the options cannot run a table
func (o Options) Validate() error {
	if o.NumSeats < MinSeats || o.NumSeats > MaxSeats {
		return fmt.Errorf("number of seats must be between %d and %d", MinSeats, MaxSeats)
	}

	if o.SmallBlind <= 0 || o.BigBlind <= 0 {
		return errors.New("blinds must be greater than zero")
	}

	if o.SmallBlind > o.BigBlind {
		return errors.New("small blind cannot be greater than the big blind")
	}

	if o.BuyIn < 0 {
		return errors.New("buy-in cannot be negative")
	}

	if o.MaxBuyIn <= 0 || o.MaxBuyIn > MaxStack {
		return fmt.Errorf("max buy-in must be between 1 and %d", MaxStack)
	}

	if o.BuyIn > o.MaxBuyIn {
		return errors.New("buy-in cannot be greater than the max buy-in")
	}

	if o.Rebuy.Enabled && o.Rebuy.Amount <= 0 {
		return errors.New("rebuy amount must be greater than zero")
	}

	if o.Rebuy.Amount > o.MaxBuyIn {
		return errors.New("rebuy amount cannot be greater than the max buy-in")
	}

	if o.TickInterval <= 0 {
		return errors.New("tick interval must be greater than zero")
	}

	return nil
}
