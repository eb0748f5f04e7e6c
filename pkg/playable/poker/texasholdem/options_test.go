package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	a := assert.New(t)

	a.NoError(DefaultOptions().Validate())

	opts := DefaultOptions()
	opts.NumSeats = 1
	a.EqualError(opts.Validate(), "number of seats must be between 2 and 10")

	opts = DefaultOptions()
	opts.NumSeats = 11
	a.EqualError(opts.Validate(), "number of seats must be between 2 and 10")

	opts = DefaultOptions()
	opts.SmallBlind = 0
	a.EqualError(opts.Validate(), "blinds must be greater than zero")

	opts = DefaultOptions()
	opts.SmallBlind = 200
	a.EqualError(opts.Validate(), "small blind cannot be greater than the big blind")

	opts = DefaultOptions()
	opts.BuyIn = -1
	a.EqualError(opts.Validate(), "buy-in cannot be negative")

	opts = DefaultOptions()
	opts.Rebuy.Amount = 0
	a.EqualError(opts.Validate(), "rebuy amount must be greater than zero")

	opts.Rebuy.Enabled = false
	a.NoError(opts.Validate())

	opts = DefaultOptions()
	opts.MaxBuyIn = 0
	a.EqualError(opts.Validate(), "max buy-in must be between 1 and 2147483647")

	opts = DefaultOptions()
	opts.BuyIn = opts.MaxBuyIn + 1
	a.EqualError(opts.Validate(), "buy-in cannot be greater than the max buy-in")

	opts = DefaultOptions()
	opts.Rebuy.Amount = opts.MaxBuyIn + 1
	a.EqualError(opts.Validate(), "rebuy amount cannot be greater than the max buy-in")

	opts = DefaultOptions()
	opts.TickInterval = 0
	a.EqualError(opts.Validate(), "tick interval must be greater than zero")
}

func TestNewTable_invalidOptions(t *testing.T) {
	opts := testOptions()
	opts.BigBlind = 0

	table, err := NewTable(nil, opts)
	assert.Nil(t, table)
	assert.EqualError(t, err, "blinds must be greater than zero")
}
