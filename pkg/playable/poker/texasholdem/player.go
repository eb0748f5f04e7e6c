package texasholdem

import (
	"errors"
	"fmt"

	"pokertable-server/pkg/deck"
)

// noResponse marks a raise-tracking field that hasn't responded to anything this street
const noResponse = -1

// Player is a seated player at the table
type Player struct {
	name        string
	seat        int
	stack       int
	buyInAmount int
	currentBet  int
	state       PlayerState
	holeCards   deck.Hand

	lastFullRaiseRespondedTo int
	lastBetRespondedTo       int

	isConnected   bool
	wantsToSitOut bool
	pendingAction *mailbox
}

func newPlayer(name string, seat int, stack int) *Player {
	return &Player{
		name:                     name,
		seat:                     seat,
		stack:                    stack,
		buyInAmount:              stack,
		state:                    PlayerStateNotInHand,
		holeCards:                make(deck.Hand, 0, 2),
		lastFullRaiseRespondedTo: noResponse,
		lastBetRespondedTo:       noResponse,
		isConnected:              true,
		pendingAction:            &mailbox{},
	}
}

// Name returns the player's unique name
func (p *Player) Name() string {
	return p.name
}

// Stack returns the chips the player has behind
func (p *Player) Stack() int {
	return p.stack
}

// State returns the player's state
func (p *Player) State() PlayerState {
	return p.state
}

// HoleCards returns the player's hole cards
func (p *Player) HoleCards() deck.Hand {
	return p.holeCards
}

// IsConnected returns true if the player has a live connection
func (p *Player) IsConnected() bool {
	return p.isConnected
}

// BuyInAmount returns the total chips the player has bought in for
func (p *Player) BuyInAmount() int {
	return p.buyInAmount
}

// Profit returns how much the player is up (or down when negative)
func (p *Player) Profit() int {
	return p.stack - p.buyInAmount
}

// BuyIn sets the player's stack, adding the difference to the buy-in amount
func (p *Player) BuyIn(newStack int) error {
	if newStack < 0 {
		return errors.New("stack cannot be negative")
	}

	if newStack > MaxStack {
		return fmt.Errorf("stack cannot be greater than %d", MaxStack)
	}

	p.buyInAmount += newStack - p.stack
	p.stack = newStack
	return nil
}

// bet raises the player's current bet to newBet, moving the difference from the stack
func (p *Player) bet(newBet int) error {
	if newBet < p.currentBet {
		return newParticipantError("bet of ${%d} is less than the ${%d} already in", newBet, p.currentBet)
	}

	added := newBet - p.currentBet
	if added > p.stack {
		return newParticipantError("bet of ${%d} exceeds your stack", newBet)
	}

	p.stack -= added
	p.currentBet = newBet
	return nil
}

// allInAmount is the largest total bet the player can make this street
func (p *Player) allInAmount() int {
	return p.stack + p.currentBet
}

// resetForStreet clears the raise tracking at the start of a new street
func (p *Player) resetForStreet() {
	p.lastFullRaiseRespondedTo = noResponse
	p.lastBetRespondedTo = noResponse

	switch p.state {
	case PlayerStateChecked, PlayerStateCalled, PlayerStateBet, PlayerStateRaised:
		p.state = PlayerStateInHand
	}
}

// resetForHand clears every per-hand field
func (p *Player) resetForHand() {
	p.currentBet = 0
	p.holeCards = make(deck.Hand, 0, 2)
	p.lastFullRaiseRespondedTo = noResponse
	p.lastBetRespondedTo = noResponse
	p.pendingAction.withdraw()
}

// potmanager.Participant interface

// Seat returns the seat index
func (p *Player) Seat() int {
	return p.seat
}

// CurrentBet returns the chips committed on the current street
func (p *Player) CurrentBet() int {
	return p.currentBet
}

// SetCurrentBet is used when the bets are moved into the pots
func (p *Player) SetCurrentBet(amount int) {
	p.currentBet = amount
}

// AdjustStack adds winnings to the stack
func (p *Player) AdjustStack(amount int) {
	p.stack += amount
}

// IsPotEligible returns true if the player hasn't folded this hand
func (p *Player) IsPotEligible() bool {
	return p.state.isPotEligible()
}

// IsAllIn returns true if the player is all-in
func (p *Player) IsAllIn() bool {
	return p.state == PlayerStateAllIn
}
