package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pokertable-server/pkg/playable/poker/action"
)

// ParticipantError is an error caused by a player's input rather than the table
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// rejection reasons
var (
	errCannotCheck = ParticipantError("you cannot check with an active bet")
	errCannotCall  = ParticipantError("there is no bet to call")
	errCannotRaise = ParticipantError("you cannot raise")
)

// needsToAct returns true if the player must still respond to the latest bet on this street
func (t *Table) needsToAct(p *Player) bool {
	switch p.state {
	case PlayerStateInHand, PlayerStateChecked, PlayerStateCalled, PlayerStateBet, PlayerStateRaised:
		return p.lastBetRespondedTo != t.latestBet
	}

	return false
}

// legalActionsFor computes the descriptor for the player about to act
func (t *Table) legalActionsFor(p *Player) *LegalActions {
	return &LegalActions{
		HandNum:           t.handNum,
		ActionNum:         t.actionNum,
		CanCheck:          p.currentBet == t.latestBet,
		CanCall:           p.currentBet < t.latestBet,
		CallAmount:        min(t.latestBet, p.allInAmount()),
		CanRaise:          p.allInAmount() > t.latestBet && p.lastFullRaiseRespondedTo != t.latestFullRaise,
		BetInsteadOfRaise: t.latestBet == 0,
		MinRaise:          t.minRaise,
		AllInAmount:       p.allInAmount(),
	}
}

// resetStreet clears the round-level aggregates before a postflop street
func (t *Table) resetStreet() {
	t.latestBet = 0
	t.latestFullRaise = 0
	t.minRaise = t.options.BigBlind

	for _, p := range t.seatOrder() {
		p.resetForStreet()
	}
}

// postBlinds charges the blinds, a blind larger than the stack puts the player all-in
func (t *Table) postBlinds() {
	sb := t.PlayerAtSeat(t.smallBlind)
	bb := t.PlayerAtSeat(t.bigBlind)

	sbCharged := min(t.options.SmallBlind, sb.stack)
	bbCharged := min(t.options.BigBlind, bb.stack)

	// stack was checked, bet cannot fail
	_ = sb.bet(sbCharged)
	_ = bb.bet(bbCharged)

	for _, p := range []*Player{sb, bb} {
		if p.stack == 0 {
			p.state = PlayerStateAllIn
		}

		p.lastFullRaiseRespondedTo = 0
	}

	// the small blind has answered its own blind, the big blind still has an option
	sb.lastBetRespondedTo = sbCharged

	t.latestBet = max(sbCharged, bbCharged)
	t.latestFullRaise = t.options.BigBlind
	t.minRaise = 2 * t.options.BigBlind

	t.logger.WithFields(logrus.Fields{
		"smallBlindSeat": t.smallBlind,
		"smallBlind":     sbCharged,
		"bigBlindSeat":   t.bigBlind,
		"bigBlind":       bbCharged,
	}).Debug("blinds posted")
}

// applyDecision validates a decision against the descriptor and applies it.
// A ParticipantError means the decision was rejected and nothing changed.
func (t *Table) applyDecision(p *Player, legal *LegalActions, d *Decision) error {
	switch d.Action {
	case action.Fold:
		p.state = PlayerStateFolded
	case action.Check:
		if !legal.CanCheck {
			return errCannotCheck
		}

		p.state = PlayerStateChecked
		p.lastBetRespondedTo = t.latestBet
	case action.Call:
		if !legal.CanCall {
			return errCannotCall
		}

		if err := p.bet(legal.CallAmount); err != nil {
			return err
		}

		p.lastFullRaiseRespondedTo = t.latestFullRaise
		p.lastBetRespondedTo = t.latestBet
		if p.stack == 0 {
			p.state = PlayerStateAllIn
		} else {
			p.state = PlayerStateCalled
		}
	case action.Bet:
		return t.applyBet(p, legal, d.Amount)
	default:
		return newParticipantError("unknown action: %s", d.Action)
	}

	return nil
}

// applyBet handles a bet or a raise to a new total of amount
func (t *Table) applyBet(p *Player, legal *LegalActions, amount int) error {
	if !legal.CanRaise {
		return errCannotRaise
	}

	if amount <= t.latestBet {
		return newParticipantError("your bet of ${%d} must be greater than ${%d}", amount, t.latestBet)
	}

	if amount > p.allInAmount() {
		return newParticipantError("your bet of ${%d} exceeds your stack", amount)
	}

	isAllIn := amount == p.allInAmount()
	isFullRaise := amount >= t.minRaise
	if !isAllIn && !isFullRaise {
		return newParticipantError("your bet must be at least ${%d}", t.minRaise)
	}

	if err := p.bet(amount); err != nil {
		return err
	}

	if isFullRaise {
		t.minRaise = amount + (amount - t.latestFullRaise)
		t.latestFullRaise = amount
	}

	// a short all-in doesn't reopen the betting for players who answered the last full raise
	t.latestBet = amount
	p.lastFullRaiseRespondedTo = t.latestFullRaise
	p.lastBetRespondedTo = amount

	switch {
	case isAllIn:
		p.state = PlayerStateAllIn
	case legal.BetInsteadOfRaise:
		p.state = PlayerStateBet
	default:
		p.state = PlayerStateRaised
	}

	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
