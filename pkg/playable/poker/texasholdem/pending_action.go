package texasholdem

import (
	"errors"
	"sync"

	"pokertable-server/pkg/playable/poker/action"
)

// ErrStaleAction is returned when a decision's stamps don't match the decision the player was offered
var ErrStaleAction = errors.New("action is stale or it is not your turn")

// LegalActions describes what the player on action may do.
// HandNum and ActionNum stamp the decision point the descriptor was issued for.
type LegalActions struct {
	HandNum           int  `json:"handNum"`
	ActionNum         int  `json:"actionNum"`
	CanCheck          bool `json:"canCheck"`
	CanCall           bool `json:"canCall"`
	CallAmount        int  `json:"callAmount"`
	CanRaise          bool `json:"canRaise"`
	BetInsteadOfRaise bool `json:"betInsteadOfRaise"`
	MinRaise          int  `json:"minRaise"`
	AllInAmount       int  `json:"allInAmount"`
}

// Decision is an inbound action, stamped with the decision point it responds to
type Decision struct {
	HandNum   int
	ActionNum int
	Action    action.Action
	// Amount is the new total bet for a bet or raise
	Amount int
}

func (d Decision) matches(l *LegalActions) bool {
	return l != nil && d.HandNum == l.HandNum && d.ActionNum == l.ActionNum
}

// mailbox is a player's single pending action slot.
// Connection goroutines write decisions into it, the tick is the only reader.
type mailbox struct {
	mu       sync.Mutex
	legal    *LegalActions
	decision *Decision
}

// offer publishes a new decision point and drops any earlier decision
func (m *mailbox) offer(legal *LegalActions) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.legal = legal
	m.decision = nil
}

// withdraw closes the decision point
func (m *mailbox) withdraw() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.legal = nil
	m.decision = nil
}

// submit stores the decision if its stamps match the open decision point.
// A later decision for the same point replaces an earlier one that hasn't been taken.
func (m *mailbox) submit(d Decision) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !d.matches(m.legal) {
		return ErrStaleAction
	}

	m.decision = &d
	return nil
}

// take clears and returns the pending decision, if it still matches the open decision point.
// The legal-action descriptor stays in place so a rejected decision can be retried.
func (m *mailbox) take() *Decision {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.decision
	m.decision = nil
	if d == nil || !d.matches(m.legal) {
		return nil
	}

	return d
}

// legalActions returns a copy of the open descriptor, or nil
func (m *mailbox) legalActions() *LegalActions {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.legal == nil {
		return nil
	}

	l := *m.legal
	return &l
}
