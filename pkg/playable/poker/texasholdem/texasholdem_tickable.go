package texasholdem

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/playable"
	"pokertable-server/pkg/playable/poker/handanalyzer"
	"pokertable-server/pkg/playable/poker/potmanager"
)

// Interval returns how often Tick() should be called
func (t *Table) Interval() time.Duration {
	return t.options.TickInterval
}

// Tick advances the state machine by one step.
// It returns true if the table changed. An error means the table is in an inconsistent
// state and must not be ticked again.
func (t *Table) Tick() (bool, error) {
	updated, err := t.step()
	if err == nil {
		err = t.checkConservation()
	}

	if err != nil {
		t.logger.WithError(err).WithFields(logrus.Fields{
			"gameState": t.gameState.String(),
			"handNum":   t.handNum,
		}).Error("table invariant violated")
		return false, err
	}

	return updated, nil
}

func (t *Table) step() (bool, error) {
	switch t.gameState {
	case GameStateNotStarted:
		for _, p := range t.seatOrder() {
			if p.state == PlayerStateNotInHand && !p.wantsToSitOut {
				p.state = PlayerStateInHand
			}
		}

		t.gameState = GameStateBeforeHand
		return true, nil
	case GameStateBeforeHand:
		return t.startHand()
	case GameStatePreflop, GameStateFlop, GameStateTurn, GameStateRiver:
		return true, t.beginStreet()
	case GameStateProcessActions:
		return t.processActions()
	case GameStateShowdown:
		t.showdown()
		return true, nil
	case GameStateShowdownRunout:
		return true, t.runout()
	case GameStateEndHand:
		return true, t.endHand()
	}

	return false, fmt.Errorf("unknown game state: %d", t.gameState)
}

// checkConservation ensures no chips were created or lost during the hand
func (t *Table) checkConservation() error {
	if !t.gameState.isHandInProgress() {
		return nil
	}

	if chips := t.chipsInHand(); chips != t.handChips {
		return fmt.Errorf("chip conservation violated: %d chips in the hand, expected %d", chips, t.handChips)
	}

	return nil
}

// startHand prepares the players and deals a new hand if enough players are ready
func (t *Table) startHand() (bool, error) {
	changed := false
	for _, p := range t.seatOrder() {
		if !p.isConnected {
			t.removePlayer(p)
			t.logger.WithField("player", p.name).Info("removed disconnected player")
			t.sendLog(playable.SimpleLogMessageSlice(p.seat, "{} left the table"))
			changed = true
			continue
		}

		prevState := p.state
		p.resetForHand()

		switch {
		case p.wantsToSitOut:
			p.state = PlayerStateSittingOut
		case p.stack == 0 && t.options.Rebuy.Enabled:
			// amount was validated with the options
			_ = p.BuyIn(t.options.Rebuy.Amount)
			p.state = PlayerStateInHand

			t.logger.WithFields(logrus.Fields{
				"player": p.name,
				"amount": t.options.Rebuy.Amount,
			}).Info("player rebought")
			t.sendLog(playable.SimpleLogMessageSlice(p.seat, "{} rebought for ${%d}", t.options.Rebuy.Amount))
			changed = true
		case p.stack == 0:
			p.state = PlayerStateSittingOut
		default:
			p.state = PlayerStateInHand
		}

		if p.state != prevState {
			changed = true
		}
	}

	if t.countPlayers(isDealtIn) < MinSeats {
		return changed, nil
	}

	t.deck = deck.New()
	t.deck.Shuffle(t.gen)
	t.community = make(deck.Hand, 0, 5)
	t.potManager = potmanager.New()

	if !t.moveDealer() {
		return false, ErrNotEnoughPlayers
	}

	t.assignBlinds()
	t.postBlinds()
	t.handChips = t.chipsInHand()

	if err := t.dealHoleCards(); err != nil {
		return false, err
	}

	t.gameState = GameStatePreflop

	t.logger.WithFields(logrus.Fields{
		"handNum":    t.handNum,
		"dealerSeat": t.dealerSeat,
		"smallBlind": t.options.SmallBlind,
		"bigBlind":   t.options.BigBlind,
		"players":    t.countPlayers(isDealtIn),
	}).Info("hand started")
	t.sendLog(playable.SimpleLogMessageSlice(t.dealerSeat, "Hand #%d started, {} has the button", t.handNum))

	return true, nil
}

// dealHoleCards deals two rounds of one card, starting left of the dealer
func (t *Table) dealHoleCards() error {
	start, ok := t.nextSeat(t.dealerSeat, isDealtIn)
	if !ok {
		return ErrNotEnoughPlayers
	}

	if players := t.countPlayers(isDealtIn); !t.deck.CanDraw(2 * players) {
		return fmt.Errorf("could not deal hole cards to %d players with %d left: %w", players, t.deck.CardsLeft(), deck.ErrEndOfDeck)
	}

	for round := 0; round < 2; round++ {
		seat := start
		for {
			card, err := t.deck.Draw()
			if err != nil {
				return fmt.Errorf("could not deal hole cards: %w", err)
			}

			card.FaceUp = false
			p := t.PlayerAtSeat(seat)
			p.holeCards.AddCard(card)

			seat, _ = t.nextSeat(seat, isDealtIn)
			if seat == start {
				break
			}
		}
	}

	return nil
}

func (t *Table) dealCommunity(n int) error {
	if !t.deck.CanDraw(n) {
		return fmt.Errorf("could not deal %d community cards with %d left: %w", n, t.deck.CardsLeft(), deck.ErrEndOfDeck)
	}

	for i := 0; i < n; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return fmt.Errorf("could not deal community card: %w", err)
		}

		if t.community.HasCard(card) {
			return fmt.Errorf("%s is already on the board", card)
		}

		card.FaceUp = true
		t.community.AddCard(card)
	}

	return nil
}

// beginStreet deals the street's community cards and opens its betting round
func (t *Table) beginStreet() error {
	street := t.gameState

	var cards int
	switch street {
	case GameStatePreflop:
		t.nextState = GameStateFlop
	case GameStateFlop:
		cards = 3
		t.nextState = GameStateTurn
	case GameStateTurn:
		cards = 1
		t.nextState = GameStateRiver
	case GameStateRiver:
		cards = 1
		t.nextState = GameStateShowdown
	}

	// the blinds already set up the preflop round
	if street != GameStatePreflop {
		t.resetStreet()
	}

	if err := t.dealCommunity(cards); err != nil {
		return err
	}

	if cards > 0 {
		t.sendLog(playable.SimpleLogMessageSlice(-1, "%s: %s", street, deck.CardsToString(t.community)))
	}

	t.street = street
	t.gameState = GameStateProcessActions

	// an all-in blind can leave a single player with nothing to decide
	if seat, ok := t.firstToAct(); ok && !t.nothingToDecide() {
		t.setActionOn(seat)
	} else {
		t.closeRound()
	}

	return nil
}

// nothingToDecide returns true if at most one player can act and they have already matched the bet
func (t *Table) nothingToDecide() bool {
	var actors []*Player
	for _, p := range t.seatOrder() {
		if p.state.canAct() {
			actors = append(actors, p)
		}
	}

	return len(actors) == 0 || len(actors) == 1 && actors[0].currentBet >= t.latestBet
}

// setActionOn opens a new decision point for the seat
func (t *Table) setActionOn(seat int) {
	t.actionNum++
	t.actionOnSeat = seat

	p := t.PlayerAtSeat(seat)
	p.pendingAction.offer(t.legalActionsFor(p))
}

// processActions applies the pending decision of the player on action, if there is one
func (t *Table) processActions() (bool, error) {
	p := t.PlayerAtSeat(t.actionOnSeat)
	if p == nil {
		return false, fmt.Errorf("no player at the action-on seat %d", t.actionOnSeat)
	}

	d := p.pendingAction.take()
	if d == nil {
		return false, nil
	}

	legal := p.pendingAction.legalActions()
	logger := t.logger.WithFields(logrus.Fields{
		"player":    p.name,
		"action":    d.Action,
		"amount":    d.Amount,
		"handNum":   d.HandNum,
		"actionNum": d.ActionNum,
	})

	if err := t.applyDecision(p, legal, d); err != nil {
		var perr ParticipantError
		if errors.As(err, &perr) {
			logger.WithField("reason", err.Error()).Debug("action rejected")
			return false, nil
		}

		return false, err
	}

	logger.Debug("action applied")
	t.sendLog(playable.SimpleLogMessageSlice(p.seat, "{} %s", t.describeAction(p, d)))

	p.pendingAction.withdraw()
	t.advanceAction()
	return true, nil
}

func (t *Table) describeAction(p *Player, d *Decision) string {
	switch {
	case p.state == PlayerStateAllIn:
		return fmt.Sprintf("is all-in for ${%d}", p.currentBet)
	case p.state == PlayerStateRaised:
		return fmt.Sprintf("raised to ${%d}", p.currentBet)
	default:
		return d.Action.LogMessage(p.currentBet)
	}
}

// advanceAction moves to the next player who needs to act, or closes the round
func (t *Table) advanceAction() {
	if t.countPlayers(isPotEligible) > 1 {
		if seat, ok := t.nextToAct(); ok {
			t.setActionOn(seat)
			return
		}
	}

	t.closeRound()
}

// closeRound settles the street's bets into the pots and picks the next state
func (t *Table) closeRound() {
	for _, p := range t.seatOrder() {
		p.pendingAction.withdraw()
	}

	t.actionOnSeat = noSeat
	t.potManager.Settle(t.participants())

	t.logger.WithFields(logrus.Fields{
		"handNum":  t.handNum,
		"street":   t.street.String(),
		"mainPot":  t.potManager.MainPot().Amount,
		"sidePots": len(t.potManager.SidePots()),
	}).Debug("betting round settled")

	t.applyShowdownGuard(t.nextState)
}

// applyShowdownGuard skips the remaining betting when it can't matter
func (t *Table) applyShowdownGuard(next GameState) {
	eligible := t.countPlayers(isPotEligible)
	allIn := t.countPlayers(func(p *Player) bool {
		return p.state == PlayerStateAllIn
	})

	switch {
	case eligible == 1:
		t.gameState = GameStateEndHand
	case eligible > 1 && allIn >= eligible-1:
		t.gameState = GameStateShowdown
	default:
		t.gameState = next
	}
}

func (t *Table) showdown() {
	for _, p := range t.seatOrder() {
		if p.IsPotEligible() {
			p.holeCards.SetFaceUp(true)
		}
	}

	t.gameState = GameStateShowdownRunout
}

// runout deals the rest of the board one card per tick
func (t *Table) runout() error {
	if len(t.community) < 5 {
		if err := t.dealCommunity(1); err != nil {
			return err
		}
	}

	if len(t.community) >= 5 {
		t.gameState = GameStateEndHand
	}

	return nil
}

// endHand pays the pots and resets the table for the next hand
func (t *Table) endHand() error {
	order := t.payoutOrder()
	payouts, err := t.potManager.Payout(order, t.rankParticipant)
	if err != nil {
		return err
	}

	if chips := t.chipsInHand(); chips != t.handChips {
		return fmt.Errorf("chip conservation violated at payout: %d chips, expected %d", chips, t.handChips)
	}

	contested := t.countPlayers(isPotEligible) > 1
	results := make([]*HandResult, 0, len(payouts))
	logs := make([]*playable.LogMessage, 0, len(payouts))
	for _, pt := range order {
		p := pt.(*Player)
		won, ok := payouts[pt]
		if !ok {
			continue
		}

		result := &HandResult{
			Name:     p.name,
			Seat:     p.seat,
			Winnings: won,
		}

		if contested {
			result.Cards = p.holeCards.Clone()
			result.Hand = t.describeHand(p)
			logs = append(logs, playable.SimpleLogMessage(p.seat, "{} won ${%d} with %s", won, result.Hand))
		} else {
			logs = append(logs, playable.SimpleLogMessage(p.seat, "{} won ${%d}", won))
		}

		t.logger.WithFields(logrus.Fields{
			"handNum":  t.handNum,
			"player":   p.name,
			"winnings": won,
			"hand":     result.Hand,
		}).Info("pot awarded")

		results = append(results, result)
	}

	t.lastResults = results
	t.sendLog(logs)

	for _, p := range t.seatOrder() {
		p.resetForHand()
		if p.state.isDealtIn() {
			p.state = PlayerStateInHand
		}
	}

	t.deck = nil
	t.community = make(deck.Hand, 0, 5)
	t.potManager = potmanager.New()
	t.latestBet = 0
	t.latestFullRaise = 0
	t.minRaise = 0
	t.handNum++
	t.actionNum = 0
	t.gameState = GameStateBeforeHand

	return nil
}

// payoutOrder lists the dealt-in players clockwise, starting left of the dealer
func (t *Table) payoutOrder() []potmanager.Participant {
	order := make([]potmanager.Participant, 0, t.options.NumSeats)
	for i := 1; i <= t.options.NumSeats; i++ {
		seat := (t.dealerSeat + i) % t.options.NumSeats
		if p := t.PlayerAtSeat(seat); p != nil && p.state.isDealtIn() {
			order = append(order, p)
		}
	}

	return order
}

func (t *Table) participants() []potmanager.Participant {
	players := t.seatOrder()
	pts := make([]potmanager.Participant, len(players))
	for i, p := range players {
		pts[i] = p
	}

	return pts
}

func (t *Table) handAnalyzer(p *Player) (*handanalyzer.HandAnalyzer, error) {
	cards := make([]*deck.Card, 0, len(p.holeCards)+len(t.community))
	cards = append(cards, p.holeCards...)
	cards = append(cards, t.community...)

	return handanalyzer.New(cards)
}

func (t *Table) rankParticipant(pt potmanager.Participant) (int, error) {
	ha, err := t.handAnalyzer(pt.(*Player))
	if err != nil {
		return 0, err
	}

	return ha.GetStrength(), nil
}

// describeHand returns the player's best hand, or an empty string before five cards are available
func (t *Table) describeHand(p *Player) string {
	ha, err := t.handAnalyzer(p)
	if err != nil {
		return ""
	}

	return ha.Description()
}

func isPotEligible(p *Player) bool {
	return p.IsPotEligible()
}
