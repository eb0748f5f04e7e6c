package texasholdem

// nextSeat scans the seats after start, wrapping around the table, and returns the first
// occupied seat whose player matches pred. start itself is scanned last.
func (t *Table) nextSeat(start int, pred func(p *Player) bool) (int, bool) {
	n := t.options.NumSeats
	for i := 1; i <= n; i++ {
		seat := ((start+i)%n + n) % n
		if p := t.PlayerAtSeat(seat); p != nil && pred(p) {
			return seat, true
		}
	}

	return noSeat, false
}

// firstSeatFrom is like nextSeat, but start is scanned first
func (t *Table) firstSeatFrom(start int, pred func(p *Player) bool) (int, bool) {
	return t.nextSeat(start-1, pred)
}

func isDealtIn(p *Player) bool {
	return p.state.isDealtIn()
}

// moveDealer advances the button to the next dealt-in player.
// The first hand's dealer is the first dealt-in seat scanning from seat 0.
func (t *Table) moveDealer() bool {
	var seat int
	var ok bool
	if t.dealerSeat == noSeat {
		seat, ok = t.firstSeatFrom(0, isDealtIn)
	} else {
		seat, ok = t.nextSeat(t.dealerSeat, isDealtIn)
	}

	if !ok {
		return false
	}

	t.dealerSeat = seat
	return true
}

// assignBlinds sets the blind seats for the hand. Heads-up, the dealer posts the small blind.
func (t *Table) assignBlinds() {
	t.headsUp = t.countPlayers(isDealtIn) == 2

	if t.headsUp {
		t.smallBlind = t.dealerSeat
	} else {
		t.smallBlind, _ = t.nextSeat(t.dealerSeat, isDealtIn)
	}

	t.bigBlind, _ = t.nextSeat(t.smallBlind, isDealtIn)
}

// firstToAct returns the seat that opens the betting round, or false if nobody needs to act
func (t *Table) firstToAct() (int, bool) {
	var start int
	switch {
	case t.street == GameStatePreflop && t.headsUp:
		start = t.smallBlind
	case t.street == GameStatePreflop:
		start, _ = t.nextSeat(t.bigBlind, isDealtIn)
	case t.headsUp:
		start = t.bigBlind
	default:
		start, _ = t.nextSeat(t.dealerSeat, isDealtIn)
	}

	return t.firstSeatFrom(start, t.needsToAct)
}

// nextToAct returns the next seat after the current actor that still needs to act
func (t *Table) nextToAct() (int, bool) {
	return t.nextSeat(t.actionOnSeat, t.needsToAct)
}
