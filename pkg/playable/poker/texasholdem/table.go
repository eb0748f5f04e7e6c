package texasholdem

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"pokertable-server/internal/rng"
	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/playable"
	"pokertable-server/pkg/playable/poker/potmanager"
)

// noSeat is used for a nullable seat (dealer, action-on) that is unset
const noSeat = -1

// seating errors
var (
	ErrSeatTaken        = errors.New("seat is taken")
	ErrNameTaken        = errors.New("name is taken")
	ErrInvalidSeat      = errors.New("seat does not exist")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNoOpenSeats      = errors.New("there are no open seats")
	ErrNotEnoughPlayers = errors.New("at least two players are needed to deal a hand")
)

// Table is a single table of No-Limit Texas Hold'em.
// A Table is driven by one control loop: Tick and the seating methods must be called from it.
// SubmitAction is the only method safe to call from other goroutines.
type Table struct {
	options Options
	logger  logrus.FieldLogger
	gen     rng.Generator

	// playersMu guards membership for SubmitAction, the control loop is the only writer
	playersMu sync.RWMutex
	players   map[int]*Player

	gameState GameState
	// street is the betting round in progress, or the last one played
	street GameState
	// nextState is where PROCESS_ACTIONS resumes once the betting round closes
	nextState GameState

	handNum   int
	actionNum int

	dealerSeat   int
	actionOnSeat int
	smallBlind   int
	bigBlind     int
	headsUp      bool

	latestBet       int
	latestFullRaise int
	minRaise        int

	deck       *deck.Deck
	community  deck.Hand
	potManager *potmanager.PotManager

	// handChips is the chips held by the dealt-in players at the start of the hand
	handChips   int
	lastResults []*HandResult

	logChan chan []*playable.LogMessage
}

// NewTable returns a new, empty table
func NewTable(logger logrus.FieldLogger, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	gen := opts.Generator
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Table{
		options:      opts,
		logger:       logger.WithField("table", opts.Name),
		gen:          gen,
		players:      make(map[int]*Player),
		gameState:    GameStateNotStarted,
		handNum:      1,
		dealerSeat:   noSeat,
		actionOnSeat: noSeat,
		smallBlind:   noSeat,
		bigBlind:     noSeat,
		community:    make(deck.Hand, 0, 5),
		potManager:   potmanager.New(),
		logChan:      make(chan []*playable.LogMessage, 256),
	}, nil
}

// AddPlayer seats a new player with the table's buy-in.
// A player seated during a hand sits out until the next hand is dealt.
func (t *Table) AddPlayer(name string, seat int) (*Player, error) {
	if seat < 0 || seat >= t.options.NumSeats {
		return nil, ErrInvalidSeat
	}

	t.playersMu.Lock()
	defer t.playersMu.Unlock()

	if _, ok := t.players[seat]; ok {
		return nil, ErrSeatTaken
	}

	for _, p := range t.players {
		if p.name == name {
			return nil, ErrNameTaken
		}
	}

	p := newPlayer(name, seat, t.options.BuyIn)
	t.players[seat] = p

	t.logger.WithFields(logrus.Fields{
		"player": name,
		"seat":   seat,
	}).Info("player seated")
	t.sendLog(playable.SimpleLogMessageSlice(seat, "{} sat down with ${%d}", p.stack))

	return p, nil
}

// AddPlayerAtRandomSeat seats the player at a random open seat
func (t *Table) AddPlayerAtRandomSeat(name string) (*Player, error) {
	open := t.OpenSeats()
	if len(open) == 0 {
		return nil, ErrNoOpenSeats
	}

	return t.AddPlayer(name, open[t.gen.Intn(len(open))])
}

// OpenSeats returns the empty seats in ascending order
func (t *Table) OpenSeats() []int {
	t.playersMu.RLock()
	defer t.playersMu.RUnlock()

	open := make([]int, 0, t.options.NumSeats)
	for seat := 0; seat < t.options.NumSeats; seat++ {
		if _, ok := t.players[seat]; !ok {
			open = append(open, seat)
		}
	}

	return open
}

// PlayerAtSeat returns the player at the seat, or nil
func (t *Table) PlayerAtSeat(seat int) *Player {
	t.playersMu.RLock()
	defer t.playersMu.RUnlock()

	return t.players[seat]
}

// PlayerByName returns the player with the name, or nil
func (t *Table) PlayerByName(name string) *Player {
	t.playersMu.RLock()
	defer t.playersMu.RUnlock()

	return t.playerByNameLocked(name)
}

func (t *Table) playerByNameLocked(name string) *Player {
	for _, p := range t.players {
		if p.name == name {
			return p
		}
	}

	return nil
}

// SetConnected flags the player's connection.
// Disconnected players are removed before the next hand is dealt, never during one.
func (t *Table) SetConnected(name string, connected bool) error {
	p := t.PlayerByName(name)
	if p == nil {
		return ErrPlayerNotFound
	}

	p.isConnected = connected
	return nil
}

// SitOut flags the player to sit out (or come back) starting with the next hand
func (t *Table) SitOut(name string, sitOut bool) error {
	p := t.PlayerByName(name)
	if p == nil {
		return ErrPlayerNotFound
	}

	p.wantsToSitOut = sitOut
	return nil
}

// SubmitAction places a decision in the player's pending action slot.
// The decision is applied on the next tick, if it is still current and legal.
func (t *Table) SubmitAction(name string, d Decision) error {
	t.playersMu.RLock()
	p := t.playerByNameLocked(name)
	t.playersMu.RUnlock()

	if p == nil {
		return ErrPlayerNotFound
	}

	if !d.Action.IsValid() {
		return fmt.Errorf("unknown action: %q", string(d.Action))
	}

	d.Action = d.Action.Normalize()
	return p.pendingAction.submit(d)
}

// GameState returns the current state of the state machine
func (t *Table) GameState() GameState {
	return t.gameState
}

// HandNum returns the current hand number, starting at 1
func (t *Table) HandNum() int {
	return t.handNum
}

// ActionNum returns the current decision point within the hand
func (t *Table) ActionNum() int {
	return t.actionNum
}

// DealerSeat returns the dealer's seat, if a hand has been dealt
func (t *Table) DealerSeat() (int, bool) {
	return t.dealerSeat, t.dealerSeat != noSeat
}

// ActionOnSeat returns the seat the table is waiting on, if a betting round is open
func (t *Table) ActionOnSeat() (int, bool) {
	return t.actionOnSeat, t.actionOnSeat != noSeat
}

// Community returns the community cards
func (t *Table) Community() deck.Hand {
	return t.community
}

// Pots returns the side pots followed by the main pot
func (t *Table) Pots() potmanager.Pots {
	return t.potManager.Pots()
}

// ChipsInPlay returns every chip at the table: stacks, current bets, and pots
func (t *Table) ChipsInPlay() int {
	total := t.potManager.Total()
	for _, p := range t.seatOrder() {
		total += p.stack + p.currentBet
	}

	return total
}

// LastResults returns the payouts of the previous hand
func (t *Table) LastResults() []*HandResult {
	return t.lastResults
}

// seatOrder returns the seated players by ascending seat
func (t *Table) seatOrder() []*Player {
	t.playersMu.RLock()
	defer t.playersMu.RUnlock()

	players := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		players = append(players, p)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].seat < players[j].seat
	})

	return players
}

// removePlayer removes the player from the table
func (t *Table) removePlayer(p *Player) {
	t.playersMu.Lock()
	defer t.playersMu.Unlock()

	delete(t.players, p.seat)
	p.state = PlayerStateNotSeated
}

// countPlayers returns how many seated players match the predicate
func (t *Table) countPlayers(pred func(p *Player) bool) int {
	n := 0
	for _, p := range t.seatOrder() {
		if pred(p) {
			n++
		}
	}

	return n
}

// chipsInHand returns the chips of the dealt-in players and the pots
func (t *Table) chipsInHand() int {
	total := t.potManager.Total()
	for _, p := range t.seatOrder() {
		if p.state.isDealtIn() {
			total += p.stack + p.currentBet
		}
	}

	return total
}

// BuyIn sets the player's stack. It is refused while the player is in a hand.
func (t *Table) BuyIn(name string, stack int) error {
	p := t.PlayerByName(name)
	if p == nil {
		return ErrPlayerNotFound
	}

	if t.gameState.isHandInProgress() && p.state.isDealtIn() {
		return ParticipantError("you cannot buy in during a hand")
	}

	if stack > t.options.MaxBuyIn {
		return newParticipantError("buy-in cannot be more than ${%d}", t.options.MaxBuyIn)
	}

	return p.BuyIn(stack)
}
