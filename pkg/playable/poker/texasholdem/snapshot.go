package texasholdem

import (
	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/playable/poker/potmanager"
)

// CardView is a card as a viewer may see it. Card is nil when the card is hidden from the viewer.
type CardView struct {
	Card   *deck.Card `json:"card"`
	FaceUp bool       `json:"faceUp"`
}

// PlayerView is the public view of a seated player
type PlayerView struct {
	Name        string      `json:"name"`
	Seat        int         `json:"seat"`
	Stack       int         `json:"stack"`
	State       PlayerState `json:"state"`
	CurrentBet  int         `json:"currentBet"`
	IsAllIn     bool        `json:"isAllIn"`
	IsConnected bool        `json:"isConnected"`
	IsViewer    bool        `json:"isViewer"`
	Profit      int         `json:"profit"`
	HoleCards   []*CardView `json:"holeCards"`
	Hand        string      `json:"hand,omitempty"`
}

// Snapshot is the table as seen by one viewer
type Snapshot struct {
	Name       string    `json:"name"`
	NumSeats   int       `json:"numSeats"`
	SmallBlind int       `json:"smallBlind"`
	BigBlind   int       `json:"bigBlind"`
	GameState  GameState `json:"gameState"`
	HandNum    int       `json:"handNum"`

	DealerSeat   *int `json:"dealerSeat"`
	ActionOnSeat *int `json:"actionOnSeat"`

	// MainPot includes the bets of the current street that haven't been settled yet
	MainPot   int             `json:"mainPot"`
	SidePots  potmanager.Pots `json:"sidePots"`
	Community []*CardView     `json:"community"`
	Players   []*PlayerView   `json:"players"`

	// LegalActions is only set when the viewer is on action
	LegalActions *LegalActions `json:"legalActions"`

	LastResults []*HandResult `json:"lastResults"`
}

// Snapshot returns the table as seen by the named viewer.
// An empty or unknown name returns the public view, which shows no hidden cards.
func (t *Table) Snapshot(viewer string) *Snapshot {
	s := &Snapshot{
		Name:        t.options.Name,
		NumSeats:    t.options.NumSeats,
		SmallBlind:  t.options.SmallBlind,
		BigBlind:    t.options.BigBlind,
		GameState:   t.gameState,
		HandNum:     t.handNum,
		MainPot:     t.potManager.MainPot().Amount,
		SidePots:    t.potManager.SidePots(),
		Community:   viewCards(t.community, false),
		Players:     make([]*PlayerView, 0, len(t.players)),
		LastResults: t.lastResults,
	}

	if seat, ok := t.DealerSeat(); ok {
		s.DealerSeat = &seat
	}

	if seat, ok := t.ActionOnSeat(); ok {
		s.ActionOnSeat = &seat
	}

	for _, p := range t.seatOrder() {
		isViewer := viewer != "" && p.name == viewer
		s.MainPot += p.currentBet

		pv := &PlayerView{
			Name:        p.name,
			Seat:        p.seat,
			Stack:       p.stack,
			State:       p.state,
			CurrentBet:  p.currentBet,
			IsAllIn:     p.IsAllIn(),
			IsConnected: p.isConnected,
			IsViewer:    isViewer,
			Profit:      p.Profit(),
			HoleCards:   viewCards(p.holeCards, isViewer),
		}

		if len(p.holeCards) > 0 && (isViewer || allFaceUp(p.holeCards)) {
			pv.Hand = t.describeHand(p)
		}

		if isViewer {
			s.LegalActions = p.pendingAction.legalActions()
		}

		s.Players = append(s.Players, pv)
	}

	return s
}

func viewCards(cards deck.Hand, owner bool) []*CardView {
	views := make([]*CardView, len(cards))
	for i, c := range cards {
		v := &CardView{FaceUp: c.FaceUp}
		if owner || c.FaceUp {
			card := *c
			v.Card = &card
		}

		views[i] = v
	}

	return views
}

func allFaceUp(cards deck.Hand) bool {
	for _, c := range cards {
		if !c.FaceUp {
			return false
		}
	}

	return true
}
