package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits is every suit in deck-building order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// rank constants, Two is the lowest rank and Ace is the highest
const (
	Two = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a suit
const NumRanks = Ace + 1

const rankChars = "23456789TJQKA"

// Card is an individual playing card
type Card struct {
	Rank   int  `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%c%s", rankChars[c.Rank], suit)
}

// Code returns the two character code for the card, e.g., "As" or "Td"
func (c *Card) Code() string {
	return fmt.Sprintf("%c%c", rankChars[c.Rank], c.Suit[0])
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// ParseCard returns a Card from a two character code such as "As", "Td" or "2c"
func ParseCard(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("could not parse card: %q", s)
	}

	rank := strings.IndexByte(rankChars, strings.ToUpper(s[:1])[0])
	if rank < 0 {
		return nil, fmt.Errorf("could not parse card rank: %q", s)
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return nil, fmt.Errorf("could not parse card suit: %q", s)
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardFromString is like ParseCard, but it panics on malformed input.
// It is intended for tests and constants.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards from a comma-separated list of codes
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of As,Kd,2c
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.Code()
	}

	return strings.Join(c, ",")
}
