package models

import "github.com/VladPetriv/busbooker/pkg/money"

// Deck represents a bus deck.
type Deck string

const (
	// DeckUpper represents the upper deck.
	DeckUpper Deck = "upper"
	// DeckLower represents the lower deck.
	DeckLower Deck = "lower"
)

// SeatType represents a seat type.
type SeatType string

const (
	// SeatTypeSleeper represents a sleeper berth.
	SeatTypeSleeper SeatType = "sleeper"
	// SeatTypeSemiSleeper represents a semi-sleeper seat.
	SeatTypeSemiSleeper SeatType = "semi-sleeper"
)

// Seat represents a seat in the bus layout.
type Seat struct {
	ID        string   `db:"id"`
	Deck      Deck     `db:"deck"`
	Type      SeatType `db:"type"`
	Price     string   `db:"price"`
	Available bool     `db:"available"`
	Position  int      `db:"position"`
}

// GetPrice returns parsed seat price.
func (s Seat) GetPrice() money.Money {
	price, _ := money.NewFromString(s.Price)
	return price
}

// SeatLayout represents seats grouped by deck.
type SeatLayout struct {
	UpperDeck []Seat
	LowerDeck []Seat
}

// NewSeatLayout groups seats by deck keeping their order.
func NewSeatLayout(seats []Seat) SeatLayout {
	layout := SeatLayout{
		UpperDeck: make([]Seat, 0),
		LowerDeck: make([]Seat, 0),
	}

	for _, seat := range seats {
		switch seat.Deck {
		case DeckUpper:
			layout.UpperDeck = append(layout.UpperDeck, seat)
		case DeckLower:
			layout.LowerDeck = append(layout.LowerDeck, seat)
		}
	}

	return layout
}
