package models

import (
	"github.com/VladPetriv/busbooker/pkg/money"
	"github.com/lib/pq"
)

// Route represents a bus trip that can be booked.
type Route struct {
	ID        int    `db:"id"`
	Operator  string `db:"operator"`
	Type      string `db:"type"`
	Seating   string `db:"seating"`
	From      string `db:"source"`
	To        string `db:"destination"`
	Departure string `db:"departure"`
	Arrival   string `db:"arrival"`
	Duration  string `db:"duration"`
	Date      string `db:"date"`

	Price         string `db:"price"`
	DiscountPrice string `db:"discount_price"`

	Rating         float64        `db:"rating"`
	Reviews        int            `db:"reviews"`
	AvailableSeats int            `db:"available_seats"`
	Amenities      pq.StringArray `db:"amenities"`
	Image          string         `db:"image"`
}

// GetPrice returns parsed route price.
func (r Route) GetPrice() money.Money {
	price, _ := money.NewFromString(r.Price)
	return price
}

// GetDiscountPrice returns parsed discounted price, or the regular price when it is not set.
func (r Route) GetDiscountPrice() money.Money {
	if r.DiscountPrice == "" {
		return r.GetPrice()
	}

	price, _ := money.NewFromString(r.DiscountPrice)
	return price
}

// HasDiscount reports whether the discounted price is lower than the regular one.
func (r Route) HasDiscount() bool {
	return r.GetPrice().GreaterThan(r.GetDiscountPrice())
}
