package models

import (
	"fmt"
	"time"

	"github.com/VladPetriv/busbooker/pkg/money"
)

// SeatSelection represents a seat picked by a passenger.
type SeatSelection struct {
	ID            string    `db:"id"`
	SeatID        string    `db:"seat_id"`
	PassengerName string    `db:"passenger_name"`
	CreatedAt     time.Time `db:"created_at"`
}

// PaymentStatus represents a payment status.
type PaymentStatus string

const (
	// PaymentStatusSucceeded represents a processed payment.
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	// PaymentStatusFailed represents a rejected payment.
	PaymentStatusFailed PaymentStatus = "failed"
)

// Payment represents a payment attempt.
type Payment struct {
	ID            string        `db:"id"`
	TransactionID string        `db:"transaction_id"`
	SeatID        string        `db:"seat_id"`
	PassengerName string        `db:"passenger_name"`
	Amount        string        `db:"amount"`
	Status        PaymentStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
}

// GetAmount returns parsed payment amount.
func (p Payment) GetAmount() money.Money {
	amount, _ := money.NewFromString(p.Amount)
	return amount
}

// NewTransactionID builds a transaction id in TXN<YYYYMMDDHHMMSS> format.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN%s", now.Format("20060102150405"))
}
