package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/pkg/database"
)

type paymentStore struct {
	*database.PostgreSQL
}

var _ service.PaymentStore = (*paymentStore)(nil)

// NewPayment returns new instance of payment store.
func NewPayment(db *database.PostgreSQL) *paymentStore {
	return &paymentStore{
		db,
	}
}

func (p *paymentStore) Create(ctx context.Context, payment *models.Payment) error {
	_, err := p.DB.ExecContext(
		ctx,
		"INSERT INTO payments (id, transaction_id, seat_id, passenger_name, amount, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7);",
		payment.ID, payment.TransactionID, payment.SeatID, payment.PassengerName, payment.Amount, payment.Status, payment.CreatedAt,
	)

	return err
}

func (p *paymentStore) Get(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := p.DB.GetContext(
		ctx,
		&payment,
		`SELECT id, transaction_id, seat_id, passenger_name, amount, status, created_at
		FROM payments WHERE transaction_id = $1 ORDER BY created_at DESC LIMIT 1;`,
		transactionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}
