package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/notify"
	"github.com/VladPetriv/busbooker/pkg/typecast"
	"github.com/google/uuid"
)

type paymentService struct {
	logger *logger.Logger
	apis   APIs
	stores Stores
}

var _ PaymentService = (*paymentService)(nil)

// PaymentOptions represents input options for creating new instance of payment service.
type PaymentOptions struct {
	Logger *logger.Logger
	APIs   APIs
	Stores Stores
}

// NewPayment returns new instance of payment service.
func NewPayment(opts *PaymentOptions) *paymentService {
	return &paymentService{
		logger: opts.Logger,
		apis:   opts.APIs,
		stores: opts.Stores,
	}
}

func (p paymentService) ProcessPayment(ctx context.Context, opts ProcessPaymentOptions) (*models.Payment, error) {
	logger := p.logger.Named("ProcessPayment")
	logger.Debug().Interface("opts", opts).Msg("got args")

	amount := typecast.FromPtr(opts.Amount)
	logger.Debug().Stringer("amount", amount).Msg("resolved amount")

	now := time.Now()
	payment := &models.Payment{
		ID:            uuid.NewString(),
		TransactionID: models.NewTransactionID(now),
		SeatID:        opts.SeatID,
		PassengerName: opts.PassengerName,
		Amount:        amount.StringFixed(),
		Status:        models.PaymentStatusSucceeded,
		CreatedAt:     now,
	}

	// No real provider is called: the only rejected payments are the ones with a negative amount.
	if amount.IsNegative() {
		payment.Status = models.PaymentStatusFailed
	}

	err := p.stores.Payment.Create(ctx, payment)
	if err != nil {
		logger.Error().Err(err).Msg("create payment in store")
		return nil, fmt.Errorf("create payment in store: %w", err)
	}

	if payment.Status == models.PaymentStatusFailed {
		p.apis.Notifier.Show(fmt.Sprintf("Payment of %s failed", amount.Format()), notify.TypeError)

		logger.Info().Interface("payment", payment).Msg("payment failed")
		return nil, ErrPaymentFailed
	}

	p.apis.Notifier.Show(
		fmt.Sprintf("Payment of %s processed, transaction %s", amount.Format(), payment.TransactionID),
		notify.TypeSuccess,
	)

	logger.Info().Interface("payment", payment).Msg("payment processed")
	return payment, nil
}

func (p paymentService) GetPayment(ctx context.Context, transactionID string) (*models.Payment, error) {
	logger := p.logger.Named("GetPayment")
	logger.Debug().Str("transactionID", transactionID).Msg("got args")

	payment, err := p.stores.Payment.Get(ctx, transactionID)
	if err != nil {
		logger.Error().Err(err).Msg("get payment from store")
		return nil, fmt.Errorf("get payment from store: %w", err)
	}
	if payment == nil {
		logger.Info().Str("transactionID", transactionID).Msg("payment not found")
		return nil, ErrPaymentNotFound
	}

	logger.Debug().Interface("payment", payment).Msg("got payment")
	return payment, nil
}
