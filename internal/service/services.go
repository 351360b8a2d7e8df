package service

import (
	"context"
	"time"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/pkg/money"
)

// Services contains all services.
type Services struct {
	Booking BookingService
	Payment PaymentService
	Health  HealthService
}

// BookingService provides functionality for searching routes and picking seats.
type BookingService interface {
	// ListRoutes returns routes ordered by id, nil pagination means all of them.
	ListRoutes(ctx context.Context, pagination *Pagination) ([]models.Route, error)
	// SearchRoutes returns routes between source and destination.
	SearchRoutes(ctx context.Context, opts SearchRoutesOptions) ([]models.Route, error)
	// GetSeatSelection returns the route with the seat layout.
	// Missing or unknown route id falls back to the first route.
	GetSeatSelection(ctx context.Context, routeID *int) (*SeatSelectionPage, error)
	// SelectSeat reserves the seat for passenger.
	SelectSeat(ctx context.Context, opts SelectSeatOptions) (*models.SeatSelection, error)
}

// SearchRoutesOptions represents input structure for SearchRoutes method.
type SearchRoutesOptions struct {
	Source      string
	Destination string
}

// SeatSelectionPage represents a route with its seat layout.
type SeatSelectionPage struct {
	Route  models.Route
	Layout models.SeatLayout
}

// SelectSeatOptions represents input structure for SelectSeat method.
type SelectSeatOptions struct {
	SeatID        string
	PassengerName string
}

// PaymentService provides functionality for processing payments.
type PaymentService interface {
	// ProcessPayment processes a payment and returns the stored payment.
	ProcessPayment(ctx context.Context, opts ProcessPaymentOptions) (*models.Payment, error)
	// GetPayment returns the latest payment attempt with the given transaction id.
	GetPayment(ctx context.Context, transactionID string) (*models.Payment, error)
}

// ProcessPaymentOptions represents input structure for ProcessPayment method.
type ProcessPaymentOptions struct {
	// Amount is optional, nil means the amount was not sent by the caller.
	Amount        *money.Money
	SeatID        string
	PassengerName string
}

// HealthService reports the application state.
type HealthService interface {
	// Check returns the current health status.
	Check(ctx context.Context) HealthStatus
}

// HealthStatus represents the health check result.
type HealthStatus struct {
	Healthy   bool
	Timestamp time.Time
}
