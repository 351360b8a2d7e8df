package service

import (
	"context"

	"github.com/VladPetriv/busbooker/internal/models"
)

// Stores represents all stores.
type Stores struct {
	Route   RouteStore
	Seat    SeatStore
	Payment PaymentStore
	Health  HealthStore
}

// RouteStore provides functionality for work with routes store.
//
//go:generate mockery --dir . --name RouteStore --output ./mocks
type RouteStore interface {
	// List returns routes matching the filter ordered by id.
	List(ctx context.Context, filter ListRoutesFilter) ([]models.Route, error)
	// Get returns a route by id or nil when it does not exist.
	Get(ctx context.Context, routeID int) (*models.Route, error)
}

// ListRoutesFilter represents filters for RouteStore.List method.
// Source and Destination are compared case-insensitively, empty values are not applied.
type ListRoutesFilter struct {
	Source      string
	Destination string
	// Pagination limits the result to a single page, nil means all routes.
	Pagination *Pagination
}

// SeatStore provides functionality for work with seats store.
//
//go:generate mockery --dir . --name SeatStore --output ./mocks
type SeatStore interface {
	// List returns all seats ordered by their position in the layout.
	List(ctx context.Context) ([]models.Seat, error)
	// Get returns a seat by id or nil when it does not exist.
	Get(ctx context.Context, seatID string) (*models.Seat, error)
	// Reserve marks the seat as unavailable and stores the selection atomically.
	// It returns false when the seat was already taken.
	Reserve(ctx context.Context, selection *models.SeatSelection) (bool, error)
}

// PaymentStore provides functionality for work with payments store.
//
//go:generate mockery --dir . --name PaymentStore --output ./mocks
type PaymentStore interface {
	// Create stores a payment attempt.
	Create(ctx context.Context, payment *models.Payment) error
	// Get returns a payment by transaction id or nil when it does not exist.
	Get(ctx context.Context, transactionID string) (*models.Payment, error)
}

// HealthStore reports the state of the storage.
//
//go:generate mockery --dir . --name HealthStore --output ./mocks
type HealthStore interface {
	// Ping checks that the storage is reachable.
	Ping(ctx context.Context) error
}
