package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/VladPetriv/busbooker/pkg/notify"
	"github.com/google/uuid"
)

type bookingService struct {
	logger *logger.Logger
	apis   APIs
	stores Stores
}

var _ BookingService = (*bookingService)(nil)

// BookingOptions represents input options for creating new instance of booking service.
type BookingOptions struct {
	Logger *logger.Logger
	APIs   APIs
	Stores Stores
}

// NewBooking returns new instance of booking service.
func NewBooking(opts *BookingOptions) *bookingService {
	return &bookingService{
		logger: opts.Logger,
		apis:   opts.APIs,
		stores: opts.Stores,
	}
}

func (b bookingService) ListRoutes(ctx context.Context, pagination *Pagination) ([]models.Route, error) {
	logger := b.logger.Named("ListRoutes")
	logger.Debug().Interface("pagination", pagination).Msg("got args")

	routes, err := b.stores.Route.List(ctx, ListRoutesFilter{Pagination: pagination})
	if err != nil {
		logger.Error().Err(err).Msg("list routes from store")
		return nil, fmt.Errorf("list routes from store: %w", err)
	}

	logger.Debug().Int("count", len(routes)).Msg("got routes")
	return routes, nil
}

func (b bookingService) SearchRoutes(ctx context.Context, opts SearchRoutesOptions) ([]models.Route, error) {
	logger := b.logger.Named("SearchRoutes")
	logger.Debug().Interface("opts", opts).Msg("got args")

	// Both ends are matched exactly, so empty values match nothing.
	if opts.Source == "" || opts.Destination == "" {
		logger.Info().Msg("source or destination is empty")
		return []models.Route{}, nil
	}

	routes, err := b.stores.Route.List(ctx, ListRoutesFilter{
		Source:      opts.Source,
		Destination: opts.Destination,
	})
	if err != nil {
		logger.Error().Err(err).Msg("list routes from store")
		return nil, fmt.Errorf("list routes from store: %w", err)
	}
	if routes == nil {
		routes = []models.Route{}
	}

	logger.Info().Int("count", len(routes)).Msg("routes found")
	return routes, nil
}

func (b bookingService) GetSeatSelection(ctx context.Context, routeID *int) (*SeatSelectionPage, error) {
	logger := b.logger.Named("GetSeatSelection")
	logger.Debug().Interface("routeID", routeID).Msg("got args")

	var route *models.Route
	if routeID != nil {
		var err error
		route, err = b.stores.Route.Get(ctx, *routeID)
		if err != nil {
			logger.Error().Err(err).Msg("get route from store")
			return nil, fmt.Errorf("get route from store: %w", err)
		}
	}

	if route == nil {
		logger.Info().Msg("route not found, falling back to the first route")

		routes, err := b.stores.Route.List(ctx, ListRoutesFilter{})
		if err != nil {
			logger.Error().Err(err).Msg("list routes from store")
			return nil, fmt.Errorf("list routes from store: %w", err)
		}
		if len(routes) == 0 {
			logger.Info().Msg("there are no routes")
			return nil, ErrRoutesNotFound
		}

		route = &routes[0]
	}

	seats, err := b.stores.Seat.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list seats from store")
		return nil, fmt.Errorf("list seats from store: %w", err)
	}

	return &SeatSelectionPage{
		Route:  *route,
		Layout: models.NewSeatLayout(seats),
	}, nil
}

func (b bookingService) SelectSeat(ctx context.Context, opts SelectSeatOptions) (*models.SeatSelection, error) {
	logger := b.logger.Named("SelectSeat")
	logger.Debug().Interface("opts", opts).Msg("got args")

	seat, err := b.stores.Seat.Get(ctx, opts.SeatID)
	if err != nil {
		logger.Error().Err(err).Msg("get seat from store")
		return nil, fmt.Errorf("get seat from store: %w", err)
	}
	if seat == nil {
		logger.Info().Str("seatID", opts.SeatID).Msg("seat not found")
		return nil, ErrSeatNotFound
	}
	if !seat.Available {
		logger.Info().Str("seatID", opts.SeatID).Msg("seat is not available")
		return nil, ErrSeatNotAvailable
	}

	selection := &models.SeatSelection{
		ID:            uuid.NewString(),
		SeatID:        seat.ID,
		PassengerName: opts.PassengerName,
		CreatedAt:     time.Now(),
	}

	reserved, err := b.stores.Seat.Reserve(ctx, selection)
	if err != nil {
		logger.Error().Err(err).Msg("reserve seat in store")
		return nil, fmt.Errorf("reserve seat in store: %w", err)
	}
	if !reserved {
		logger.Info().Str("seatID", opts.SeatID).Msg("seat was taken concurrently")
		return nil, ErrSeatNotAvailable
	}

	b.apis.Notifier.Show(fmt.Sprintf("Seat %s selected for %s", seat.ID, seatOwner(opts.PassengerName)), notify.TypeSuccess)

	logger.Info().Interface("selection", selection).Msg("seat selected")
	return selection, nil
}

func seatOwner(passengerName string) string {
	if passengerName == "" {
		return "anonymous passenger"
	}

	return passengerName
}
