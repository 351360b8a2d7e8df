package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/pkg/database"
)

type routeStore struct {
	*database.PostgreSQL
}

var _ service.RouteStore = (*routeStore)(nil)

// NewRoute returns new instance of route store.
func NewRoute(db *database.PostgreSQL) *routeStore {
	return &routeStore{
		db,
	}
}

var routeColumns = []string{
	"id", "operator", "type", "seating", "source", "destination", "departure", "arrival", "duration",
	"date::text AS date", "price", "discount_price", "rating", "reviews", "available_seats", "amenities", "image",
}

func (r *routeStore) List(ctx context.Context, filter service.ListRoutesFilter) ([]models.Route, error) {
	stmt := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(routeColumns...).
		From("routes").
		OrderBy("id")

	if filter.Source != "" {
		stmt = stmt.Where("LOWER(source) = LOWER(?)", filter.Source)
	}
	if filter.Destination != "" {
		stmt = stmt.Where("LOWER(destination) = LOWER(?)", filter.Destination)
	}
	stmt = applyLimitAndOffsetForStatement(stmt, filter.Pagination)

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list routes query: %w", err)
	}

	var routes []models.Route
	err = r.DB.SelectContext(ctx, &routes, query, args...)
	if err != nil {
		return nil, err
	}

	return routes, nil
}

func (r *routeStore) Get(ctx context.Context, routeID int) (*models.Route, error) {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(routeColumns...).
		From("routes").
		Where(sq.Eq{"id": routeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get route query: %w", err)
	}

	var route models.Route
	err = r.DB.GetContext(ctx, &route, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &route, nil
}
