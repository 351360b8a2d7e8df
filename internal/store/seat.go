package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VladPetriv/busbooker/internal/models"
	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/pkg/database"
)

type seatStore struct {
	*database.PostgreSQL
}

var _ service.SeatStore = (*seatStore)(nil)

// NewSeat returns new instance of seat store.
func NewSeat(db *database.PostgreSQL) *seatStore {
	return &seatStore{
		db,
	}
}

func (s *seatStore) List(ctx context.Context) ([]models.Seat, error) {
	var seats []models.Seat
	err := s.DB.SelectContext(
		ctx,
		&seats,
		"SELECT id, deck, type, price, available, position FROM seats ORDER BY position;",
	)
	if err != nil {
		return nil, err
	}

	return seats, nil
}

func (s *seatStore) Get(ctx context.Context, seatID string) (*models.Seat, error) {
	var seat models.Seat
	err := s.DB.GetContext(
		ctx,
		&seat,
		"SELECT id, deck, type, price, available, position FROM seats WHERE id = $1;",
		seatID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &seat, nil
}

func (s *seatStore) Reserve(ctx context.Context, selection *models.SeatSelection) (bool, error) {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(
		ctx,
		"UPDATE seats SET available = FALSE WHERE id = $1 AND available;",
		selection.SeatID,
	)
	if err != nil {
		return false, fmt.Errorf("mark seat as unavailable: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	_, err = tx.NamedExecContext(
		ctx,
		"INSERT INTO seat_selections (id, seat_id, passenger_name, created_at) VALUES (:id, :seat_id, :passenger_name, :created_at);",
		selection,
	)
	if err != nil {
		return false, fmt.Errorf("insert seat selection: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}

	return true, nil
}
