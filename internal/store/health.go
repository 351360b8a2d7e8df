package store

import (
	"github.com/VladPetriv/busbooker/internal/service"
	"github.com/VladPetriv/busbooker/pkg/database"
)

// NewHealth returns a health store backed by the database connection.
func NewHealth(db *database.PostgreSQL) service.HealthStore {
	return db
}
