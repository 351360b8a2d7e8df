package migrations

import (
	"fmt"

	"github.com/VladPetriv/busbooker/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/lopezator/migrator"
)

// MigrateDB applies pending migrations to the database.
func MigrateDB(log *logger.Logger, db *sqlx.DB, dbName string, migrations []any) error {
	logger := log.Named("MigrateDB")
	logger.Debug().Str("dbName", dbName).Msg("migrating database ...")

	m, err := migrator.New(
		migrator.Migrations(migrations...),
		migrator.WithLogger(migrator.LoggerFunc(func(msg string, args ...any) {
			logger.Debug().Msgf(msg, args...)
		})),
	)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	pending, err := m.Pending(db.DB)
	if err != nil {
		// the migrations table does not exist before the very first run
		logger.Warn().Err(err).Msg("could not get pending migrations")
		pending = nil
	}

	logger.Info().
		Int("dbVersion", len(migrations)-len(pending)).
		Int("pending", len(pending)).
		Msg("current database version")

	err = m.Migrate(db.DB)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info().Int("updatedDatabaseVersion", len(migrations)).Msg("migrations were successfully completed")
	return nil
}
