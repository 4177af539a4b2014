package db

import (
	"errors"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adspend/db/migrations"
)

// Migrate brings the report schema at addr up to migrations.Version using
// the embedded SQL files. A dirty schema is reported as an error and left
// for manual repair.
func Migrate(addr string, logger *slog.Logger) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("report schema is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("report schema up to date", slog.Uint64("version", uint64(current)))
			return nil
		}
		return err
	}
	logger.Info("report schema migrated",
		slog.Uint64("from", uint64(current)),
		slog.Uint64("to", uint64(migrations.Version)))
	return nil
}
