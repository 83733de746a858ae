package db

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"nova-fund/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed halfway. The
// schema has to be repaired by hand before the ledger can use it.
var ErrDirtySchema = errors.New("ledger schema is dirty")

// Migrate brings the ledger schema at addr to migrations.Version and logs
// the versions it moved between. logger may be nil.
func Migrate(addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	if from == migrations.Version {
		logger.Debug("ledger schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	}

	logger.Info("migrating ledger schema",
		slog.Uint64("from", uint64(from)),
		slog.Uint64("to", uint64(migrations.Version)))
	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %d -> %d: %w", from, migrations.Version, err)
	}
	return nil
}
