package main

import (
	"context"
	"log/slog"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/adapter/badger"
	"nova-fund/internal/adapter/clock"
	"nova-fund/internal/adapter/leveldb"
	"nova-fund/internal/adapter/metrics"
	"nova-fund/internal/adapter/postgres"
	"nova-fund/internal/adapter/token"
	"nova-fund/internal/adapter/usecase"
	"nova-fund/internal/config"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
	"nova-fund/internal/db"
)

// openStore opens the backend selected by cfg.Store.Driver. The returned
// func releases it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Store, func(), error) {
	switch cfg.Store.Driver {
	case "leveldb":
		s, err := leveldb.Open(cfg.Store.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, closeWith(s.Close, logger), nil
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStore(pool), pool.Close, nil
	default:
		s, err := badger.Open(cfg.Store.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, closeWith(s.Close, logger), nil
	}
}

func closeWith(closeFn func() error, logger *slog.Logger) func() {
	return func() {
		if err := closeFn(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}
}

type ledger struct {
	registry *usecase.RegistryUseCase
	escrow   *usecase.EscrowUseCase
	tokens   *usecase.TokenUseCase
}

// newLedger wires both contracts and the token ledger onto one store.
func newLedger(store port.Store, cfg config.Config, issuer domain.Address, m *metrics.Ledger, logger *slog.Logger) ledger {
	authorizer := auth.NewAuthorizer()
	tokens := token.NewLedger()
	return ledger{
		registry: usecase.NewRegistryUseCase(store, authorizer, m, logger),
		escrow: usecase.NewEscrowUseCase(store, tokens, authorizer, clock.NewSystem(),
			domain.ContractAddress(cfg.Ledger.Escrow), m, logger),
		tokens: usecase.NewTokenUseCase(store, tokens, authorizer, issuer, m),
	}
}
