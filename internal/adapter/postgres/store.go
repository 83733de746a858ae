package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nova-fund/internal/core/port"
)

// ledgerLockID is the advisory lock every write transaction takes, which
// puts all ledger calls across all instances into one total order.
const ledgerLockID = 0x6e6f7661

// Store implements port.Store using pgxpool for PostgreSQL. Entries live in
// the ledger_entries table created by the migrations.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// View runs fn in a read-only repeatable read transaction.
func (s *Store) View(ctx context.Context, fn func(port.Txn) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return fn(&txn{ctx: ctx, tx: tx, readOnly: true})
}

// Update runs fn in a read committed transaction that first waits for the
// ledger lock. Every statement after the lock sees all writes committed
// before it was granted, so writers apply in lock order.
func (s *Store) Update(ctx context.Context, fn func(port.Txn) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(ledgerLockID)); err != nil {
		return err
	}
	err = fn(&txn{ctx: ctx, tx: tx})
	return err
}

// Close is a no-op; the pool is owned by the caller.
func (s *Store) Close() error {
	return nil
}

type txn struct {
	ctx      context.Context
	tx       pgx.Tx
	readOnly bool
}

func (t *txn) Get(key []byte) ([]byte, error) {
	var value []byte
	err := t.tx.QueryRow(t.ctx, `SELECT value FROM ledger_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (t *txn) Has(key []byte) (bool, error) {
	var exists bool
	err := t.tx.QueryRow(t.ctx, `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE key = $1)`, key).Scan(&exists)
	return exists, err
}

func (t *txn) Set(key, value []byte) error {
	if t.readOnly {
		return port.ErrReadOnlyTxn
	}
	_, err := t.tx.Exec(t.ctx, `
        INSERT INTO ledger_entries (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	return err
}
