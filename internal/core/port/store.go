package port

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound is returned by Txn.Get for absent keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrReadOnlyTxn is returned by Txn.Set inside Store.View.
	ErrReadOnlyTxn = errors.New("read-only transaction")
)

// Txn is a read/write view of the key/value store scoped to one call.
// Values returned by Get are copies and may be retained.
type Txn interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Set(key, value []byte) error
}

// Store is the persistent key/value store the contracts live in. It is an
// outbound port in hexagonal architecture.
//
// Implementations must run Update callbacks one at a time in a single total
// order and must discard every write of a callback that returns an error, so
// that each ledger call is all-or-nothing.
type Store interface {
	// View runs fn in a read-only transaction.
	View(ctx context.Context, fn func(Txn) error) error
	// Update runs fn in a read/write transaction and commits it when fn
	// returns nil.
	Update(ctx context.Context, fn func(Txn) error) error
	Close() error
}
