package usecase

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/adapter/badger"
	"nova-fund/internal/adapter/token"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// account derives a deterministic address from a one byte seed.
func account(seed byte) domain.Address {
	key := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize))
	return domain.AddressFromPublicKey(key.Public().(ed25519.PublicKey))
}

func newStore(t *testing.T) port.Store {
	t.Helper()
	store, err := badger.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// as returns a context in which ids authorized the call.
func as(ids ...domain.Address) context.Context {
	return auth.WithIdentities(context.Background(), ids...)
}

type fixedClock struct {
	now uint64
}

func (c *fixedClock) Now() uint64 { return c.now }

func balance(t *testing.T, store port.Store, asset, holder domain.Address) domain.Amount {
	t.Helper()
	var bal domain.Amount
	err := store.View(context.Background(), func(tx port.Txn) error {
		var err error
		bal, err = token.NewLedger().Balance(context.Background(), tx, asset, holder)
		return err
	})
	require.NoError(t, err)
	return bal
}

func mint(t *testing.T, store port.Store, asset, to domain.Address, amount int64) {
	t.Helper()
	err := store.Update(context.Background(), func(tx port.Txn) error {
		return token.NewLedger().Mint(context.Background(), tx, asset, to, domain.NewAmount(amount))
	})
	require.NoError(t, err)
}
