package token

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-fund/internal/adapter/leveldb"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

var (
	asset = domain.ContractAddress("asset/test")
	alice = domain.ContractAddress("alice")
	bob   = domain.ContractAddress("bob")
)

func newStore(t *testing.T) port.Store {
	t.Helper()
	s, err := leveldb.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func update(t *testing.T, s port.Store, fn func(port.Txn) error) error {
	t.Helper()
	return s.Update(context.Background(), fn)
}

func balanceOf(t *testing.T, s port.Store, holder domain.Address) domain.Amount {
	t.Helper()
	var bal domain.Amount
	require.NoError(t, s.View(context.Background(), func(tx port.Txn) error {
		var err error
		bal, err = NewLedger().Balance(context.Background(), tx, asset, holder)
		return err
	}))
	return bal
}

func TestLedgerTransfer(t *testing.T) {
	s, l, ctx := newStore(t), NewLedger(), context.Background()

	assert.True(t, balanceOf(t, s, alice).IsZero())
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, alice, domain.NewAmount(100))
	}))
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Transfer(ctx, tx, asset, alice, bob, domain.NewAmount(40))
	}))
	assert.Equal(t, domain.NewAmount(60), balanceOf(t, s, alice))
	assert.Equal(t, domain.NewAmount(40), balanceOf(t, s, bob))

	// other assets are separate balances
	require.NoError(t, s.View(ctx, func(tx port.Txn) error {
		bal, err := l.Balance(ctx, tx, domain.ContractAddress("asset/other"), alice)
		assert.True(t, bal.IsZero())
		return err
	}))
}

func TestLedgerTransferRejections(t *testing.T) {
	s, l, ctx := newStore(t), NewLedger(), context.Background()
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, alice, domain.NewAmount(10))
	}))

	err := update(t, s, func(tx port.Txn) error {
		return l.Transfer(ctx, tx, asset, alice, bob, domain.NewAmount(11))
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = update(t, s, func(tx port.Txn) error {
		return l.Transfer(ctx, tx, asset, alice, bob, domain.NewAmount(-1))
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	assert.Equal(t, domain.NewAmount(10), balanceOf(t, s, alice))
	assert.True(t, balanceOf(t, s, bob).IsZero())
}

func TestLedgerZeroAndSelfTransfer(t *testing.T) {
	s, l, ctx := newStore(t), NewLedger(), context.Background()
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, alice, domain.NewAmount(10))
	}))

	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Transfer(ctx, tx, asset, bob, alice, domain.Amount{})
	}))
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Transfer(ctx, tx, asset, alice, alice, domain.NewAmount(10))
	}))
	assert.Equal(t, domain.NewAmount(10), balanceOf(t, s, alice))
}

func TestLedgerMintOverflow(t *testing.T) {
	s, l, ctx := newStore(t), NewLedger(), context.Background()
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, alice, domain.MaxAmount)
	}))
	err := update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, alice, domain.NewAmount(1))
	})
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)

	// a credit that would overflow the receiver aborts the transfer
	require.NoError(t, update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, bob, domain.NewAmount(1))
	}))
	err = update(t, s, func(tx port.Txn) error {
		return l.Transfer(ctx, tx, asset, bob, alice, domain.NewAmount(1))
	})
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
	assert.Equal(t, domain.NewAmount(1), balanceOf(t, s, bob))

	err = update(t, s, func(tx port.Txn) error {
		return l.Mint(ctx, tx, asset, bob, domain.Amount{})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
