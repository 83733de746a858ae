package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/adapter/token"
	"nova-fund/internal/core/domain"
)

func TestTokenMint(t *testing.T) {
	issuer := account(20)
	uc := NewTokenUseCase(newStore(t), token.NewLedger(), auth.NewAuthorizer(), issuer, nil)

	require.NoError(t, uc.Mint(as(issuer), asset, alice, domain.NewAmount(70)))
	bal, err := uc.Balance(context.Background(), asset, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.NewAmount(70), bal)

	err = uc.Mint(as(alice), asset, alice, domain.NewAmount(1))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.Mint(as(issuer), asset, alice, domain.NewAmount(0))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestTokenMintWithoutIssuer(t *testing.T) {
	uc := NewTokenUseCase(newStore(t), token.NewLedger(), auth.NewAuthorizer(), "", nil)
	err := uc.Mint(as(alice), asset, alice, domain.NewAmount(1))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenTransfer(t *testing.T) {
	store := newStore(t)
	uc := NewTokenUseCase(store, token.NewLedger(), auth.NewAuthorizer(), "", nil)
	mint(t, store, asset, alice, 50)

	require.NoError(t, uc.Transfer(as(alice), asset, alice, bob, domain.NewAmount(20)))
	assert.Equal(t, domain.NewAmount(30), balance(t, store, asset, alice))
	assert.Equal(t, domain.NewAmount(20), balance(t, store, asset, bob))

	err := uc.Transfer(as(bob), asset, alice, bob, domain.NewAmount(1))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.Transfer(as(alice), asset, alice, bob, domain.NewAmount(0))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	err = uc.Transfer(as(alice), asset, alice, bob, domain.NewAmount(31))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, domain.NewAmount(30), balance(t, store, asset, alice))
}
