package db

import (
	"context"
	"crypto/ed25519"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/adapter/badger"
	"nova-fund/internal/adapter/token"
	"nova-fund/internal/adapter/usecase"
	"nova-fund/internal/core/domain"
)

type stoppedClock uint64

func (c stoppedClock) Now() uint64 { return uint64(c) }

func TestSeed(t *testing.T) {
	store, err := badger.Open("", nil)
	require.NoError(t, err)
	defer store.Close()

	issuerPub, issuer, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	authz, ledger := auth.NewAuthorizer(), token.NewLedger()
	target := SeedTarget{
		Registry: usecase.NewRegistryUseCase(store, authz, nil, nil),
		Escrow: usecase.NewEscrowUseCase(store, ledger, authz, stoppedClock(10),
			domain.ContractAddress("escrow"), nil, nil),
		Tokens: usecase.NewTokenUseCase(store, ledger, authz, domain.AddressFromPublicKey(issuerPub), nil),
	}
	asset := domain.ContractAddress("asset/demo")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	accounts, err := Seed(ctx, target, issuer, asset, 1000, logger)
	require.NoError(t, err)
	require.Len(t, accounts, 5)
	assert.Equal(t, "admin", accounts[0].Name)

	// the generated admin owns the registry
	err = target.Registry.Initialize(auth.WithIdentities(ctx, accounts[0].Address), accounts[0].Address)
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	campaigns, err := target.Registry.GetAllCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	for _, c := range campaigns {
		assert.True(t, c.Raised.IsPositive())
	}

	info, err := target.Escrow.GetCampaignInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), info.Deadline)
	custody, err := target.Tokens.Balance(ctx, asset, domain.ContractAddress("escrow"))
	require.NoError(t, err)
	assert.Equal(t, info.Raised, custody)

	// a second run keeps the existing escrow
	_, err = Seed(ctx, target, issuer, asset, 2000, logger)
	require.NoError(t, err)
	info, err = target.Escrow.GetCampaignInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), info.Deadline)
}

func TestSeedRejectsWrongIssuer(t *testing.T) {
	store, err := badger.Open("", nil)
	require.NoError(t, err)
	defer store.Close()

	_, issuer, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	authz, ledger := auth.NewAuthorizer(), token.NewLedger()
	target := SeedTarget{
		Registry: usecase.NewRegistryUseCase(store, authz, nil, nil),
		Escrow:   usecase.NewEscrowUseCase(store, ledger, authz, stoppedClock(10), domain.ContractAddress("escrow"), nil, nil),
		Tokens:   usecase.NewTokenUseCase(store, ledger, authz, domain.ContractAddress("issuer"), nil),
	}
	_, err = Seed(context.Background(), target, issuer, domain.ContractAddress("asset/demo"), 1000, slog.Default())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
