package db

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// SeedTarget bundles the contracts Seed populates.
type SeedTarget struct {
	Registry port.RegistryUseCase
	Escrow   port.EscrowUseCase
	Tokens   port.TokenUseCase
}

// Account is a generated demo identity.
type Account struct {
	Name    string
	Address domain.Address
	Key     ed25519.PrivateKey
}

// Seed fills a fresh ledger with demo accounts, balances, registry
// campaigns and an escrow closing at deadline. issuer must be the key of
// the token issuer the target was configured with. Contracts that are
// already initialized are left alone.
func Seed(ctx context.Context, t SeedTarget, issuer ed25519.PrivateKey, asset domain.Address, deadline uint64, logger *slog.Logger) ([]Account, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	accounts := make([]Account, 0, 5)
	for _, name := range []string{"admin", "recipient", "alice", "bob", "carol"} {
		pub, key, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, Account{Name: name, Address: domain.AddressFromPublicKey(pub), Key: key})
	}
	admin, recipient, donors := accounts[0], accounts[1], accounts[2:]

	issuerPub, ok := issuer.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("unexpected issuer key type")
	}
	asIssuer := auth.WithIdentities(ctx, domain.AddressFromPublicKey(issuerPub))
	for _, d := range donors {
		if err := t.Tokens.Mint(asIssuer, asset, d.Address, units(10_000)); err != nil {
			return nil, fmt.Errorf("mint to %s: %w", d.Name, err)
		}
	}

	if err := t.Registry.Initialize(auth.WithIdentities(ctx, admin.Address), admin.Address); err != nil && !errors.Is(err, domain.ErrAlreadyInitialized) {
		return nil, err
	}
	for i, d := range donors {
		as := auth.WithIdentities(ctx, d.Address)
		title := fmt.Sprintf("Campaign %d by %s", i+1, d.Name)
		id, err := t.Registry.CreateCampaign(as, d.Address, title, units(int64(1_000*(i+1))))
		if err != nil {
			return nil, err
		}
		// pledges from everyone else
		for _, other := range donors {
			if other.Address == d.Address {
				continue
			}
			amount := units(int64(50 + r.Intn(500)))
			if err = t.Registry.Donate(auth.WithIdentities(ctx, other.Address), id, other.Address, amount); err != nil {
				return nil, err
			}
		}
	}

	err := t.Escrow.Initialize(ctx, recipient.Address, asset, deadline, units(1_000))
	switch {
	case errors.Is(err, domain.ErrAlreadyInitialized):
		logger.Info("escrow already initialized, skipping escrow donations")
		return accounts, nil
	case err != nil:
		return nil, err
	}
	for _, d := range donors {
		amount := units(int64(100 + r.Intn(400)))
		if err = t.Escrow.Donate(auth.WithIdentities(ctx, d.Address), d.Address, amount); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func units(n int64) domain.Amount {
	return domain.NewAmount(n * domain.StroopsPerUnit)
}
