package port

import (
	"context"

	"nova-fund/internal/core/domain"
)

// TokenUseCase exposes the token ledger to account holders.
type TokenUseCase interface {
	Balance(ctx context.Context, asset, holder domain.Address) (domain.Amount, error)
	// Transfer requires the authorization of from.
	Transfer(ctx context.Context, asset, from, to domain.Address, amount domain.Amount) error
	// Mint requires the authorization of the configured issuer.
	Mint(ctx context.Context, asset, to domain.Address, amount domain.Amount) error
}
