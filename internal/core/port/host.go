package port

import (
	"context"

	"nova-fund/internal/core/domain"
)

// Authorizer confirms that the current call was approved by an identity.
type Authorizer interface {
	// RequireAuth returns domain.ErrUnauthorized unless the call carried
	// a valid authorization from id.
	RequireAuth(ctx context.Context, id domain.Address) error
}

// Clock yields the ledger timestamp in unix seconds. It never decreases.
type Clock interface {
	Now() uint64
}

// TokenLedger moves balances of an asset between identities. Operations run
// inside the caller's transaction, so a failure later in the same call rolls
// the transfer back too. It performs no authorization of its own.
type TokenLedger interface {
	// Balance returns the holder's balance, zero when it never held any.
	Balance(ctx context.Context, tx Txn, asset, holder domain.Address) (domain.Amount, error)
	// Transfer moves amount (>= 0) from one holder to another and fails
	// with domain.ErrInsufficientBalance when from cannot cover it.
	Transfer(ctx context.Context, tx Txn, asset, from, to domain.Address, amount domain.Amount) error
	// Mint credits amount (> 0) to a holder out of thin air.
	Mint(ctx context.Context, tx Txn, asset, to domain.Address, amount domain.Amount) error
}
