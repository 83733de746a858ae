package usecase

import (
	"context"

	"nova-fund/internal/adapter/metrics"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// TokenUseCase implements port.TokenUseCase on top of a token ledger,
// adding the authorization checks the ledger itself leaves to callers.
type TokenUseCase struct {
	store   port.Store
	ledger  port.TokenLedger
	auth    port.Authorizer
	issuer  domain.Address
	metrics *metrics.Ledger
}

// NewTokenUseCase creates the token endpoints. Only issuer may mint; an
// empty issuer disables minting.
func NewTokenUseCase(store port.Store, ledger port.TokenLedger, auth port.Authorizer, issuer domain.Address, m *metrics.Ledger) *TokenUseCase {
	return &TokenUseCase{store: store, ledger: ledger, auth: auth, issuer: issuer, metrics: m}
}

// Balance is a public read.
func (u *TokenUseCase) Balance(ctx context.Context, asset, holder domain.Address) (domain.Amount, error) {
	var bal domain.Amount
	err := u.store.View(ctx, func(tx port.Txn) error {
		var err error
		bal, err = u.ledger.Balance(ctx, tx, asset, holder)
		return err
	})
	return bal, err
}

// Transfer moves a positive amount on behalf of from.
func (u *TokenUseCase) Transfer(ctx context.Context, asset, from, to domain.Address, amount domain.Amount) error {
	err := u.store.Update(ctx, func(tx port.Txn) error {
		if err := u.auth.RequireAuth(ctx, from); err != nil {
			return err
		}
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		return u.ledger.Transfer(ctx, tx, asset, from, to, amount)
	})
	if err != nil {
		u.metrics.Rejected("token_transfer", err)
		return err
	}
	u.metrics.TokenOperation("transfer")
	return nil
}

// Mint issues new tokens to a holder.
func (u *TokenUseCase) Mint(ctx context.Context, asset, to domain.Address, amount domain.Amount) error {
	err := u.store.Update(ctx, func(tx port.Txn) error {
		if u.issuer == "" {
			return domain.ErrUnauthorized
		}
		if err := u.auth.RequireAuth(ctx, u.issuer); err != nil {
			return err
		}
		return u.ledger.Mint(ctx, tx, asset, to, amount)
	})
	if err != nil {
		u.metrics.Rejected("token_mint", err)
		return err
	}
	u.metrics.TokenOperation("mint")
	return nil
}
