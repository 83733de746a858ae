package token

import (
	"context"
	"errors"
	"fmt"

	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// Ledger implements port.TokenLedger as balances kept in the same key/value
// store as the contracts, so token movements commit or roll back together
// with the contract call that caused them.
//
// Balances live under "token:" ++ asset ++ ":" ++ holder as 16 byte amounts.
type Ledger struct{}

// NewLedger returns a token ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

func balanceKey(asset, holder domain.Address) []byte {
	return []byte("token:" + string(asset) + ":" + string(holder))
}

// Balance returns the holder's balance of asset, zero when absent.
func (l *Ledger) Balance(_ context.Context, tx port.Txn, asset, holder domain.Address) (domain.Amount, error) {
	raw, err := tx.Get(balanceKey(asset, holder))
	if errors.Is(err, port.ErrKeyNotFound) {
		return domain.Amount{}, nil
	}
	if err != nil {
		return domain.Amount{}, fmt.Errorf("read balance: %w", err)
	}
	return domain.AmountFromBytes(raw)
}

// Transfer moves amount from one holder to another. A zero amount is a
// valid no-op that still succeeds.
func (l *Ledger) Transfer(ctx context.Context, tx port.Txn, asset, from, to domain.Address, amount domain.Amount) error {
	if amount.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	fromBal, err := l.Balance(ctx, tx, asset, from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	if amount.IsZero() || from == to {
		return nil
	}
	toBal, err := l.Balance(ctx, tx, asset, to)
	if err != nil {
		return err
	}
	newTo, err := toBal.Add(amount)
	if err != nil {
		return err
	}
	newFrom, err := fromBal.Sub(amount)
	if err != nil {
		return err
	}
	if err = tx.Set(balanceKey(asset, from), newFrom.Bytes()); err != nil {
		return fmt.Errorf("write balance: %w", err)
	}
	if err = tx.Set(balanceKey(asset, to), newTo.Bytes()); err != nil {
		return fmt.Errorf("write balance: %w", err)
	}
	return nil
}

// Mint credits a positive amount to holder.
func (l *Ledger) Mint(ctx context.Context, tx port.Txn, asset, to domain.Address, amount domain.Amount) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	bal, err := l.Balance(ctx, tx, asset, to)
	if err != nil {
		return err
	}
	bal, err = bal.Add(amount)
	if err != nil {
		return err
	}
	if err = tx.Set(balanceKey(asset, to), bal.Bytes()); err != nil {
		return fmt.Errorf("write balance: %w", err)
	}
	return nil
}
