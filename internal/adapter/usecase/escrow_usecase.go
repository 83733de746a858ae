package usecase

import (
	"context"
	"io"
	"log/slog"

	"nova-fund/internal/adapter/metrics"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// EscrowUseCase implements port.EscrowUseCase: one campaign that holds the
// donated tokens in custody until the deadline passed and the target was
// met, then releases them to the recipient.
//
// The escrow is Open until both conditions hold and Releasable afterwards.
// Nothing marks it released: once the custody balance is drained, a second
// Withdraw simply transfers zero.
type EscrowUseCase struct {
	store    port.Store
	tokens   port.TokenLedger
	auth     port.Authorizer
	clock    port.Clock
	contract domain.Address
	metrics  *metrics.Ledger
	logger   *slog.Logger
}

// NewEscrowUseCase creates the escrow contract whose custody account is
// contract. metrics and logger may be nil.
func NewEscrowUseCase(
	store port.Store,
	tokens port.TokenLedger,
	auth port.Authorizer,
	clock port.Clock,
	contract domain.Address,
	m *metrics.Ledger,
	logger *slog.Logger,
) *EscrowUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &EscrowUseCase{
		store:    store,
		tokens:   tokens,
		auth:     auth,
		clock:    clock,
		contract: contract,
		metrics:  m,
		logger:   logger.With(slog.String("contract", "escrow")),
	}
}

// Contract returns the custody address donations are sent to.
func (u *EscrowUseCase) Contract() domain.Address {
	return u.contract
}

// Initialize stores the escrow parameters once, with raised = 0.
//
// Unlike the registry, no authorization is required here: whoever calls
// first configures the escrow.
func (u *EscrowUseCase) Initialize(ctx context.Context, recipient, asset domain.Address, deadline uint64, target domain.Amount) error {
	err := u.store.Update(ctx, func(tx port.Txn) error {
		exists, err := tx.Has(keyRecipient)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyInitialized
		}
		if !target.IsPositive() {
			return domain.ErrInvalidAmount
		}
		if err = putAddress(tx, keyRecipient, recipient); err != nil {
			return err
		}
		if err = putAddress(tx, keyAsset, asset); err != nil {
			return err
		}
		if err = putUint64(tx, keyDeadline, deadline); err != nil {
			return err
		}
		if err = putAmount(tx, keyTarget, target); err != nil {
			return err
		}
		return putAmount(tx, keyRaised, domain.Amount{})
	})
	if err != nil {
		u.metrics.Rejected("escrow_initialize", err)
		return err
	}
	u.logger.Info("escrow initialized",
		slog.String("recipient", recipient.String()),
		slog.String("asset", asset.String()),
		slog.Uint64("deadline", deadline),
		slog.String("target", target.String()))
	return nil
}

// Donate moves amount from donor into custody and credits it. Donations are
// accepted up to and including the deadline second.
func (u *EscrowUseCase) Donate(ctx context.Context, donor domain.Address, amount domain.Amount) error {
	err := u.store.Update(ctx, func(tx port.Txn) error {
		if err := u.auth.RequireAuth(ctx, donor); err != nil {
			return err
		}
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		escrow, err := loadEscrow(tx)
		if err != nil {
			return err
		}
		if u.clock.Now() > escrow.Deadline {
			return domain.ErrCampaignExpired
		}
		raised, err := escrow.Raised.Add(amount)
		if err != nil {
			return err
		}
		if err = u.tokens.Transfer(ctx, tx, escrow.Asset, donor, u.contract, amount); err != nil {
			return err
		}
		return putAmount(tx, keyRaised, raised)
	})
	if err != nil {
		u.metrics.Rejected("escrow_donate", err)
		return err
	}
	u.metrics.Donation("escrow")
	u.logger.Debug("donation received",
		slog.String("donor", donor.String()),
		slog.String("amount", amount.String()))
	return nil
}

// GetCampaignInfo returns (raised, target, deadline). A missing escrow
// yields zero values rather than an error.
func (u *EscrowUseCase) GetCampaignInfo(ctx context.Context) (domain.CampaignInfo, error) {
	var info domain.CampaignInfo
	err := u.store.View(ctx, func(tx port.Txn) error {
		var err error
		if info.Raised, err = getAmount(tx, keyRaised); err != nil {
			return err
		}
		if info.Target, err = getAmount(tx, keyTarget); err != nil {
			return err
		}
		info.Deadline, _, err = getUint64(tx, keyDeadline)
		return err
	})
	if err != nil {
		return domain.CampaignInfo{}, err
	}
	return info, nil
}

// Withdraw releases the live custody balance, not the raised figure, to
// the recipient. Only the recipient may call it, and only once the escrow
// is releasable. If the target was missed by the deadline the funds stay
// locked for good, since later donations are refused.
func (u *EscrowUseCase) Withdraw(ctx context.Context) (domain.Amount, error) {
	var released domain.Amount
	err := u.store.Update(ctx, func(tx port.Txn) error {
		escrow, err := loadEscrow(tx)
		if err != nil {
			return err
		}
		if err = u.auth.RequireAuth(ctx, escrow.Recipient); err != nil {
			return err
		}
		if u.clock.Now() < escrow.Deadline {
			return domain.ErrDeadlineNotReached
		}
		if escrow.Raised.Cmp(escrow.Target) < 0 {
			return domain.ErrTargetNotMet
		}
		if released, err = u.tokens.Balance(ctx, tx, escrow.Asset, u.contract); err != nil {
			return err
		}
		return u.tokens.Transfer(ctx, tx, escrow.Asset, u.contract, escrow.Recipient, released)
	})
	if err != nil {
		u.metrics.Rejected("escrow_withdraw", err)
		return domain.Amount{}, err
	}
	u.metrics.Withdrawal()
	u.logger.Info("escrow released", slog.String("amount", released.String()))
	return released, nil
}

// loadEscrow reads the whole record, failing with domain.ErrNotInitialized
// when the escrow was never set up.
func loadEscrow(tx port.Txn) (domain.Escrow, error) {
	var e domain.Escrow
	recipient, ok, err := getAddress(tx, keyRecipient)
	if err != nil {
		return e, err
	}
	if !ok {
		return e, domain.ErrNotInitialized
	}
	e.Recipient = recipient
	if e.Asset, _, err = getAddress(tx, keyAsset); err != nil {
		return e, err
	}
	if e.Deadline, _, err = getUint64(tx, keyDeadline); err != nil {
		return e, err
	}
	if e.Target, err = getAmount(tx, keyTarget); err != nil {
		return e, err
	}
	if e.Raised, err = getAmount(tx, keyRaised); err != nil {
		return e, err
	}
	return e, nil
}
