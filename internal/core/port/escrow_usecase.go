package port

import (
	"context"

	"nova-fund/internal/core/domain"
)

// EscrowUseCase is the single-campaign escrow contract.
type EscrowUseCase interface {
	// Initialize creates the escrow once. It checks no authorization.
	Initialize(ctx context.Context, recipient, asset domain.Address, deadline uint64, target domain.Amount) error

	// Donate moves amount of the escrow asset from donor into the
	// contract's custody and credits it, as long as the deadline has not
	// passed.
	Donate(ctx context.Context, donor domain.Address, amount domain.Amount) error

	// GetCampaignInfo returns (raised, target, deadline), zero valued when
	// the escrow does not exist.
	GetCampaignInfo(ctx context.Context) (domain.CampaignInfo, error)

	// Withdraw releases the whole custody balance to the recipient once
	// the deadline passed and the target was met. It returns the amount
	// transferred, which is zero on repeated withdrawals.
	Withdraw(ctx context.Context) (domain.Amount, error)
}
