package port

import (
	"context"

	"nova-fund/internal/core/domain"
)

// RegistryUseCase is the multi-campaign registry contract. Mutating calls
// are atomic: a returned error means nothing was persisted.
type RegistryUseCase interface {
	// Initialize records the admin once. A second call fails with
	// domain.ErrAlreadyInitialized whatever its arguments.
	Initialize(ctx context.Context, admin domain.Address) error

	// CreateCampaign stores a new campaign with raised = 0 and returns its
	// id. Ids are assigned sequentially from 1.
	CreateCampaign(ctx context.Context, creator domain.Address, title string, target domain.Amount) (uint32, error)

	// Donate adds amount to the campaign's raised total. No funds move.
	Donate(ctx context.Context, campaignID uint32, donor domain.Address, amount domain.Amount) error

	// GetCampaign returns the campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, campaignID uint32) (*domain.Campaign, error)

	// GetAllCampaigns returns every stored campaign in ascending id order.
	GetAllCampaigns(ctx context.Context) ([]domain.Campaign, error)
}
