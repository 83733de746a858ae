package usecase

import (
	"context"
	"io"
	"log/slog"
	"math"

	"nova-fund/internal/adapter/metrics"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// RegistryUseCase implements port.RegistryUseCase: many campaigns, each
// with a running donation total, keyed by sequential ids.
type RegistryUseCase struct {
	store   port.Store
	auth    port.Authorizer
	metrics *metrics.Ledger
	logger  *slog.Logger
}

// NewRegistryUseCase creates the registry contract over store. metrics and
// logger may be nil.
func NewRegistryUseCase(store port.Store, auth port.Authorizer, m *metrics.Ledger, logger *slog.Logger) *RegistryUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RegistryUseCase{store: store, auth: auth, metrics: m, logger: logger.With(slog.String("contract", "registry"))}
}

// Initialize records admin and resets the campaign counter. The guard is
// checked before authorization, so a repeated call always reports
// domain.ErrAlreadyInitialized.
func (u *RegistryUseCase) Initialize(ctx context.Context, admin domain.Address) error {
	err := u.store.Update(ctx, func(tx port.Txn) error {
		exists, err := tx.Has(keyAdmin)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyInitialized
		}
		if err = u.auth.RequireAuth(ctx, admin); err != nil {
			return err
		}
		if err = putAddress(tx, keyAdmin, admin); err != nil {
			return err
		}
		return putUint32(tx, keyCampaignCount, 0)
	})
	if err != nil {
		u.metrics.Rejected("registry_initialize", err)
		return err
	}
	u.logger.Info("registry initialized", slog.String("admin", admin.String()))
	return nil
}

// CreateCampaign stores a new campaign under the next id. An absent counter
// counts as zero.
func (u *RegistryUseCase) CreateCampaign(ctx context.Context, creator domain.Address, title string, target domain.Amount) (uint32, error) {
	var id uint32
	err := u.store.Update(ctx, func(tx port.Txn) error {
		if err := u.auth.RequireAuth(ctx, creator); err != nil {
			return err
		}
		if !target.IsPositive() {
			return domain.ErrInvalidAmount
		}
		count, err := getUint32(tx, keyCampaignCount)
		if err != nil {
			return err
		}
		if count == math.MaxUint32 {
			return domain.ErrArithmeticOverflow
		}
		id = count + 1
		campaign := &domain.Campaign{
			ID:      id,
			Creator: creator,
			Title:   title,
			Target:  target,
		}
		if err = putCampaign(tx, campaign); err != nil {
			return err
		}
		return putUint32(tx, keyCampaignCount, id)
	})
	if err != nil {
		u.metrics.Rejected("create_campaign", err)
		return 0, err
	}
	u.metrics.CampaignCreated()
	u.logger.Info("campaign created",
		slog.Uint64("id", uint64(id)),
		slog.String("creator", creator.String()),
		slog.String("target", target.String()))
	return id, nil
}

// Donate credits amount to a campaign's raised total. Totals beyond the
// target are kept as they are.
func (u *RegistryUseCase) Donate(ctx context.Context, campaignID uint32, donor domain.Address, amount domain.Amount) error {
	err := u.store.Update(ctx, func(tx port.Txn) error {
		if err := u.auth.RequireAuth(ctx, donor); err != nil {
			return err
		}
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		campaign, err := getCampaign(tx, campaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return domain.ErrNotFound
		}
		if campaign.Raised, err = campaign.Raised.Add(amount); err != nil {
			return err
		}
		return putCampaign(tx, campaign)
	})
	if err != nil {
		u.metrics.Rejected("registry_donate", err)
		return err
	}
	u.metrics.Donation("registry")
	u.logger.Debug("donation recorded",
		slog.Uint64("campaign", uint64(campaignID)),
		slog.String("donor", donor.String()),
		slog.String("amount", amount.String()))
	return nil
}

// GetCampaign returns the campaign with the given id. No authorization is
// needed.
func (u *RegistryUseCase) GetCampaign(ctx context.Context, campaignID uint32) (*domain.Campaign, error) {
	var campaign *domain.Campaign
	err := u.store.View(ctx, func(tx port.Txn) error {
		var err error
		campaign, err = getCampaign(tx, campaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetAllCampaigns reads ids 1 through the counter in order. Ids without a
// record are skipped.
func (u *RegistryUseCase) GetAllCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := u.store.View(ctx, func(tx port.Txn) error {
		count, err := getUint32(tx, keyCampaignCount)
		if err != nil {
			return err
		}
		campaigns = make([]domain.Campaign, 0, min(count, 256))
		for id := uint32(1); id <= count && id != 0; id++ {
			campaign, err := getCampaign(tx, id)
			if err != nil {
				return err
			}
			if campaign == nil {
				continue
			}
			campaigns = append(campaigns, *campaign)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}
