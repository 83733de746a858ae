package main

import (
	"crypto/ed25519"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"nova-fund/db/migrations"
	"nova-fund/internal/adapter/clock"
	"nova-fund/internal/core/domain"
	"nova-fund/internal/db"
)

func adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Maintenance tasks",
	}
	cmd.AddCommand(adminMigrateCommand(), adminSeedCommand())
	return cmd
}

func adminMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return err
			}
			logger.Info("migrations applied successfully", slog.Uint64("version", migrations.Version))
			return nil
		},
	}
}

func adminSeedCommand() *cobra.Command {
	var (
		issuerSecret string
		assetName    string
		escrowTTL    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the ledger with demo accounts and campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			var issuer ed25519.PrivateKey
			if issuerSecret == "" {
				if _, issuer, err = ed25519.GenerateKey(nil); err != nil {
					return err
				}
			} else if issuer, err = decodeSecret(issuerSecret); err != nil {
				return err
			}
			issuerAddr := domain.AddressFromPublicKey(issuer.Public().(ed25519.PublicKey))
			if cfg.Ledger.Issuer != "" && cfg.Ledger.Issuer != issuerAddr {
				logger.Warn("seeding with an issuer other than the configured one",
					slog.String("configured", cfg.Ledger.Issuer.String()),
					slog.String("seed", issuerAddr.String()))
			}

			ctx := cmd.Context()
			store, closeStore, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			l := newLedger(store, cfg, issuerAddr, nil, logger)
			asset := domain.ContractAddress("asset/" + assetName)
			deadline := clock.NewSystem().Now() + uint64(escrowTTL/time.Second)
			accounts, err := db.Seed(ctx, db.SeedTarget{
				Registry: l.registry,
				Escrow:   l.escrow,
				Tokens:   l.tokens,
			}, issuer, asset, deadline, logger)
			if err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "asset   %s\n", asset)
			fmt.Fprintf(out, "escrow  %s (deadline %d)\n", l.escrow.Contract(), deadline)
			fmt.Fprintf(out, "%-9s %s  %s\n", "issuer", issuerAddr, encodeSecret(issuer))
			for _, a := range accounts {
				fmt.Fprintf(out, "%-9s %s  %s\n", a.Name, a.Address, encodeSecret(a.Key))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&issuerSecret, "issuer-secret", "", "token issuer secret; generated when empty")
	cmd.Flags().StringVar(&assetName, "asset", "demo", "name the demo asset address is derived from")
	cmd.Flags().DurationVar(&escrowTTL, "escrow-ttl", 7*24*time.Hour, "time until the demo escrow deadline")
	return cmd
}
