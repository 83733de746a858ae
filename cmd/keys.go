package main

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"nova-fund/internal/adapter/auth"
	"nova-fund/internal/config"
	"nova-fund/internal/core/domain"
)

func keysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage account keys and call tokens",
	}
	cmd.AddCommand(keysGenerateCommand(), keysTokenCommand(), keysContractCommand())
	return cmd
}

func keysGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate an account keypair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub, key, err := ed25519.GenerateKey(nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "address: %s\nsecret:  %s\n",
				domain.AddressFromPublicKey(pub), encodeSecret(key))
			return nil
		},
	}
}

func keysTokenCommand() *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token authorizing calls as the key owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := decodeSecret(secret)
			if err != nil {
				return err
			}
			cfg, err := config.Load(globalFlags.envFile)
			if err != nil {
				return err
			}
			if ttl > cfg.Auth.MaxTTL {
				return fmt.Errorf("ttl %s exceeds the configured maximum %s", ttl, cfg.Auth.MaxTTL)
			}
			tok, err := auth.Sign(key, cfg.Auth.Audience, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "account secret as printed by keys generate")
	cmd.Flags().DurationVar(&ttl, "ttl", 15*time.Minute, "token lifetime")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func keysContractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contract NAME",
		Short: "Print the custody address of a named contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), domain.ContractAddress(args[0]))
			return nil
		},
	}
}

// encodeSecret renders the 32 byte ed25519 seed of key in base58.
func encodeSecret(key ed25519.PrivateKey) string {
	return base58.Encode(key.Seed())
}

func decodeSecret(s string) (ed25519.PrivateKey, error) {
	seed, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode secret: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, errors.New("secret must encode a 32 byte seed")
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
