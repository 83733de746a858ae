package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nova-fund/internal/config"
)

const programName = "nova-fund"

var globalFlags = struct {
	envFile string
}{}

// loadConfig reads the configuration and builds the process logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(globalFlags.envFile)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("component", programName))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Crowdfunding ledger with a campaign registry and a deadline escrow",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serveRun(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.envFile, "env-file", ".env", "dotenv file read before the environment")

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(adminCommand())
	rootCmd.AddCommand(keysCommand())

	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
