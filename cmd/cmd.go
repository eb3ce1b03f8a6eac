package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gaze-network/nft-minter/internal/config"
	"github.com/gaze-network/nft-minter/pkg/logger"
	"github.com/gaze-network/nft-minter/pkg/logger/slogx"
)

var rootCmd = &cobra.Command{
	Use:  "nft-minter",
	Long: `Mint, send and place NFTs across chains through pluggable providers`,
}

func init() {
	var configFile string

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		conf := config.Parse(configFile)

		if err := logger.Init(conf.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	rootCmd.AddCommand(
		NewRunCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Panic("Failed to execute root command", slogx.Error(err))
	}
}
