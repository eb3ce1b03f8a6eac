package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaze-network/nft-minter/internal/postgres"
	"github.com/gaze-network/nft-minter/modules/nft/assetstore"
	"github.com/gaze-network/nft-minter/modules/nft/identity"
	"github.com/gaze-network/nft-minter/pkg/logger"
	"github.com/gaze-network/nft-minter/pkg/logger/slogx"
	"github.com/gaze-network/nft-minter/pkg/middleware/requestcontext"
	"github.com/gaze-network/nft-minter/pkg/middleware/requestlogger"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		HTTPServer: HTTPServer{
			Port: 8080,
		},
		NFT: NFTConfig{
			DefaultRecordStore: "memory",
			RecordStores: map[string]RecordStore{
				"memory": {Driver: "memory"},
			},
			Chains: ChainsConfig{Simulated: []string{"solana", "ethereum", "polygon", "arbitrum"}},
		},
	}
)

type Config struct {
	Logger     logger.Config `mapstructure:"logger"`
	HTTPServer HTTPServer    `mapstructure:"http_server"`
	NFT        NFTConfig     `mapstructure:"nft"`
}

type HTTPServer struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`

	// PublicBaseURL is the externally reachable base URL of this service,
	// used to build URLs for record-store hosted assets.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type NFTConfig struct {
	// DefaultRecordStore names the record store used when a request does not
	// pick one.
	DefaultRecordStore string `mapstructure:"default_record_store"`

	RecordStores map[string]RecordStore `mapstructure:"record_stores"`

	AssetStores AssetStores  `mapstructure:"asset_stores"`
	Chains      ChainsConfig `mapstructure:"chains"`
	Identity    Identity     `mapstructure:"identity"`
}

type RecordStore struct {
	// Driver is "postgres" or "memory".
	Driver   string          `mapstructure:"driver"`
	Postgres postgres.Config `mapstructure:"postgres"`
}

type AssetStores struct {
	Pinata *assetstore.PinataConfig `mapstructure:"pinata"`
	IPFS   *assetstore.IPFSConfig   `mapstructure:"ipfs"`
	S3     *assetstore.S3Config     `mapstructure:"s3"`

	// RecordStore names the record store that backs the record-store asset
	// mechanism, empty disables it.
	RecordStore string `mapstructure:"record_store"`
}

type ChainsConfig struct {
	// Simulated lists the chains to serve with the built-in simulated
	// provider. Real providers are registered programmatically by the host.
	Simulated []string `mapstructure:"simulated"`
}

type Identity struct {
	// Resolver is "api" or "static".
	Resolver string                `mapstructure:"resolver"`
	API      identity.ClientConfig `mapstructure:"api"`
	Static   []StaticAvatar        `mapstructure:"static"`
}

type StaticAvatar struct {
	ID       string         `mapstructure:"id"`
	Username string         `mapstructure:"username"`
	Email    string         `mapstructure:"email"`
	Wallets  []StaticWallet `mapstructure:"wallets"`
}

type StaticWallet struct {
	Chain     string `mapstructure:"chain"`
	Address   string `mapstructure:"address"`
	IsDefault bool   `mapstructure:"is_default"`
}

// BindPFlag binds a configuration key to a command line flag, letting flags
// override file and environment values.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Failed to bind flag to configuration", slogx.Error(err), slog.String("key", key))
	}
}

// Parse reads the configuration from the given file (or ./config.yaml when
// empty), environment variables and bound flags. Call once on startup, then
// use Load everywhere else.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
		logger.InfoContext(ctx, "loaded configuration successfully")
	})

	return *config
}

// Load returns the parsed configuration.
func Load() Config {
	return Parse("")
}
