package nft

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/do/v2"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/internal/config"
	"github.com/gaze-network/nft-minter/internal/postgres"
	nfthttphandler "github.com/gaze-network/nft-minter/modules/nft/api/httphandler"
	"github.com/gaze-network/nft-minter/modules/nft/assetstore"
	"github.com/gaze-network/nft-minter/modules/nft/chain"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/identity"
	nftdomain "github.com/gaze-network/nft-minter/modules/nft/nft"
	nftmemory "github.com/gaze-network/nft-minter/modules/nft/repository/memory"
	nftpostgres "github.com/gaze-network/nft-minter/modules/nft/repository/postgres"
	nftusecase "github.com/gaze-network/nft-minter/modules/nft/usecase"
	"github.com/gaze-network/nft-minter/pkg/logger"
)

// Version of the NFT module.
const Version = "v0.1.0"

// Module bundles the wired usecase with the resources that need closing on
// shutdown.
type Module struct {
	Usecase *nftusecase.Usecase

	cleanupFuncs []func(context.Context) error
}

var _ do.ShutdownerWithError = (*Module)(nil)

func (m *Module) Shutdown() error {
	ctx := context.Background()
	for _, cleanup := range m.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// New wires the module from configuration: record stores, asset stores,
// chain providers and the identity resolver, then mounts the HTTP API.
// Hosts embedding this module can provide extra chain providers through the
// injector under their chain name before invoking it.
func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	recordStores, cleanupFuncs, err := buildRecordStores(ctx, conf.NFT)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	assetStores, contentRecords, err := buildAssetStores(conf, recordStores)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	chains := buildChainProviders(injector, conf.NFT.Chains)

	avatars, err := buildAvatarResolver(conf.NFT.Identity)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	uc := nftusecase.New(nftusecase.Backends{
		Chains:             chains,
		AssetStores:        assetStores,
		RecordStores:       recordStores,
		DefaultRecordStore: conf.NFT.DefaultRecordStore,
		Avatars:            avatars,
	})

	// Mount API
	httpServer := do.MustInvoke[*fiber.App](injector)
	handler := nfthttphandler.New(uc, contentRecords)
	if err := handler.Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount NFT API")
	}
	logger.InfoContext(ctx, "Mounted NFT HTTP handler")

	return &Module{
		Usecase:      uc,
		cleanupFuncs: cleanupFuncs,
	}, nil
}

func buildRecordStores(ctx context.Context, conf config.NFTConfig) (map[string]datagateway.RecordDataGateway, []func(context.Context) error, error) {
	stores := make(map[string]datagateway.RecordDataGateway, len(conf.RecordStores))
	var cleanupFuncs []func(context.Context) error
	for name, storeConf := range conf.RecordStores {
		switch strings.ToLower(storeConf.Driver) {
		case "postgresql", "postgres", "pg":
			pg, err := postgres.NewPool(ctx, storeConf.Postgres)
			if err != nil {
				if errors.Is(err, errs.InvalidArgument) {
					return nil, nil, errors.Wrapf(err, "invalid Postgres configuration for record store %q", name)
				}
				return nil, nil, errors.Wrapf(err, "can't create Postgres connection pool for record store %q", name)
			}
			cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
				pg.Close()
				return nil
			})
			stores[name] = nftpostgres.NewRepository(pg)
		case "memory":
			stores[name] = nftmemory.New()
		default:
			return nil, nil, errors.Wrapf(errs.Unsupported, "%q driver for record store %q is not supported", storeConf.Driver, name)
		}
	}
	if _, ok := stores[conf.DefaultRecordStore]; !ok {
		return nil, nil, errors.Wrapf(errs.InvalidArgument, "default record store %q is not configured", conf.DefaultRecordStore)
	}
	return stores, cleanupFuncs, nil
}

func buildAssetStores(conf config.Config, recordStores map[string]datagateway.RecordDataGateway) (map[nftdomain.StorageMechanism]datagateway.AssetStore, datagateway.RecordDataGateway, error) {
	stores := make(map[nftdomain.StorageMechanism]datagateway.AssetStore)
	asConf := conf.NFT.AssetStores

	if asConf.Pinata != nil {
		pinata, err := assetstore.NewPinata(*asConf.Pinata)
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid Pinata configuration")
		}
		stores[nftdomain.StoragePinata] = pinata
	}
	if asConf.IPFS != nil {
		ipfs, err := assetstore.NewIPFS(*asConf.IPFS)
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid IPFS configuration")
		}
		stores[nftdomain.StorageIPFS] = ipfs
	}
	if asConf.S3 != nil {
		stores[nftdomain.StorageS3] = assetstore.NewS3(*asConf.S3)
	}

	var contentRecords datagateway.RecordDataGateway
	if asConf.RecordStore != "" {
		records, ok := recordStores[asConf.RecordStore]
		if !ok {
			return nil, nil, errors.Wrapf(errs.InvalidArgument, "record store %q for asset hosting is not configured", asConf.RecordStore)
		}
		contentRecords = records
		stores[nftdomain.StorageRecordStore] = assetstore.NewRecordStore(records, conf.HTTPServer.PublicBaseURL)
	}
	return stores, contentRecords, nil
}

func buildChainProviders(injector do.Injector, conf config.ChainsConfig) map[nftdomain.Chain]datagateway.ChainProvider {
	providers := make(map[nftdomain.Chain]datagateway.ChainProvider)
	for _, name := range lo.Uniq(conf.Simulated) {
		c := nftdomain.Chain(strings.ToLower(strings.TrimSpace(name)))
		if c.IsSupported() {
			providers[c] = chain.NewSimulated(c)
		}
	}

	// Host-registered providers override the simulated ones.
	for _, c := range []nftdomain.Chain{nftdomain.ChainSolana, nftdomain.ChainEthereum, nftdomain.ChainPolygon, nftdomain.ChainArbitrum} {
		if provider, err := do.InvokeNamed[datagateway.ChainProvider](injector, string(c)); err == nil {
			providers[c] = provider
		}
	}
	return providers
}

func buildAvatarResolver(conf config.Identity) (datagateway.AvatarResolver, error) {
	switch strings.ToLower(conf.Resolver) {
	case "api":
		client, err := identity.NewClient(conf.API)
		if err != nil {
			return nil, errors.Wrap(err, "invalid identity API configuration")
		}
		return client, nil
	case "static":
		resolver := identity.NewStaticResolver()
		for _, a := range conf.Static {
			id, err := uuid.Parse(a.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid static avatar id %q", a.ID)
			}
			resolver.Add(&datagateway.Avatar{
				ID:       id,
				Username: a.Username,
				Email:    a.Email,
				Wallets: lo.Map(a.Wallets, func(w config.StaticWallet, _ int) datagateway.Wallet {
					return datagateway.Wallet{
						Chain:     nftdomain.Chain(w.Chain),
						Address:   w.Address,
						IsDefault: w.IsDefault,
					}
				}),
			})
		}
		return resolver, nil
	case "":
		return nil, nil
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q identity resolver is not supported", conf.Resolver)
	}
}
