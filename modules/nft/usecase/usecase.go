package usecase

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// Backends is the full set of pluggable capabilities the orchestrator works
// against. Every map is keyed by the identifier requests select backends
// with.
type Backends struct {
	Chains       map[nft.Chain]datagateway.ChainProvider
	AssetStores  map[nft.StorageMechanism]datagateway.AssetStore
	RecordStores map[string]datagateway.RecordDataGateway

	// DefaultRecordStore names the store used when a request leaves the
	// store empty.
	DefaultRecordStore string

	Avatars datagateway.AvatarResolver
}

type Usecase struct {
	backends Backends

	activateMu sync.Mutex
	activated  map[any]bool
}

func New(backends Backends) *Usecase {
	return &Usecase{
		backends:  backends,
		activated: make(map[any]bool),
	}
}

// activate warms a backend up exactly once per process. A failed activation
// is not remembered, the next call tries again.
func (u *Usecase) activate(ctx context.Context, backend any) error {
	ac, ok := backend.(datagateway.Activator)
	if !ok {
		return nil
	}
	u.activateMu.Lock()
	defer u.activateMu.Unlock()
	if u.activated[backend] {
		return nil
	}
	if err := ac.Activate(ctx); err != nil {
		return errors.Wrap(err, "backend activation failed")
	}
	u.activated[backend] = true
	return nil
}

func (u *Usecase) chainProvider(ctx context.Context, chain nft.Chain) (datagateway.ChainProvider, error) {
	provider, ok := u.backends.Chains[chain]
	if !ok {
		return nil, errors.Mark(errors.Errorf("no provider registered for chain %q", chain), errs.Unsupported)
	}
	if err := u.activate(ctx, provider); err != nil {
		return nil, errors.Wrapf(err, "can't activate provider for chain %q", chain)
	}
	return provider, nil
}

func (u *Usecase) assetStore(ctx context.Context, mechanism nft.StorageMechanism) (datagateway.AssetStore, error) {
	store, ok := u.backends.AssetStores[mechanism]
	if !ok {
		return nil, errors.Mark(errors.Errorf("no asset store registered for mechanism %q", mechanism), errs.Unsupported)
	}
	if err := u.activate(ctx, store); err != nil {
		return nil, errors.Wrapf(err, "can't activate asset store %q", mechanism)
	}
	return store, nil
}

// recordStore resolves a store name, falling back to the default store for
// the empty name. The resolved name is returned so results can record where
// they were persisted.
func (u *Usecase) recordStore(ctx context.Context, name string) (datagateway.RecordDataGateway, string, error) {
	if name == "" {
		name = u.backends.DefaultRecordStore
	}
	store, ok := u.backends.RecordStores[name]
	if !ok {
		return nil, "", errors.Mark(errors.Errorf("no record store registered under %q", name), errs.Unsupported)
	}
	if err := u.activate(ctx, store); err != nil {
		return nil, "", errors.Wrapf(err, "can't activate record store %q", name)
	}
	return store, name, nil
}
