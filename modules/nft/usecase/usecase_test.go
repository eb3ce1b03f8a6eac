package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/identity"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/modules/nft/repository/memory"
)

// fakeChain is a scriptable chain provider counting every call.
type fakeChain struct {
	chain nft.Chain

	mintCalls atomic.Int64
	sendCalls atomic.Int64

	// mintFailures and sendFailures make the first N calls fail.
	mintFailures int64
	sendFailures int64

	failMintAlways bool
	failSendAlways bool

	activations atomic.Int64

	mu         sync.Mutex
	lastMint   datagateway.MintParams
	lastSend   datagateway.SendParams
}

var (
	_ datagateway.ChainProvider = (*fakeChain)(nil)
	_ datagateway.Activator     = (*fakeChain)(nil)
)

func newFakeChain(c nft.Chain) *fakeChain {
	return &fakeChain{chain: c}
}

func (f *fakeChain) Chain() nft.Chain { return f.chain }

func (f *fakeChain) Activate(context.Context) error {
	f.activations.Add(1)
	return nil
}

func (f *fakeChain) MintNFT(_ context.Context, params datagateway.MintParams) (*datagateway.MintReceipt, error) {
	n := f.mintCalls.Add(1)
	f.mu.Lock()
	f.lastMint = params
	f.mu.Unlock()
	if f.failMintAlways || n <= f.mintFailures {
		return nil, errors.New("chain unavailable")
	}
	return &datagateway.MintReceipt{
		TransactionHash:   fmt.Sprintf("tx-%d", n),
		MintWalletAddress: "mint-wallet",
		TokenAddress:      fmt.Sprintf("token-%d", n),
	}, nil
}

func (f *fakeChain) SendNFT(_ context.Context, params datagateway.SendParams) (string, error) {
	n := f.sendCalls.Add(1)
	f.mu.Lock()
	f.lastSend = params
	f.mu.Unlock()
	if f.failSendAlways || n <= f.sendFailures {
		return "", errors.New("send rejected")
	}
	return fmt.Sprintf("send-tx-%d", n), nil
}

// fakeAssetStore records uploads and returns predictable URLs.
type fakeAssetStore struct {
	mu           sync.Mutex
	assetUploads []string
	textUploads  []string
	failUploads  bool
}

var _ datagateway.AssetStore = (*fakeAssetStore)(nil)

func (f *fakeAssetStore) UploadAsset(_ context.Context, _ []byte, name string) (string, error) {
	if f.failUploads {
		return "", errors.New("upload refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assetUploads = append(f.assetUploads, name)
	return "https://assets.test/" + name, nil
}

func (f *fakeAssetStore) UploadText(_ context.Context, text string, name string) (string, error) {
	if f.failUploads {
		return "", errors.New("upload refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textUploads = append(f.textUploads, text)
	return "https://assets.test/" + name, nil
}

// failingRecordStore wraps the in-memory store and fails saves on demand.
type failingRecordStore struct {
	*memory.Repository
	failSaves    bool
	saveCalls    atomic.Int64
	loadCalls    atomic.Int64
	fieldCalls   atomic.Int64
	loadAllCalls atomic.Int64
}

func newFailingRecordStore() *failingRecordStore {
	return &failingRecordStore{Repository: memory.New()}
}

func (f *failingRecordStore) SaveRecord(ctx context.Context, record *entity.Record) (*entity.Record, error) {
	f.saveCalls.Add(1)
	if f.failSaves {
		return nil, errors.New("disk full")
	}
	return f.Repository.SaveRecord(ctx, record)
}

func (f *failingRecordStore) LoadRecordByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	f.loadCalls.Add(1)
	return f.Repository.LoadRecordByID(ctx, id)
}

func (f *failingRecordStore) LoadRecordsByField(ctx context.Context, kind entity.RecordKind, key, value string) ([]*entity.Record, error) {
	f.fieldCalls.Add(1)
	return f.Repository.LoadRecordsByField(ctx, kind, key, value)
}

func (f *failingRecordStore) LoadAllRecords(ctx context.Context, kind entity.RecordKind) ([]*entity.Record, error) {
	f.loadAllCalls.Add(1)
	return f.Repository.LoadAllRecords(ctx, kind)
}

type fixture struct {
	uc       *Usecase
	chain    *fakeChain
	assets   *fakeAssetStore
	records  *failingRecordStore
	resolver *identity.StaticResolver
	avatarID uuid.UUID
}

func newFixture(chain nft.Chain) *fixture {
	f := &fixture{
		chain:    newFakeChain(chain),
		assets:   &fakeAssetStore{},
		records:  newFailingRecordStore(),
		avatarID: uuid.New(),
	}
	f.resolver = identity.NewStaticResolver(&datagateway.Avatar{
		ID:       f.avatarID,
		Username: "alice",
		Email:    "alice@example.com",
		Wallets: []datagateway.Wallet{
			{Chain: chain, Address: "alice-secondary"},
			{Chain: chain, Address: "alice-default", IsDefault: true},
			{Chain: nft.Chain("other"), Address: "alice-other", IsDefault: true},
		},
	})
	f.uc = New(Backends{
		Chains:             map[nft.Chain]datagateway.ChainProvider{chain: f.chain},
		AssetStores:        map[nft.StorageMechanism]datagateway.AssetStore{nft.StoragePinata: f.assets},
		RecordStores:       map[string]datagateway.RecordDataGateway{"default": f.records},
		DefaultRecordStore: "default",
		Avatars:            f.resolver,
	})
	return f
}

func validMintRequest(chain nft.Chain, standard nft.Standard) *nft.MintRequest {
	return &nft.MintRequest{
		Chain:         chain,
		Standard:      standard,
		AssetStorage:  nft.StoragePinata,
		Title:         "Mystic Sword",
		Description:   "A sword",
		Image:         []byte{0x89, 0x50, 0x4e, 0x47},
		SendToAddress: "dest-wallet",
	}
}
