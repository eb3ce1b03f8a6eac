package chain

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// Simulated is a chain provider for local development. It mints and sends
// against nothing, handing back deterministic-looking hashes, so the full
// flow can be exercised without keys or funded wallets.
type Simulated struct {
	chain     nft.Chain
	wallet    string
	sequence  atomic.Uint64
	activated atomic.Bool
}

var (
	_ datagateway.ChainProvider = (*Simulated)(nil)
	_ datagateway.Activator     = (*Simulated)(nil)
)

func NewSimulated(chain nft.Chain) *Simulated {
	return &Simulated{
		chain:  chain,
		wallet: fmt.Sprintf("sim-%s-mint-wallet", chain),
	}
}

func (s *Simulated) Chain() nft.Chain {
	return s.chain
}

func (s *Simulated) Activate(context.Context) error {
	s.activated.Store(true)
	return nil
}

// Activated reports whether Activate ran, for tests asserting one-time
// warmup.
func (s *Simulated) Activated() bool {
	return s.activated.Load()
}

func (s *Simulated) MintNFT(_ context.Context, params datagateway.MintParams) (*datagateway.MintReceipt, error) {
	if params.MetadataURL == "" {
		return nil, errors.New("metadata URL is required to mint")
	}
	seq := s.sequence.Add(1)
	return &datagateway.MintReceipt{
		TransactionHash:   fmt.Sprintf("sim-%s-tx-%06d-%s", s.chain, seq, shortID()),
		MintWalletAddress: s.wallet,
		TokenAddress:      fmt.Sprintf("sim-%s-token-%06d", s.chain, seq),
	}, nil
}

func (s *Simulated) SendNFT(_ context.Context, params datagateway.SendParams) (string, error) {
	if params.ToAddress == "" {
		return "", errors.New("to address is required to send")
	}
	seq := s.sequence.Add(1)
	return fmt.Sprintf("sim-%s-send-%06d-%s", s.chain, seq, shortID()), nil
}

func shortID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
