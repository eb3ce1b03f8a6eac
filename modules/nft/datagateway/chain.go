package datagateway

import (
	"context"

	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// MintParams is everything a chain needs to mint one token. The metadata URL
// points at the already uploaded JSON document.
type MintParams struct {
	Title       string
	Symbol      string
	Description string
	ImageURL    string
	MetadataURL string
	Memo        string
	Standard    nft.Standard
	Amount      int
}

// MintReceipt is the on-chain outcome of a successful mint.
type MintReceipt struct {
	TransactionHash   string
	MintWalletAddress string
	TokenAddress      string
}

type SendParams struct {
	FromAddress  string
	ToAddress    string
	TokenAddress string
	Amount       int
	Memo         string
}

// ChainProvider is the on-chain capability contract. Implementations mint
// exactly one token (or edition batch for amount-aware standards) per MintNFT
// call and must be safe for concurrent use.
type ChainProvider interface {
	Chain() nft.Chain
	MintNFT(ctx context.Context, params MintParams) (*MintReceipt, error)
	SendNFT(ctx context.Context, params SendParams) (txHash string, err error)
}
