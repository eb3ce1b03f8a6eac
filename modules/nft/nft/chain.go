package nft

// Chain identifies an on-chain backend that can mint and transfer assets.
type Chain string

const (
	ChainSolana   Chain = "solana"
	ChainEthereum Chain = "ethereum"
	ChainPolygon  Chain = "polygon"
	ChainArbitrum Chain = "arbitrum"
)

func (c Chain) String() string {
	return string(c)
}

// IsEVM reports whether the chain is an EVM-family chain.
func (c Chain) IsEVM() bool {
	switch c {
	case ChainEthereum, ChainPolygon, ChainArbitrum:
		return true
	default:
		return false
	}
}

func (c Chain) IsSupported() bool {
	switch c {
	case ChainSolana, ChainEthereum, ChainPolygon, ChainArbitrum:
		return true
	default:
		return false
	}
}
