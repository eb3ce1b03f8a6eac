package nft

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gaze-network/nft-minter/common/errs"
)

func TestValidateStandard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		standard Standard
		chain    Chain
		wantErr  error
	}{
		{name: "spl on solana", standard: StandardSPL, chain: ChainSolana},
		{name: "erc721 on ethereum", standard: StandardERC721, chain: ChainEthereum},
		{name: "erc721 on polygon", standard: StandardERC721, chain: ChainPolygon},
		{name: "erc1155 on arbitrum", standard: StandardERC1155, chain: ChainArbitrum},
		{name: "spl on ethereum", standard: StandardSPL, chain: ChainEthereum, wantErr: errs.InvalidArgument},
		{name: "erc721 on solana", standard: StandardERC721, chain: ChainSolana, wantErr: errs.InvalidArgument},
		{name: "erc1155 on solana", standard: StandardERC1155, chain: ChainSolana, wantErr: errs.InvalidArgument},
		{name: "unknown standard", standard: Standard("brc20"), chain: ChainEthereum, wantErr: errs.InvalidArgument},
		{name: "unknown chain", standard: StandardERC721, chain: Chain("dogecoin"), wantErr: errs.Unsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStandard(tc.standard, tc.chain)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tc.wantErr))
			}
		})
	}
}

func TestChainIsEVM(t *testing.T) {
	t.Parallel()

	assert.False(t, ChainSolana.IsEVM())
	assert.True(t, ChainEthereum.IsEVM())
	assert.True(t, ChainPolygon.IsEVM())
	assert.True(t, ChainArbitrum.IsEVM())
	assert.False(t, Chain("dogecoin").IsEVM())
}
